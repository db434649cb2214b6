package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, EstimatesTotal)
	assert.NotNil(t, EstimateFailuresTotal)
	assert.NotNil(t, FamiliesCappedTotal)
	assert.NotNil(t, UnknownCodesTotal)
	assert.NotNil(t, RecostDuration)
	assert.NotNil(t, RecostRowsTotal)
	assert.NotNil(t, PriceTableEntries)
}
