package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/repair-cost/pkg/types"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)

	sched, err := NewScheduler(eng, 15*time.Minute, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	require.Len(t, entries, 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	assert.False(t, sched.Entries()[0].Next.IsZero())
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_RunRecostUsesPendingOnly(t *testing.T) {
	t.Parallel()

	eng, ms := newTestEngine(t)
	ms.EXPECT().
		ListInspectionsCursor(mock.Anything, "", defaultBatchSize, true).
		Return([]domain.Inspection{}, nil).
		Once()

	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.runRecost()
}

func TestScheduler_RunRecostSkipsWhileBusy(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)
	sched, err := NewScheduler(eng, time.Hour, quietLogger())
	require.NoError(t, err)

	eng.recostMu.Lock()
	defer eng.recostMu.Unlock()

	// No store calls expected.
	sched.runRecost()
}
