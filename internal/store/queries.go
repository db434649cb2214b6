package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Price queries.
const (
	queryUpsertPriceEntry = `
		INSERT INTO price_entries (
			code, description, cost_state, single_cost, max_cost, updated_at
		) VALUES (
			@code, @description, @cost_state, @single_cost, @max_cost, now()
		)
		ON CONFLICT ((lower(code))) DO UPDATE SET
			description = EXCLUDED.description,
			cost_state = EXCLUDED.cost_state,
			single_cost = EXCLUDED.single_cost,
			max_cost = EXCLUDED.max_cost,
			updated_at = now()`

	queryGetPriceEntry = `
		SELECT code, description, cost_state, single_cost, max_cost
		FROM price_entries
		WHERE lower(code) = lower($1)`

	queryListPriceEntries = `
		SELECT code, description, cost_state, single_cost, max_cost
		FROM price_entries
		ORDER BY position, code`
)

// Inspection queries.
const (
	queryInsertInspection = `
		INSERT INTO inspections (id, reference, code_1, code_2, code_3, code_4, created_at)
		VALUES (@id, @reference, @code_1, @code_2, @code_3, @code_4, now())
		RETURNING created_at`

	queryGetInspection = `
		SELECT id, reference, code_1, code_2, code_3, code_4,
			total_cost, COALESCE(cost_kind, ''), COALESCE(cost_error, ''),
			costed_at, created_at
		FROM inspections
		WHERE id = $1`

	queryListInspectionsCursor = `
		SELECT id, reference, code_1, code_2, code_3, code_4,
			total_cost, COALESCE(cost_kind, ''), COALESCE(cost_error, ''),
			costed_at, created_at
		FROM inspections
		WHERE (NULLIF($1::text, '') IS NULL OR id > NULLIF($1::text, '')::uuid)
			AND ($3::boolean IS FALSE OR costed_at IS NULL)
		ORDER BY id
		LIMIT $2`

	queryUpdateInspectionCost = `
		UPDATE inspections
		SET total_cost = $2, cost_kind = $3, cost_error = NULL, costed_at = now()
		WHERE id = $1`

	queryRecordInspectionFailure = `
		UPDATE inspections
		SET total_cost = NULL, cost_kind = NULL, cost_error = $2, costed_at = NULL
		WHERE id = $1`
)
