package interfaces

import (
	"context"

	"condado_dog/internal/domain/entities"
)

// IRateSource abstracts the external spreadsheet holding the rate tables
// (Google Sheets in production, a local XLSX file for offline use).
//
// LoadRateTables returns a fresh immutable snapshot; the engine never
// talks to the storage technology directly. A source failure propagates
// as an error and fails only the requests that needed the snapshot —
// retry/backoff is the source's problem, not the engine's.
type IRateSource interface {
	LoadRateTables(ctx context.Context) (entities.RateTables, error)
}
