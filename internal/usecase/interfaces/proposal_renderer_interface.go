package interfaces

import (
	"context"

	"condado_dog/internal/domain/entities"
)

// IProposalRenderer abstracts the client-facing proposal document
// generator (headless Chrome in production).
//
// Rendering happens after the quote is computed and persisted; a renderer
// failure must never roll back or invalidate the quote itself.
type IProposalRenderer interface {
	RenderProposal(ctx context.Context, q entities.Quote) ([]byte, error)
}
