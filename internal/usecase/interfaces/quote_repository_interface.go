package interfaces

import (
	"context"

	"condado_dog/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for finished quotes.
//
// The quote table is an audit log: quotes are appended once after the
// engine finishes and read back for proposal rendering; they are never
// updated.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}
