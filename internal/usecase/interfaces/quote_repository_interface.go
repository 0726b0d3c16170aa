package interfaces

import (
	"context"

	"machine_shop_suite/internal/domain/entities"
)

// QuoteListQuery parameterizes quote enumeration. Limit is clamped by the
// repository to [1, 200]; Cursor is the opaque next_cursor of a previous page.
type QuoteListQuery struct {
	Limit  int
	Cursor string
	Status entities.QuoteStatus
	Search string
}

// IQuoteRepository abstracts durable quote storage.
//
// Conventions shared by all backends:
//   - Load returns a zero-value Quote (empty QuoteID) for a missing, malformed
//     or corrupt record; corruption is treated as loss, not as an error.
//   - Save must be atomic with respect to crashes: a reader never observes a
//     partially written record.
//   - Now is the single source of the current time so lifecycle logic can run
//     against an injected clock in tests.
type IQuoteRepository interface {
	NewID() string
	Save(ctx context.Context, quoteID string, q entities.Quote) error
	Load(ctx context.Context, quoteID string) (entities.Quote, error)
	List(ctx context.Context, query QuoteListQuery) ([]entities.Quote, string, error)
	Now() int64
}
