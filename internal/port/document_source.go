package port

import (
	"context"

	"recettes/internal/domain"
)

// DocumentSource abstracts where recipe documents live. Implementations list
// available documents and return raw text for one of them; returning empty
// text is the expected signal for unsupported or unreadable content.
type DocumentSource interface {
	// List enumerates every document under the configured root.
	List(ctx context.Context) ([]domain.RawDocument, error)
	// Text returns the raw text of one document, or "" when extraction is
	// not possible for its format.
	Text(ctx context.Context, doc domain.RawDocument) (string, error)
}
