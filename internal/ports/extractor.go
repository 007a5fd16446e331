package ports

import (
	"io"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

// Scanner yields icon candidates from an HTML document.
type Scanner interface {
	Scan(r io.Reader) ([]domain.CandidateReference, error)
}
