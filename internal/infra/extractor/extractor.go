package extractor

import (
	"io"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/extract"
	"github.com/rojanmagar2001/siteicons/internal/logger"
)

type Adapter struct {
	log logger.Logger
}

func New(log logger.Logger) *Adapter { return &Adapter{log: log} }

func (a *Adapter) Scan(r io.Reader) ([]domain.CandidateReference, error) {
	return extract.ExtractCandidates(r, a.log)
}
