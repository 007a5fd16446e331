package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/fetch"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/ports"
)

// PageScanner downloads the source page and collects icon candidates from it.
type PageScanner struct {
	fetcher *fetch.Fetcher
	scanner ports.Scanner
	limiter ports.Limiter
}

func NewPageScanner(fetcher *fetch.Fetcher, scanner ports.Scanner, limiter ports.Limiter) *PageScanner {
	return &PageScanner{
		fetcher: fetcher,
		scanner: scanner,
		limiter: limiter,
	}
}

// Scan returns the URL candidates resolve against and the candidates found.
// Only a failed page download is an error; non-HTML pages yield no candidates.
func (p *PageScanner) Scan(ctx context.Context, page *url.URL, log logger.Logger) (*url.URL, []domain.CandidateReference, error) {
	_ = p.limiter.Take(ctx, page.String())

	res, err := p.fetcher.FetchPage(ctx, page.String())
	if err != nil {
		return nil, nil, fmt.Errorf("fetch page: %w", err)
	}

	base := page
	if final, err := url.Parse(res.URL); err == nil && final.IsAbs() {
		base = final
	}

	if !res.IsHTML() {
		log.Info("page is not html, skipping markup scan",
			logger.String("content_type", res.ContentType),
		)
		return base, nil, nil
	}

	found, err := p.scanner.Scan(bytes.NewReader(res.Body))
	if err != nil {
		log.Warn("markup scan incomplete", logger.Error(err), logger.Int("found", len(found)))
	}

	log.Debug("page scanned",
		logger.String("base", base.String()),
		logger.Int("bytes", len(res.Body)),
		logger.Int("candidates", len(found)),
		logger.Duration("elapsed", res.Elapsed),
	)
	return base, found, nil
}
