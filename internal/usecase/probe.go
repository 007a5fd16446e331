package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/fetch"
	"github.com/rojanmagar2001/siteicons/internal/imagesize"
	"github.com/rojanmagar2001/siteicons/internal/ports"
)

// ProbeService fetches the byte prefix of one URL and sniffs its dimensions.
type ProbeService struct {
	fetcher  *fetch.Fetcher
	limiter  ports.Limiter
	recorder ports.Recorder
}

func NewProbeService(fetcher *fetch.Fetcher, limiter ports.Limiter, recorder ports.Recorder) *ProbeService {
	return &ProbeService{
		fetcher:  fetcher,
		limiter:  limiter,
		recorder: recorder,
	}
}

func (s *ProbeService) Probe(ctx context.Context, link string) (domain.ImageDescriptor, error) {
	start := time.Now()
	d, err := s.probe(ctx, link)
	s.recorder.Probe(domain.Reason(err), time.Since(start))
	return d, err
}

func (s *ProbeService) probe(ctx context.Context, link string) (domain.ImageDescriptor, error) {
	// Limiting happens before network call
	if err := s.limiter.Take(ctx, link); err != nil {
		return domain.ImageDescriptor{}, fmt.Errorf("%w: rate limit wait: %v", domain.ErrFetch, err)
	}

	p, err := s.fetcher.FetchPrefix(ctx, link)
	if err != nil {
		return domain.ImageDescriptor{}, err
	}

	info, err := imagesize.Sniff(p.Bytes)
	if err != nil {
		return domain.ImageDescriptor{}, fmt.Errorf("sniff %s: %w", link, err)
	}

	return domain.ImageDescriptor{
		URL:         link,
		Type:        info.Type,
		Width:       info.Width,
		Height:      info.Height,
		ContentType: p.ContentType(),
	}, nil
}
