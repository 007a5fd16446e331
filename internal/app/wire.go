package app

import (
	"github.com/rojanmagar2001/siteicons/internal/config"
	"github.com/rojanmagar2001/siteicons/internal/fetch"
	"github.com/rojanmagar2001/siteicons/internal/infra/extractor"
	"github.com/rojanmagar2001/siteicons/internal/infra/httpclient"
	"github.com/rojanmagar2001/siteicons/internal/infra/limiter"
	"github.com/rojanmagar2001/siteicons/internal/infra/store"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/metrics"
	"github.com/rojanmagar2001/siteicons/internal/ports"
	"github.com/rojanmagar2001/siteicons/internal/usecase"
)

// Pipeline bundles the wired orchestrator with the single-URL prober that
// shares its client and limiter.
type Pipeline struct {
	*usecase.Orchestrator
	Prober *usecase.ProbeService

	client *httpclient.Client
}

// Build wires a pipeline from cfg. A nil log or recorder disables that concern.
func Build(cfg *config.Config, log logger.Logger, rec ports.Recorder) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}

	httpc := httpclient.New(cfg.Timeout, cfg.Concurrency)
	lim := limiter.New(cfg.Rate, cfg.PerHostRate)

	fetcher := fetch.NewFetcher(httpc, cfg.UserAgent, cfg.Timeout)
	fetcher.PrefixBytes = cfg.PrefixBytes
	fetcher.MaxPageBytes = cfg.MaxPageBytes

	pages := usecase.NewPageScanner(fetcher, extractor.New(log), lim)
	prober := usecase.NewProbeService(fetcher, lim, rec)
	newStore := func() ports.Store { return store.NewMemory() }

	return &Pipeline{
		Orchestrator: usecase.NewOrchestrator(pages, prober, newStore, rec, log, cfg.Concurrency),
		Prober:       prober,
		client:       httpc,
	}
}

func (p *Pipeline) Close() {
	p.client.CloseIdleConnections()
}
