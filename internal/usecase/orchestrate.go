package usecase

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/ports"
	"github.com/rojanmagar2001/siteicons/internal/resolve"
)

const DefaultConcurrency = 8

// Orchestrator runs one icon discovery pass:
// fetch page -> scan -> append /favicon.ico -> resolve -> dedupe -> probe.
type Orchestrator struct {
	pages    *PageScanner
	prober   *ProbeService
	newStore func() ports.Store
	recorder ports.Recorder
	log      logger.Logger

	concurrency int
}

func NewOrchestrator(pages *PageScanner, prober *ProbeService, newStore func() ports.Store, recorder ports.Recorder, log logger.Logger, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Orchestrator{
		pages:       pages,
		prober:      prober,
		newStore:    newStore,
		recorder:    recorder,
		log:         log,
		concurrency: concurrency,
	}
}

type target struct {
	URL       string
	Candidate domain.CandidateReference
}

type probeResult struct {
	target target
	desc   domain.ImageDescriptor
	err    error
}

// Run returns every candidate that could be fetched and sized, in no
// particular order. It fails only when pageURL is invalid or the page itself
// cannot be fetched; per-candidate failures are logged and dropped.
func (o *Orchestrator) Run(ctx context.Context, pageURL string) ([]domain.ImageDescriptor, error) {
	page, err := resolve.ParseBase(pageURL)
	if err != nil {
		return nil, err
	}

	log := o.log.With(
		logger.String("run_id", uuid.NewString()),
		logger.String("url", page.String()),
	)

	base, candidates, err := o.pages.Scan(ctx, page, log)
	if err != nil {
		log.Warn("page fetch failed", logger.Error(err))
		return nil, err
	}

	// The fallback is probed regardless of content type.
	candidates = append(candidates, domain.FaviconFallback)

	targets := o.plan(base, candidates, log)
	results := o.probeAll(ctx, targets, log)

	log.Info("icon discovery complete",
		logger.Int("candidates", len(candidates)),
		logger.Int("probed", len(targets)),
		logger.Int("found", len(results)),
	)
	return results, nil
}

// plan resolves candidates and keeps the first occurrence of each URL.
func (o *Orchestrator) plan(base *url.URL, candidates []domain.CandidateReference, log logger.Logger) []target {
	st := o.newStore()
	targets := make([]target, 0, len(candidates))

	for _, c := range candidates {
		o.recorder.Candidate(string(c.Kind))

		u, err := resolve.Resolve(base, c.Raw)
		if err != nil {
			o.recorder.Probe(domain.Reason(err), 0)
			log.Debug("dropping candidate", logger.String("raw", c.Raw), logger.Error(err))
			continue
		}

		link := u.String()
		if !st.MarkSeen(link) {
			o.recorder.Probe("duplicate", 0)
			continue
		}
		targets = append(targets, target{URL: link, Candidate: c})
	}

	log.Debug("probe plan",
		logger.Int("unique", st.SeenCount()),
		logger.Strings("keys", st.All()),
	)
	return targets
}

// probeAll fans targets out to a bounded worker pool. A single collector
// drains the results channel.
func (o *Orchestrator) probeAll(ctx context.Context, targets []target, log logger.Logger) []domain.ImageDescriptor {
	if len(targets) == 0 {
		return nil
	}

	workers := min(o.concurrency, len(targets))
	jobs := make(chan target)
	results := make(chan probeResult, workers)

	var wg sync.WaitGroup
	worker := func() {
		defer wg.Done()
		for t := range jobs {
			d, err := o.prober.Probe(ctx, t.URL)
			results <- probeResult{target: t, desc: d, err: err}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	go func() {
		for _, t := range targets {
			jobs <- t
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]domain.ImageDescriptor, 0, len(targets))
	for r := range results {
		if r.err != nil {
			log.Debug("probe failed",
				logger.String("target", r.target.URL),
				logger.String("kind", string(r.target.Candidate.Kind)),
				logger.String("reason", domain.Reason(r.err)),
				logger.Error(r.err),
			)
			continue
		}
		out = append(out, r.desc)
	}
	return out
}
