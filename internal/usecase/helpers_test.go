package usecase

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/rojanmagar2001/siteicons/internal/fetch"
	"github.com/rojanmagar2001/siteicons/internal/infra/extractor"
	"github.com/rojanmagar2001/siteicons/internal/infra/httpclient"
	"github.com/rojanmagar2001/siteicons/internal/infra/limiter"
	"github.com/rojanmagar2001/siteicons/internal/infra/store"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/ports"
)

const testUA = "siteicons-test/0.1"

type countingRecorder struct {
	mu         sync.Mutex
	candidates map[string]int
	probes     map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{candidates: map[string]int{}, probes: map[string]int{}}
}

func (r *countingRecorder) Candidate(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates[kind]++
}

func (r *countingRecorder) Probe(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[outcome]++
}

func (r *countingRecorder) probeCount(outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.probes[outcome]
}

func (r *countingRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.candidates {
		n += v
	}
	for _, v := range r.probes {
		n += v
	}
	return n
}

func newTestOrchestrator(timeout time.Duration, concurrency int, rec ports.Recorder) *Orchestrator {
	f := fetch.NewFetcher(httpclient.New(timeout, 0), testUA, timeout)
	lim := limiter.Unlimited{}

	pages := NewPageScanner(f, extractor.New(nil), lim)
	prober := NewProbeService(f, lim, rec)
	newStore := func() ports.Store { return store.NewMemory() }

	return NewOrchestrator(pages, prober, newStore, rec, logger.NewNop(), concurrency)
}

func pngBytes(w, h uint32) []byte {
	b := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")
	b = binary.BigEndian.AppendUint32(b, w)
	b = binary.BigEndian.AppendUint32(b, h)
	return append(b, make([]byte, 120)...)
}

func icoBytes(size byte) []byte {
	b := []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00, size, size}
	return append(b, make([]byte, 14)...)
}
