package extract

import (
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/logger"
)

// Scanner pulls icon candidates out of an HTML stream one element at a time.
// It is single-use: once drained it stays drained.
type Scanner struct {
	z       *html.Tokenizer
	log     logger.Logger
	pending []domain.CandidateReference
	done    bool
	err     error
}

func NewScanner(r io.Reader, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNop()
	}
	return &Scanner{z: html.NewTokenizer(r), log: log}
}

// Next returns the next candidate, or false once the stream is exhausted.
func (s *Scanner) Next() (domain.CandidateReference, bool) {
	for len(s.pending) == 0 {
		if s.done {
			return domain.CandidateReference{}, false
		}
		s.step()
	}

	c := s.pending[0]
	s.pending = s.pending[1:]
	return c, true
}

// All adapts Next to a range-over-func sequence.
func (s *Scanner) All() iter.Seq[domain.CandidateReference] {
	return func(yield func(domain.CandidateReference) bool) {
		for {
			c, ok := s.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Err reports a tokenizer failure other than io.EOF. Candidates found before
// the failure have already been returned.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) step() {
	switch s.z.Next() {
	case html.ErrorToken:
		s.done = true
		if err := s.z.Err(); err != nil && !errors.Is(err, io.EOF) {
			s.err = err
			s.log.Warn("markup scan stopped", logger.Error(err))
		}
	case html.StartTagToken, html.SelfClosingTagToken:
		name, hasAttr := s.z.TagName()
		if !hasAttr {
			return
		}
		elemRules, ok := rules[strings.ToLower(string(name))]
		if !ok {
			return
		}
		attrs := s.attributes()
		for _, r := range elemRules {
			if c, ok := inspect(r, attrs); ok {
				s.pending = append(s.pending, c)
			}
		}
	}
}

// attributes builds the per-element attribute map. Keys are lowercased by the
// tokenizer; the first occurrence of a key wins, as in browsers.
func (s *Scanner) attributes() map[string]string {
	attrs := make(map[string]string)
	for {
		key, val, more := s.z.TagAttr()
		k := strings.ToLower(string(key))
		switch {
		case k == "":
		case !utf8.Valid(val):
			s.log.Debug("skipping malformed attribute", logger.String("attr", k))
		default:
			if _, dup := attrs[k]; !dup {
				attrs[k] = string(val)
			}
		}
		if !more {
			return attrs
		}
	}
}

func inspect(r rule, attrs map[string]string) (domain.CandidateReference, bool) {
	key, ok := attrs[r.matchAttr]
	if !ok {
		return domain.CandidateReference{}, false
	}
	kw, ok := r.match(key)
	if !ok {
		return domain.CandidateReference{}, false
	}
	val, ok := attrs[r.valueAttr]
	if !ok || strings.TrimSpace(val) == "" {
		return domain.CandidateReference{}, false
	}
	return domain.CandidateReference{Raw: val, Kind: r.kind, Key: kw}, true
}

// ExtractCandidates drains a Scanner over r.
func ExtractCandidates(r io.Reader, log logger.Logger) ([]domain.CandidateReference, error) {
	s := NewScanner(r, log)
	var out []domain.CandidateReference
	for c := range s.All() {
		out = append(out, c)
	}
	return out, s.Err()
}
