package domain

// CandidateKind is the markup element a candidate reference came from.
type CandidateKind string

const (
	CandidateKindLink     CandidateKind = "link"
	CandidateKindMeta     CandidateKind = "meta"
	CandidateKindFallback CandidateKind = "fallback"
)

// CandidateReference is an unresolved, as-written URL found in markup.
type CandidateReference struct {
	Raw  string
	Kind CandidateKind
	// Key is the matched keyword, e.g. "icon", "og:image".
	Key string
}

// FaviconFallback is probed for every page regardless of its markup.
var FaviconFallback = CandidateReference{
	Raw:  "/favicon.ico",
	Kind: CandidateKindFallback,
	Key:  "favicon.ico",
}
