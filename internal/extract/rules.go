package extract

import (
	"strings"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

// rule emits valueAttr when matchAttr equals one of keywords.
type rule struct {
	kind      domain.CandidateKind
	matchAttr string
	valueAttr string
	keywords  []string
}

// rules is keyed by lowercased element name. Adding an icon standard is an
// edit here and nowhere else.
var rules = map[string][]rule{
	"meta": {
		{
			kind:      domain.CandidateKindMeta,
			matchAttr: "name",
			valueAttr: "content",
			keywords: []string{
				"msapplication-TileImage",
				"msapplication-square70x70logo",
				"msapplication-square150x150logo",
				"msapplication-square310x310logo",
				"msapplication-wide310x150logo",
			},
		},
		{
			kind:      domain.CandidateKindMeta,
			matchAttr: "property",
			valueAttr: "content",
			keywords:  []string{"og:image"},
		},
	},
	"link": {
		{
			kind:      domain.CandidateKindLink,
			matchAttr: "rel",
			valueAttr: "href",
			keywords:  []string{"icon", "shortcut icon", "apple-touch-icon"},
		},
	},
}

// match returns the table spelling of the keyword equal to v.
func (r rule) match(v string) (string, bool) {
	v = normalizeKeyword(v)
	for _, k := range r.keywords {
		if normalizeKeyword(k) == v {
			return k, true
		}
	}
	return "", false
}

// normalizeKeyword lowercases and collapses whitespace so "Shortcut  Icon"
// compares equal to "shortcut icon".
func normalizeKeyword(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
