package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

func raws(cs []domain.CandidateReference) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Raw)
	}
	return out
}

func TestExtractCandidates_AllKeywordKinds(t *testing.T) {
	html := `
	<html><head>
		<link rel="stylesheet" href="/style.css">
		<link rel="icon" href="/icon.png">
		<link rel="shortcut icon" href="/favicon.ico"/>
		<link rel="apple-touch-icon" href="/apple.png">
		<meta property="og:image" content="https://cdn.example.com/og.png">
		<meta name="msapplication-TileImage" content="/tile.png">
		<meta name="msapplication-square70x70logo" content="/s70.png">
		<meta name="msapplication-square150x150logo" content="/s150.png">
		<meta name="msapplication-square310x310logo" content="/s310.png">
		<meta name="msapplication-wide310x150logo" content="/w310.png">
		<meta name="description" content="not an icon">
	</head>
	<body><a href="/icon-lookalike.png" rel="icon">a tags are ignored</a></body></html>`

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/icon.png",
		"/favicon.ico",
		"/apple.png",
		"https://cdn.example.com/og.png",
		"/tile.png",
		"/s70.png",
		"/s150.png",
		"/s310.png",
		"/w310.png",
	}, raws(found))

	assert.Equal(t, domain.CandidateKindLink, found[0].Kind)
	assert.Equal(t, "icon", found[0].Key)
	assert.Equal(t, domain.CandidateKindMeta, found[3].Kind)
	assert.Equal(t, "og:image", found[3].Key)
}

func TestExtractCandidates_AttributeOrderAndWhitespace(t *testing.T) {
	html := "<link\n\thref=\"/x.png\"   rel = \"icon\" \n><link href='/y.png' rel=icon>"

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x.png", "/y.png"}, raws(found))
}

func TestExtractCandidates_CaseInsensitiveMatching(t *testing.T) {
	upper, err := ExtractCandidates(strings.NewReader(`<LINK REL="ICON" HREF="/a.png">`), nil)
	require.NoError(t, err)
	lower, err := ExtractCandidates(strings.NewReader(`<link rel="icon" href="/a.png">`), nil)
	require.NoError(t, err)

	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)

	meta, err := ExtractCandidates(strings.NewReader(
		`<META NAME="MSAPPLICATION-TILEIMAGE" CONTENT="/Tile.PNG"><meta Property="OG:Image" Content="/OG.png">`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/Tile.PNG", "/OG.png"}, raws(meta))
	assert.Equal(t, "msapplication-TileImage", meta[0].Key)
}

func TestExtractCandidates_PreservesValueCasing(t *testing.T) {
	found, err := ExtractCandidates(strings.NewReader(`<link rel="Shortcut  Icon" href="/Static/FavIcon.ICO">`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/Static/FavIcon.ICO"}, raws(found))
	assert.Equal(t, "shortcut icon", found[0].Key)
}

func TestExtractCandidates_NameAndPropertyBothFire(t *testing.T) {
	html := `<meta name="msapplication-TileImage" property="og:image" content="/both.png">`

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/both.png", "/both.png"}, raws(found))
}

func TestExtractCandidates_SkipsMissingOrEmptyValues(t *testing.T) {
	html := `<link rel="icon"><link rel="icon" href="  "><meta property="og:image"><link href="/no-rel.png">`

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExtractCandidates_MalformedMarkupContinues(t *testing.T) {
	html := `<html><head><link rel="icon" href="/one.png"
	<div <<>> </span></p></head>
	<link rel="apple-touch-icon" href="/two.png" rel="ignored-duplicate">
	<meta property="og:image" content="/three.png" =oops>
	</not-closed`

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)
	assert.Contains(t, raws(found), "/two.png")
	assert.Contains(t, raws(found), "/three.png")
}

func TestExtractCandidates_DecodesEntities(t *testing.T) {
	found, err := ExtractCandidates(strings.NewReader(`<link rel="icon" href="/i.png?a=1&amp;b=2">`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/i.png?a=1&b=2"}, raws(found))
}

func TestExtractCandidates_IgnoresScriptText(t *testing.T) {
	html := `<script>var s = '<link rel="icon" href="/fake.png">';</script><link rel="icon" href="/real.png">`

	found, err := ExtractCandidates(strings.NewReader(html), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/real.png"}, raws(found))
}

func TestScanner_IsLazyAndSingleUse(t *testing.T) {
	s := NewScanner(strings.NewReader(`<link rel="icon" href="/a.png"><link rel="icon" href="/b.png">`), nil)

	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "/a.png", first.Raw)

	var rest []string
	for c := range s.All() {
		rest = append(rest, c.Raw)
	}
	assert.Equal(t, []string{"/b.png"}, rest)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestScanner_EarlyBreak(t *testing.T) {
	s := NewScanner(strings.NewReader(`<link rel="icon" href="/a.png"><link rel="icon" href="/b.png">`), nil)

	for range s.All() {
		break
	}
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "/b.png", c.Raw)
}
