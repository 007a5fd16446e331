// Package siteicons discovers the icons a web page advertises and reports the
// format and pixel size of each one.
//
// Icons are found in <link rel="icon">, apple-touch-icon and shortcut icon
// elements, msapplication tile metas and og:image, plus the conventional
// /favicon.ico. Every candidate is probed with a small range request, so large
// images are never downloaded in full.
package siteicons

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rojanmagar2001/siteicons/internal/app"
	"github.com/rojanmagar2001/siteicons/internal/config"
	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/resolve"
)

type (
	ImageDescriptor = domain.ImageDescriptor
	ImageType       = domain.ImageType
)

const (
	ICO  = domain.ImageTypeICO
	CUR  = domain.ImageTypeCUR
	PNG  = domain.ImageTypePNG
	JPEG = domain.ImageTypeJPEG
	GIF  = domain.ImageTypeGIF
	BMP  = domain.ImageTypeBMP
	WEBP = domain.ImageTypeWEBP
)

var (
	ErrInvalidURL        = domain.ErrInvalidURL
	ErrFetch             = domain.ErrFetch
	ErrUnsupportedFormat = domain.ErrUnsupportedFormat
	ErrTruncatedData     = domain.ErrTruncatedData
)

// Recorder receives one event per candidate and one per probe outcome.
type Recorder interface {
	Candidate(kind string)
	Probe(outcome string, elapsed time.Duration)
}

// Options tunes a discovery run. Zero fields take the package defaults.
type Options struct {
	UserAgent string
	// Timeout bounds each HTTP request, not the whole call.
	Timeout      time.Duration
	Concurrency  int
	Rate         int
	PerHostRate  int
	PrefixBytes  int64
	MaxPageBytes int64

	Logger   *zap.Logger
	Recorder Recorder
}

func (o Options) config() (*config.Config, error) {
	cfg := config.Default()
	if o.UserAgent != "" {
		cfg.UserAgent = o.UserAgent
	}
	if o.Timeout > 0 {
		cfg.Timeout = o.Timeout
	}
	if o.Concurrency > 0 {
		cfg.Concurrency = o.Concurrency
	}
	if o.Rate > 0 {
		cfg.Rate = o.Rate
	}
	if o.PerHostRate > 0 {
		cfg.PerHostRate = o.PerHostRate
	}
	if o.PrefixBytes > 0 {
		cfg.PrefixBytes = o.PrefixBytes
	}
	if o.MaxPageBytes > 0 {
		cfg.MaxPageBytes = o.MaxPageBytes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o Options) build() (*app.Pipeline, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	var log logger.Logger
	if o.Logger != nil {
		log = logger.FromZap(o.Logger)
	}
	return app.Build(cfg, log, o.Recorder), nil
}

// ExtractIcons fetches pageURL with the given User-Agent and per-request
// timeout and returns every icon that could be fetched and sized. The result
// is unordered and may be empty. An error is returned only when pageURL is
// invalid or the page itself cannot be fetched.
func ExtractIcons(ctx context.Context, pageURL, userAgent string, timeout time.Duration) ([]ImageDescriptor, error) {
	return ExtractIconsWithOptions(ctx, pageURL, Options{UserAgent: userAgent, Timeout: timeout})
}

func ExtractIconsWithOptions(ctx context.Context, pageURL string, opts Options) ([]ImageDescriptor, error) {
	if _, err := resolve.ParseBase(pageURL); err != nil {
		return nil, err
	}

	p, err := opts.build()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.Run(ctx, pageURL)
}

// ProbeImage sizes a single absolute image URL. Unlike ExtractIcons, the
// failure is returned rather than dropped.
func ProbeImage(ctx context.Context, imageURL string, opts Options) (ImageDescriptor, error) {
	u, err := resolve.ParseBase(imageURL)
	if err != nil {
		return ImageDescriptor{}, err
	}

	p, err := opts.build()
	if err != nil {
		return ImageDescriptor{}, err
	}
	defer p.Close()

	return p.Prober.Probe(ctx, u.String())
}
