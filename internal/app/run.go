package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/rojanmagar2001/siteicons/internal/config"
	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/logger"
	"github.com/rojanmagar2001/siteicons/internal/metrics"
	"github.com/rojanmagar2001/siteicons/internal/ports"
)

type Options struct {
	URL         string
	JSON        bool
	MetricsFile string
}

// Run discovers the icons of opts.URL and prints them to stdout, largest first.
func Run(ctx context.Context, cfg *config.Config, opts Options, log logger.Logger, stdout io.Writer) error {
	if opts.URL == "" {
		return fmt.Errorf("url is required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	var rec ports.Recorder = metrics.Nop{}
	var prom *metrics.Recorder
	if opts.MetricsFile != "" {
		prom = metrics.New()
		rec = prom
	}

	p := Build(cfg, log, rec)
	defer p.Close()

	icons, err := p.Run(ctx, opts.URL)

	if prom != nil {
		if werr := prom.WriteFile(opts.MetricsFile); werr != nil {
			log.Warn("could not write metrics", logger.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	SortDescriptors(icons)
	if opts.JSON {
		return writeJSON(stdout, icons)
	}
	return writeText(stdout, icons)
}

// SortDescriptors orders by pixel area, largest first, then by URL.
func SortDescriptors(icons []domain.ImageDescriptor) {
	sort.Slice(icons, func(i, j int) bool {
		if icons[i].Area() != icons[j].Area() {
			return icons[i].Area() > icons[j].Area()
		}
		return icons[i].URL < icons[j].URL
	})
}

func writeText(w io.Writer, icons []domain.ImageDescriptor) error {
	for _, d := range icons {
		if _, err := fmt.Fprintf(w, "%-5s %11s  %s\n", d.Type, fmt.Sprintf("%dx%d", d.Width, d.Height), d.URL); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nFound %d icons\n", len(icons))
	return err
}

func writeJSON(w io.Writer, icons []domain.ImageDescriptor) error {
	if icons == nil {
		icons = []domain.ImageDescriptor{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(icons)
}
