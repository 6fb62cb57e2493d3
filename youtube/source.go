package youtube

import (
	"context"
	"fmt"

	"github.com/xIceArcher/go-ytstats/config"
	httpclient "github.com/xIceArcher/go-ytstats/http"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Source string

const (
	SourceAPI    Source = "api"
	SourceScrape Source = "scrape"
)

type Fetcher interface {
	Fetch(ctx context.Context, input string) (Raw, error)
}

type Constructor func(cfg *config.Config, logger *zap.SugaredLogger) (Fetcher, error)

var implementedSources = map[Source]Constructor{
	SourceAPI: func(cfg *config.Config, logger *zap.SugaredLogger) (Fetcher, error) {
		if cfg.Google.APIKey == "" {
			return nil, ErrInvalidCredentials
		}
		return NewAPI(cfg.Google, httpclient.NewClient(cfg.HTTP), logger), nil
	},
	SourceScrape: func(cfg *config.Config, logger *zap.SugaredLogger) (Fetcher, error) {
		return NewScraper(cfg.Ytdlp, logger), nil
	},
}

func Sources() []Source {
	sources := maps.Keys(implementedSources)
	slices.Sort(sources)
	return sources
}

func NewFetcher(source Source, cfg *config.Config, logger *zap.SugaredLogger) (Fetcher, error) {
	constructor, ok := implementedSources[source]
	if !ok {
		return nil, fmt.Errorf("source %s not found", source)
	}

	return constructor(cfg, logger.With(zap.String("source", string(source))))
}

// Lookup fetches input from f and normalizes the result. An empty Record with a nil error
// means the source has no such video.
func Lookup(ctx context.Context, f Fetcher, input string) (Record, error) {
	raw, err := f.Fetch(ctx, input)
	if err != nil {
		return Record{}, err
	}

	return Normalize(raw), nil
}
