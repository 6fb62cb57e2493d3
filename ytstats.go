package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/xIceArcher/go-ytstats/config"
	"github.com/xIceArcher/go-ytstats/logger"
	"github.com/xIceArcher/go-ytstats/utils"
	"github.com/xIceArcher/go-ytstats/youtube"
	"go.uber.org/zap"
)

const longDescription = `Prints public metadata of a YouTube video as JSON.

Examples:
  ytstats api AIza... https://youtu.be/dQw4w9WgXcQ
  ytstats scrape dQw4w9WgXcQ`

type Options struct {
	ConfigPath string `short:"c" long:"config" description:"Path of configuration file"`
}

type APICommand struct {
	Args struct {
		APIKey string `positional-arg-name:"API_KEY" required:"yes"`
		Video  string `positional-arg-name:"VIDEO_URL_OR_ID" required:"yes"`
	} `positional-args:"yes"`
}

type ScrapeCommand struct {
	Args struct {
		Video string `positional-arg-name:"VIDEO_URL_OR_ID" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	opts := &Options{}
	apiCmd := &APICommand{}
	scrapeCmd := &ScrapeCommand{}

	parser := flags.NewParser(opts, flags.Default)
	parser.LongDescription = longDescription
	if _, err := parser.AddCommand(string(youtube.SourceAPI), "Fetch from the YouTube Data API", "Fetch from the YouTube Data API v3 using an API key", apiCmd); err != nil {
		log.Fatal(err)
	}
	if _, err := parser.AddCommand(string(youtube.SourceScrape), "Scrape with yt-dlp", "Scrape the watch page with yt-dlp, no credentials needed", scrapeCmd); err != nil {
		log.Fatal(err)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg := &config.Config{}
	if err := cfg.LoadConfig(opts.ConfigPath); err != nil {
		log.Fatal(err)
	}

	var source youtube.Source
	var input string
	switch parser.Active.Name {
	case string(youtube.SourceAPI):
		source, input = youtube.SourceAPI, apiCmd.Args.Video
		cfg.Google.APIKey = apiCmd.Args.APIKey
	case string(youtube.SourceScrape):
		source, input = youtube.SourceScrape, scrapeCmd.Args.Video
	}

	if err := logger.Init(cfg.Logger); err != nil {
		log.Fatal(err)
	}
	logger := zap.S().With(zap.String("requestID", uuid.NewString()))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher, err := youtube.NewFetcher(source, cfg, logger)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to initialize source")
	}

	record, err := lookup(ctx, fetcher, input, logger)
	if err != nil {
		logger.With(zap.Error(err), zap.String("input", input)).Fatal("Failed to fetch video")
	}

	if err := writeRecord(os.Stdout, record); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to write record")
	}
}

func lookup(ctx context.Context, fetcher youtube.Fetcher, input string, logger *zap.SugaredLogger) (youtube.Record, error) {
	logger = logger.With(zap.String("input", input))

	start := time.Now()
	record, err := youtube.Lookup(ctx, fetcher, input)
	if err != nil {
		return youtube.Record{}, err
	}

	if record.IsEmpty() {
		logger.Warn("Video not found")
		return record, nil
	}

	fields := []interface{}{zap.Duration("elapsed", time.Since(start))}
	if record.VideoID != nil {
		fields = append(fields, zap.String("videoID", *record.VideoID))
	}
	if record.DurationSec != nil {
		fields = append(fields, zap.String("length", utils.FormatSecondsSimple(*record.DurationSec)))
	}
	if published, ok := record.PublishedTime(); ok {
		fields = append(fields, zap.String("published", units.HumanDuration(time.Since(published))+" ago"))
	}
	logger.With(fields...).Info("Fetched video")

	return record, nil
}

// writeRecord prints record as indented JSON. A record for a missing video prints as {}.
func writeRecord(w io.Writer, record youtube.Record) error {
	if record.IsEmpty() {
		_, err := io.WriteString(w, "{}\n")
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
