package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/xIceArcher/go-ytstats/config"
	"go.uber.org/zap"
)

var (
	ErrYtdlpNotInstalled = errors.New("yt-dlp not installed")
	ErrYtdlpTimeout      = errors.New("yt-dlp timed out")
	ErrVideoUnavailable  = errors.New("video unavailable")
)

var unavailableMarkers = []string{
	"Video unavailable",
	"Private video",
	"This video has been removed",
	"Incomplete YouTube ID",
}

// Scraper reads video metadata without credentials by running yt-dlp.
type Scraper struct {
	path      string
	timeout   time.Duration
	extraArgs []string

	logger *zap.SugaredLogger
}

func NewScraper(cfg config.YtdlpConfig, logger *zap.SugaredLogger) *Scraper {
	return &Scraper{
		path:      cfg.Path,
		timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		extraArgs: cfg.ExtraArgs,

		logger: logger,
	}
}

// Fetch runs yt-dlp against the watch page of the video in input. Input that does not
// contain a recognizable ID is passed to yt-dlp as is.
func (s *Scraper) Fetch(ctx context.Context, input string) (Raw, error) {
	videoID, ok := ResolveVideoID(input)
	if !ok {
		videoID = input
	}

	logger := s.logger.With(zap.String("videoID", videoID))

	cmdCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	args := []string{"-J", "--skip-download", "--no-warnings", "--no-check-certificates"}
	args = append(args, s.extraArgs...)
	args = append(args, WatchURL(videoID))

	cmd := exec.CommandContext(cmdCtx, s.path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrYtdlpNotInstalled, s.path)
		}
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v", ErrYtdlpTimeout, s.timeout)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		errMsg := strings.TrimSpace(stderr.String())
		logger.With(zap.Error(err), zap.String("stderr", errMsg)).Warn("yt-dlp failed")

		for _, marker := range unavailableMarkers {
			if strings.Contains(errMsg, marker) {
				return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, errMsg)
			}
		}

		return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, errMsg)
	}

	raw := &RawScrapeInfo{Input: input}
	if err := json.Unmarshal(stdout.Bytes(), raw); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}

	return raw, nil
}
