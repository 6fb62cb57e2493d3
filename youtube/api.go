package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/xIceArcher/go-ytstats/config"
	"github.com/xIceArcher/go-ytstats/consts"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

const (
	PartContentDetails = "contentDetails"
	PartSnippet        = "snippet"
	PartStatistics     = "statistics"
)

var (
	ErrInvalidVideoID     = errors.New("cannot resolve video ID")
	ErrInvalidCredentials = errors.New("invalid API key")
	ErrQuotaExceeded      = errors.New("API quota exceeded")
)

// Sent as a header so the key never appears in URLs that end up in error messages.
const apiKeyHeader = "X-Goog-Api-Key"

var videoParts = []string{PartSnippet, PartStatistics, PartContentDetails}

// API fetches videos from the YouTube Data API v3.
type API struct {
	apiKey  string
	baseURL string

	client *retryablehttp.Client
	logger *zap.SugaredLogger
}

func NewAPI(cfg config.GoogleConfig, client *retryablehttp.Client, logger *zap.SugaredLogger) *API {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = consts.YoutubeDataAPIBaseURL
	}

	return &API{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),

		client: client,
		logger: logger,
	}
}

// Fetch returns the videos.list response for the video in input. A response without
// items means the video does not exist and is not an error.
func (a *API) Fetch(ctx context.Context, input string) (Raw, error) {
	videoID, ok := ResolveVideoID(input)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVideoID, input)
	}

	logger := a.logger.With(zap.String("videoID", videoID))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, a.videosURL(videoID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("videos.list: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		logger.With(zap.Int("status", resp.StatusCode)).Warn("Data API returned an error")
		return nil, classifyAPIError(err)
	}

	raw := &RawAPIResponse{}
	if err := json.NewDecoder(resp.Body).Decode(raw); err != nil {
		return nil, fmt.Errorf("decode videos.list response: %w", err)
	}

	if len(raw.Items) == 0 {
		logger.Info("Video not found")
	}

	return raw, nil
}

func (a *API) videosURL(videoID string) string {
	params := url.Values{}
	params.Set("part", strings.Join(videoParts, ","))
	params.Set("id", videoID)
	params.Set("maxResults", "1")

	return a.baseURL + "/videos?" + params.Encode()
}

func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, item := range apiErr.Errors {
		switch {
		case item.Reason == "keyInvalid" || item.Reason == "keyExpired" || item.Reason == "accessNotConfigured":
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case item.Reason == "badRequest" && strings.Contains(item.Message, "API key"):
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case item.Reason == "quotaExceeded" || item.Reason == "rateLimitExceeded" || item.Reason == "dailyLimitExceeded":
			return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		}
	}

	return err
}
