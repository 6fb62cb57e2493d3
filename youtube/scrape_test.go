package youtube

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xIceArcher/go-ytstats/config"
	"go.uber.org/zap"
)

// fakeYtdlp writes a shell script standing in for yt-dlp. The script records its
// arguments next to itself.
func fakeYtdlp(t *testing.T, body string) (path string, argsPath string) {
	if runtime.GOOS == "windows" {
		t.Skip("fake yt-dlp needs a POSIX shell")
	}

	dir := t.TempDir()
	path = filepath.Join(dir, "yt-dlp")
	argsPath = filepath.Join(dir, "args")

	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + argsPath + "'\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path, argsPath
}

func newTestScraper(path string) *Scraper {
	return NewScraper(config.YtdlpConfig{
		Path:           path,
		TimeoutSeconds: 5,
		ExtraArgs:      []string{"--cookies", "cookies.txt"},
	}, zap.NewNop().Sugar())
}

func TestScraper_Fetch(t *testing.T) {
	path, argsPath := fakeYtdlp(t, "cat <<'EOF'\n"+scrapeVideoJSON+"\nEOF")

	record, err := Lookup(context.Background(), newTestScraper(path), "https://youtu.be/dQw4w9WgXcQ?t=3")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", *record.VideoID)
	assert.Equal(t, "20091025", *record.PublishedAt)
	assert.Equal(t, int64(213), *record.DurationSec)
	assert.Equal(t, int64(17000000), *record.LikeCount)

	args, err := os.ReadFile(argsPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(args)), "\n")
	assert.Equal(t, []string{
		"-J", "--skip-download", "--no-warnings", "--no-check-certificates",
		"--cookies", "cookies.txt",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, lines)
}

func TestScraper_FetchUnresolvedInput(t *testing.T) {
	path, argsPath := fakeYtdlp(t, `echo '{"id": "dQw4w9WgXcQ", "view_count": "7"}'`)

	record, err := Lookup(context.Background(), newTestScraper(path), "some-video")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", *record.VideoID)
	assert.Equal(t, int64(7), *record.ViewCount)

	args, err := os.ReadFile(argsPath)
	require.NoError(t, err)
	assert.Contains(t, string(args), "https://www.youtube.com/watch?v=some-video")
}

func TestScraper_FetchUnavailable(t *testing.T) {
	path, _ := fakeYtdlp(t, "echo 'ERROR: [youtube] dQw4w9WgXcQ: Video unavailable' >&2\nexit 1")

	_, err := newTestScraper(path).Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrVideoUnavailable)
}

func TestScraper_FetchFailure(t *testing.T) {
	path, _ := fakeYtdlp(t, "echo 'ERROR: something broke' >&2\nexit 2")

	_, err := newTestScraper(path).Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVideoUnavailable)
	assert.Contains(t, err.Error(), "something broke")
}

func TestScraper_FetchBadJSON(t *testing.T) {
	path, _ := fakeYtdlp(t, "echo 'not json'")

	_, err := newTestScraper(path).Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.Error(t, err)
}

func TestScraper_FetchNotInstalled(t *testing.T) {
	scraper := newTestScraper(filepath.Join(t.TempDir(), "missing-yt-dlp"))

	_, err := scraper.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrYtdlpNotInstalled)
}

func TestScraper_FetchTimeout(t *testing.T) {
	path, _ := fakeYtdlp(t, "exec sleep 10")

	scraper := newTestScraper(path)
	scraper.timeout = 200 * time.Millisecond

	_, err := scraper.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrYtdlpTimeout)
}
