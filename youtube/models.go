package youtube

import (
	"fmt"
	"time"

	"github.com/xIceArcher/go-ytstats/consts"
	"github.com/xIceArcher/go-ytstats/utils"
)

// Record is the source-independent view of a video. Nil fields were not reported by
// the source, which is different from a reported zero.
type Record struct {
	VideoID *string `json:"videoId"`
	URL     *string `json:"url"`
	Title   *string `json:"title"`

	// RFC 3339 timestamp from the Data API, YYYYMMDD from yt-dlp. Use PublishedTime to
	// compare values from different sources.
	PublishedAt *string `json:"publishedAt"`

	ChannelID    *string `json:"channelId"`
	ChannelTitle *string `json:"channelTitle"`

	DurationSec  *int64 `json:"durationSec"`
	ViewCount    *int64 `json:"viewCount"`
	LikeCount    *int64 `json:"likeCount"`
	CommentCount *int64 `json:"commentCount"`

	// Left in whatever shape the source reported
	Thumbnails any `json:"thumbnails"`
}

// IsEmpty reports whether the source found no video at all.
func (r Record) IsEmpty() bool {
	return r.VideoID == nil &&
		r.URL == nil &&
		r.Title == nil &&
		r.PublishedAt == nil &&
		r.ChannelID == nil &&
		r.ChannelTitle == nil &&
		r.DurationSec == nil &&
		r.ViewCount == nil &&
		r.LikeCount == nil &&
		r.CommentCount == nil &&
		r.Thumbnails == nil
}

func (r Record) PublishedTime() (time.Time, bool) {
	if r.PublishedAt == nil {
		return time.Time{}, false
	}

	if t, ok := utils.ParseTime(*r.PublishedAt, consts.TimeFormatYYYYMMDD); ok {
		return t, true
	}

	return utils.ParseISOTime(*r.PublishedAt)
}

func WatchURL(videoID string) string {
	return fmt.Sprintf(consts.YoutubeWatchURLFormat, videoID)
}
