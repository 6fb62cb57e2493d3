package youtube

import "github.com/xIceArcher/go-ytstats/utils"

// Raw is a fetched record still in the shape of the source that produced it.
type Raw interface {
	toRecord() Record
}

func Normalize(raw Raw) Record {
	if raw == nil {
		return Record{}
	}
	return raw.toRecord()
}

// RawAPIResponse is the body of a Data API videos.list call.
type RawAPIResponse struct {
	Items []*RawAPIItem `json:"items"`
}

type RawAPIItem struct {
	ID string `json:"id"`

	Snippet        *RawAPISnippet        `json:"snippet"`
	Statistics     *RawAPIStatistics     `json:"statistics"`
	ContentDetails *RawAPIContentDetails `json:"contentDetails"`
}

// Untyped like RawScrapeInfo, so one mistyped field cannot fail the whole response.
type RawAPISnippet struct {
	Title        any `json:"title"`
	PublishedAt  any `json:"publishedAt"`
	ChannelID    any `json:"channelId"`
	ChannelTitle any `json:"channelTitle"`
	Thumbnails   any `json:"thumbnails"`
}

// Counts are sent as strings, and omitted entirely when the owner hides them.
type RawAPIStatistics struct {
	ViewCount    any `json:"viewCount"`
	LikeCount    any `json:"likeCount"`
	CommentCount any `json:"commentCount"`
}

type RawAPIContentDetails struct {
	Duration *string `json:"duration"`
}

func (r *RawAPIResponse) toRecord() Record {
	if r == nil || len(r.Items) == 0 || r.Items[0] == nil {
		return Record{}
	}

	item := r.Items[0]

	snippet := item.Snippet
	if snippet == nil {
		snippet = &RawAPISnippet{}
	}
	statistics := item.Statistics
	if statistics == nil {
		statistics = &RawAPIStatistics{}
	}
	contentDetails := item.ContentDetails
	if contentDetails == nil {
		contentDetails = &RawAPIContentDetails{}
	}

	record := Record{
		Title:        utils.StringPtr(snippet.Title),
		PublishedAt:  utils.StringPtr(snippet.PublishedAt),
		ChannelID:    utils.StringPtr(snippet.ChannelID),
		ChannelTitle: utils.StringPtr(snippet.ChannelTitle),
		ViewCount:    count(statistics.ViewCount),
		LikeCount:    count(statistics.LikeCount),
		CommentCount: count(statistics.CommentCount),
		Thumbnails:   snippet.Thumbnails,
	}

	if IsVideoID(item.ID) {
		record.VideoID = utils.Ptr(item.ID)
		record.URL = utils.Ptr(WatchURL(item.ID))
	}

	if contentDetails.Duration != nil {
		if seconds, ok := ParseDurationSeconds(*contentDetails.Duration); ok {
			record.DurationSec = &seconds
		}
	}

	return record
}

// RawScrapeInfo is the subset of the yt-dlp info JSON that maps onto a Record. Everything
// is left untyped because scraped values are not guaranteed to have the documented types.
type RawScrapeInfo struct {
	// What the caller asked for, used when yt-dlp does not report an ID
	Input string `json:"-"`

	ID           any `json:"id"`
	WebpageURL   any `json:"webpage_url"`
	Title        any `json:"title"`
	UploadDate   any `json:"upload_date"`
	ChannelID    any `json:"channel_id"`
	Uploader     any `json:"uploader"`
	Duration     any `json:"duration"`
	ViewCount    any `json:"view_count"`
	LikeCount    any `json:"like_count"`
	CommentCount any `json:"comment_count"`
	Thumbnails   any `json:"thumbnails"`
}

func (r *RawScrapeInfo) toRecord() Record {
	if r == nil {
		return Record{}
	}

	record := Record{
		Title:        utils.StringPtr(r.Title),
		PublishedAt:  utils.StringPtr(r.UploadDate),
		ChannelID:    utils.StringPtr(r.ChannelID),
		ChannelTitle: utils.StringPtr(r.Uploader),
		DurationSec:  count(r.Duration),
		ViewCount:    count(r.ViewCount),
		LikeCount:    count(r.LikeCount),
		CommentCount: count(r.CommentCount),
		Thumbnails:   r.Thumbnails,
	}

	videoID, ok := utils.ToString(r.ID)
	if !ok || !IsVideoID(videoID) {
		videoID, ok = ResolveVideoID(r.Input)
	}

	if ok {
		record.VideoID = utils.Ptr(videoID)
		record.URL = utils.Ptr(WatchURL(videoID))
	} else {
		record.URL = utils.StringPtr(r.WebpageURL)
	}

	return record
}

// count treats negative values as unreported.
func count(v any) *int64 {
	n := utils.Int64Ptr(v)
	if n == nil || *n < 0 {
		return nil
	}
	return n
}
