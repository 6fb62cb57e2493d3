package consts

const (
	YoutubeWatchURLFormat = "https://www.youtube.com/watch?v=%s"

	YoutubeDataAPIBaseURL = "https://www.googleapis.com/youtube/v3"
)

const (
	// yt-dlp reports upload_date as YYYYMMDD
	TimeFormatYYYYMMDD = "20060102"
)
