package youtube

import "regexp"

var (
	videoIDRegex         = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	embeddedVideoIDRegex = regexp.MustCompile(`(?:v=|/v/|/embed/|/shorts/|youtu\.be/)([0-9A-Za-z_-]{11})`)
)

func IsVideoID(s string) bool {
	return videoIDRegex.MatchString(s)
}

// ResolveVideoID returns the video ID in s, which may be a bare ID or any watch, embed,
// shorts or youtu.be URL. When s holds several candidates the leftmost one wins.
func ResolveVideoID(s string) (string, bool) {
	if IsVideoID(s) {
		return s, true
	}

	match := embeddedVideoIDRegex.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}

	return match[1], true
}
