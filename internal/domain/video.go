package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Chapter is a single chapter marker from the video metadata.
type Chapter struct {
	Title     string  `json:"title"`
	StartTime float64 `json:"start_time"`
}

// Link is a URL extracted from the video description, with the
// surrounding line text as context.
type Link struct {
	URL     string `json:"url"`
	Context string `json:"context"`
}

// VideoMeta holds one video's raw metadata from yt-dlp together with
// the user-editable proposed naming and processing state. It lives for
// a single session: created at metadata fetch, edited during review,
// filled with a transcript at save, then discarded.
type VideoMeta struct {
	VideoID string
	URL     string

	// Raw metadata
	Title           string
	Channel         string
	ChannelURL      string
	UploadDate      string // YYYYMMDD
	Duration        int    // seconds
	ViewCount       int64
	LikeCount       int64
	SubscriberCount int64
	Description     string
	Chapters        []Chapter
	Links           []Link

	// Proposed naming (editable by user)
	ProposedAuthor string
	ProposedTopic  string
	ProposedYear   string

	// Processing state
	Selected   bool
	Transcript []TranscriptEntry
	FetchedAt  time.Time
}

// WatchURL builds the canonical watch URL for the video.
func (v *VideoMeta) WatchURL() string {
	return fmt.Sprintf("https://youtube.com/watch?v=%s", v.VideoID)
}

// UploadDateFormatted converts the raw YYYYMMDD date to YYYY-MM-DD.
func (v *VideoMeta) UploadDateFormatted() string {
	if len(v.UploadDate) == 8 {
		return fmt.Sprintf("%s-%s-%s", v.UploadDate[:4], v.UploadDate[4:6], v.UploadDate[6:])
	}
	if v.UploadDate == "" {
		return "Unknown"
	}
	return v.UploadDate
}

// DurationFormatted renders the duration as H:MM:SS, or M:SS under an hour.
func (v *VideoMeta) DurationFormatted() string {
	if v.Duration <= 0 {
		return "Unknown"
	}
	h := v.Duration / 3600
	m := (v.Duration % 3600) / 60
	s := v.Duration % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

var titlePrefixPattern = regexp.MustCompile(`(?i)^(EP\.?\s*\d+[:\s-]*|#\d+[:\s-]*)`)

// ProposeNaming fills the proposed author/topic/year fields from the
// raw metadata wherever they are still empty. Channel becomes author,
// the cleaned title becomes topic, the upload year becomes year.
func (v *VideoMeta) ProposeNaming() {
	if v.ProposedAuthor == "" {
		if v.Channel != "" {
			v.ProposedAuthor = v.Channel
		} else {
			v.ProposedAuthor = "Unknown"
		}
	}
	if v.ProposedTopic == "" {
		v.ProposedTopic = v.cleanTitleForTopic()
	}
	if v.ProposedYear == "" {
		if len(v.UploadDate) >= 4 {
			v.ProposedYear = v.UploadDate[:4]
		} else {
			v.ProposedYear = "Unknown"
		}
	}
}

// cleanTitleForTopic strips episode-number prefixes and an embedded
// channel name from the title, capped at 100 characters.
func (v *VideoMeta) cleanTitleForTopic() string {
	topic := titlePrefixPattern.ReplaceAllString(v.Title, "")
	if v.Channel != "" && strings.Contains(strings.ToLower(topic), strings.ToLower(v.Channel)) {
		channelPattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(v.Channel))
		if err == nil {
			topic = channelPattern.ReplaceAllString(topic, "")
		}
	}
	topic = strings.TrimSpace(topic)
	if runes := []rune(topic); len(runes) > 100 {
		topic = strings.TrimSpace(string(runes[:100]))
	}
	if topic == "" {
		return "Untitled"
	}
	return topic
}

var (
	// Matches watch?v=, /v/, youtu.be/, /embed/, /shorts/ and /live/ URLs
	videoURLPattern = regexp.MustCompile(`(?:v=|/v/|youtu\.be/|/embed/|/shorts/|/live/)([A-Za-z0-9_-]{11})`)
	// Bare 11-character video ID
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video ID out of any supported
// YouTube URL shape, or accepts a bare ID. Returns ErrInvalidURL when
// no ID can be found.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrInvalidURL
	}

	if matches := videoURLPattern.FindStringSubmatch(input); len(matches) > 1 {
		return matches[1], nil
	}

	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidURL, input)
}

var descriptionURLPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// maxDescriptionLinks caps how many links are pulled from a description.
const maxDescriptionLinks = 20

// ExtractLinks collects URLs from a video description. The rest of each
// line is kept as context, truncated to 100 characters.
func ExtractLinks(description string) []Link {
	if description == "" {
		return nil
	}

	var links []Link
	for _, line := range strings.Split(description, "\n") {
		urls := descriptionURLPattern.FindAllString(line, -1)
		if len(urls) == 0 {
			continue
		}
		context := strings.TrimSpace(descriptionURLPattern.ReplaceAllString(line, ""))
		if runes := []rune(context); len(runes) > 100 {
			context = string(runes[:100])
		}
		for _, u := range urls {
			links = append(links, Link{URL: u, Context: context})
			if len(links) >= maxDescriptionLinks {
				return links
			}
		}
	}

	return links
}
