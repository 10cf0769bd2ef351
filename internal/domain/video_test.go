package domain

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{
			name:   "watch URL",
			input:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "short URL",
			input:  "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "embed URL",
			input:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "shorts URL",
			input:  "https://youtube.com/shorts/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "live URL with tracking param",
			input:  "https://youtube.com/live/dQw4w9WgXcQ?si=abcdef",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "legacy /v/ URL",
			input:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "bare video ID",
			input:  "dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:   "whitespace trimmed",
			input:  "  https://youtu.be/dQw4w9WgXcQ  ",
			wantID: "dQw4w9WgXcQ",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a video URL",
			input:   "https://example.com/page",
			wantErr: true,
		},
		{
			name:    "ID too short",
			input:   "abc123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractVideoID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ExtractVideoID() error = %v, want ErrInvalidURL", err)
			}
			if id != tt.wantID {
				t.Errorf("ExtractVideoID() = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestVideoMeta_ProposeNaming(t *testing.T) {
	tests := []struct {
		name       string
		video      VideoMeta
		wantAuthor string
		wantTopic  string
		wantYear   string
	}{
		{
			name: "channel and upload date present",
			video: VideoMeta{
				Title:      "Maps of Meaning",
				Channel:    "Jordan Peterson",
				UploadDate: "20170514",
			},
			wantAuthor: "Jordan Peterson",
			wantTopic:  "Maps of Meaning",
			wantYear:   "2017",
		},
		{
			name: "episode prefix stripped",
			video: VideoMeta{
				Title:      "EP 123: The Interview",
				Channel:    "Some Channel",
				UploadDate: "20240101",
			},
			wantAuthor: "Some Channel",
			wantTopic:  "The Interview",
			wantYear:   "2024",
		},
		{
			name: "hash prefix stripped",
			video: VideoMeta{
				Title:      "#45 - Deep Dive",
				Channel:    "Pod",
				UploadDate: "20230601",
			},
			wantAuthor: "Pod",
			wantTopic:  "Deep Dive",
			wantYear:   "2023",
		},
		{
			name: "channel name removed from title",
			video: VideoMeta{
				Title:      "Lex Fridman interviews a guest",
				Channel:    "Lex Fridman",
				UploadDate: "20220301",
			},
			wantAuthor: "Lex Fridman",
			wantTopic:  "interviews a guest",
			wantYear:   "2022",
		},
		{
			name:       "all fields missing",
			video:      VideoMeta{},
			wantAuthor: "Unknown",
			wantTopic:  "Untitled",
			wantYear:   "Unknown",
		},
		{
			name: "existing proposals preserved",
			video: VideoMeta{
				Title:          "Raw Title",
				Channel:        "Raw Channel",
				UploadDate:     "20200101",
				ProposedAuthor: "Edited Author",
				ProposedTopic:  "Edited Topic",
				ProposedYear:   "1999",
			},
			wantAuthor: "Edited Author",
			wantTopic:  "Edited Topic",
			wantYear:   "1999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.video
			v.ProposeNaming()
			if v.ProposedAuthor != tt.wantAuthor {
				t.Errorf("ProposedAuthor = %q, want %q", v.ProposedAuthor, tt.wantAuthor)
			}
			if v.ProposedTopic != tt.wantTopic {
				t.Errorf("ProposedTopic = %q, want %q", v.ProposedTopic, tt.wantTopic)
			}
			if v.ProposedYear != tt.wantYear {
				t.Errorf("ProposedYear = %q, want %q", v.ProposedYear, tt.wantYear)
			}
		})
	}
}

func TestVideoMeta_ProposeNaming_MultibyteTitle(t *testing.T) {
	v := VideoMeta{
		Title:      strings.Repeat("あ", 120),
		Channel:    "チャンネル",
		UploadDate: "20210101",
	}
	v.ProposeNaming()

	if !utf8.ValidString(v.ProposedTopic) {
		t.Errorf("ProposedTopic = %q is not valid UTF-8", v.ProposedTopic)
	}
	if n := utf8.RuneCountInString(v.ProposedTopic); n != 100 {
		t.Errorf("ProposedTopic has %d runes, want 100", n)
	}
}

func TestVideoMeta_Formatting(t *testing.T) {
	v := VideoMeta{UploadDate: "20170514", Duration: 9240}

	if got := v.UploadDateFormatted(); got != "2017-05-14" {
		t.Errorf("UploadDateFormatted() = %q, want 2017-05-14", got)
	}
	if got := v.DurationFormatted(); got != "2:34:00" {
		t.Errorf("DurationFormatted() = %q, want 2:34:00", got)
	}

	short := VideoMeta{Duration: 754}
	if got := short.DurationFormatted(); got != "12:34" {
		t.Errorf("DurationFormatted() = %q, want 12:34", got)
	}

	empty := VideoMeta{}
	if got := empty.UploadDateFormatted(); got != "Unknown" {
		t.Errorf("UploadDateFormatted() = %q, want Unknown", got)
	}
	if got := empty.DurationFormatted(); got != "Unknown" {
		t.Errorf("DurationFormatted() = %q, want Unknown", got)
	}
}

func TestExtractLinks(t *testing.T) {
	desc := "Check out my course: https://example.com/course\n" +
		"plain line without a link\n" +
		"https://example.com/a https://example.com/b\n"

	links := ExtractLinks(desc)
	if len(links) != 3 {
		t.Fatalf("ExtractLinks() returned %d links, want 3", len(links))
	}
	if links[0].URL != "https://example.com/course" {
		t.Errorf("links[0].URL = %q", links[0].URL)
	}
	if links[0].Context != "Check out my course:" {
		t.Errorf("links[0].Context = %q", links[0].Context)
	}
	if links[1].Context != "" {
		t.Errorf("links[1].Context = %q, want empty", links[1].Context)
	}
}

func TestExtractLinks_Cap(t *testing.T) {
	var desc string
	for i := 0; i < 30; i++ {
		desc += "https://example.com/link\n"
	}

	links := ExtractLinks(desc)
	if len(links) != 20 {
		t.Errorf("ExtractLinks() returned %d links, want cap of 20", len(links))
	}
}

func TestExtractLinks_MultibyteContext(t *testing.T) {
	desc := strings.Repeat("チ", 120) + " https://example.com/x"

	links := ExtractLinks(desc)
	if len(links) != 1 {
		t.Fatalf("ExtractLinks() returned %d links, want 1", len(links))
	}
	if !utf8.ValidString(links[0].Context) {
		t.Errorf("Context = %q is not valid UTF-8", links[0].Context)
	}
	if n := utf8.RuneCountInString(links[0].Context); n != 100 {
		t.Errorf("Context has %d runes, want 100", n)
	}
}

func TestExtractLinks_Empty(t *testing.T) {
	if links := ExtractLinks(""); links != nil {
		t.Errorf("ExtractLinks(empty) = %v, want nil", links)
	}
}
