// Package naming builds filesystem-safe filenames and output paths
// from the approved author/topic/year naming fields.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxLength bounds the composed filename when the config
	// does not say otherwise.
	DefaultMaxLength = 50

	authorMaxLength = 30
	folderMaxLength = 50
	yearMaxLength   = 4
)

var (
	unsafeChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	// Letters and digits in any script survive; punctuation does not.
	nonWordChars   = regexp.MustCompile(`[^\p{L}\p{N}\s_-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// Sanitize strips filesystem-unsafe and punctuation characters from
// free text, replaces whitespace with underscores, and truncates to
// maxLength. Never returns an empty string.
func Sanitize(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	clean := unsafeChars.ReplaceAllString(text, "")
	clean = nonWordChars.ReplaceAllString(clean, "")
	clean = whitespaceRuns.ReplaceAllString(strings.TrimSpace(clean), "_")
	clean = underscoreRuns.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "_")

	if runes := []rune(clean); len(runes) > maxLength {
		clean = strings.TrimRight(string(runes[:maxLength]), "_")
	}

	if clean == "" {
		return "untitled"
	}
	return clean
}

// BuildFilename composes {Author}_{Topic}_{Year} from the approved
// naming fields. Each component is sanitized individually and the
// topic is budgeted so the whole name stays within maxLength.
func BuildFilename(author, topic, year string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	cleanAuthor := Sanitize(author, authorMaxLength)
	cleanYear := Sanitize(year, yearMaxLength)

	// Leave room for the author, year and two joining underscores.
	// Lengths count runes so multibyte names get the same budget.
	topicBudget := maxLength - utf8.RuneCountInString(cleanAuthor) - utf8.RuneCountInString(cleanYear) - 2
	if topicBudget < 1 {
		topicBudget = 1
	}
	cleanTopic := Sanitize(topic, topicBudget)

	name := fmt.Sprintf("%s_%s_%s", cleanAuthor, cleanTopic, cleanYear)
	if runes := []rune(name); len(runes) > maxLength {
		name = strings.TrimRight(string(runes[:maxLength]), "_")
	}
	return name
}

// BuildOutputPath composes {base}/{Author}/{filename}.{ext}, creating
// the author subfolder when absent.
func BuildOutputPath(base, author, filename, ext string) (string, error) {
	dir := filepath.Join(ExpandPath(base), Sanitize(author, folderMaxLength))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	ext = strings.TrimPrefix(ext, ".")
	return filepath.Join(dir, filename+"."+ext), nil
}

// UniqueOutputPath is BuildOutputPath with a numeric suffix appended
// when the target already exists: name_2, name_3, up to _100.
func UniqueOutputPath(base, author, filename, ext string) (string, error) {
	path, err := BuildOutputPath(base, author, filename, ext)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	for counter := 2; counter <= 100; counter++ {
		numbered := fmt.Sprintf("%s_%d", filename, counter)
		path, err = BuildOutputPath(base, author, numbered, ext)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}

	return "", fmt.Errorf("too many files named %s", filename)
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
