package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

// ParseInputFile reads a file containing video URLs or IDs, one per line.
// Blank lines and lines starting with # are ignored. Invalid lines are
// skipped. Returns canonical watch URLs.
func ParseInputFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, err := domain.ExtractVideoID(line)
		if err != nil {
			// Skip invalid lines
			continue
		}

		urls = append(urls, watchURL(id))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

// CollectInputs combines CLI arguments and file input, deduplicating by
// video ID. Args are processed first, then file entries. Returns unique
// canonical watch URLs in order of first appearance.
func CollectInputs(args []string, filePath string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	add := func(input string) {
		id, err := domain.ExtractVideoID(input)
		if err != nil {
			return
		}
		if !seen[id] {
			seen[id] = true
			urls = append(urls, watchURL(id))
		}
	}

	for _, arg := range args {
		add(arg)
	}

	if filePath != "" {
		fileURLs, err := ParseInputFile(filePath)
		if err != nil {
			return nil, err
		}
		for _, u := range fileURLs {
			add(u)
		}
	}

	return urls, nil
}

func watchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// PromptURLs reads URLs interactively from stdin until a blank line,
// deduplicating by video ID and stopping at the batch limit.
func PromptURLs(r *bufio.Reader, limit int, echo func(string)) []string {
	seen := make(map[string]bool)
	var urls []string

	for len(urls) < limit {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		id, idErr := domain.ExtractVideoID(line)
		if idErr != nil {
			echo("  not a YouTube URL, skipped")
		} else if seen[id] {
			echo("  duplicate, skipped")
		} else {
			seen[id] = true
			urls = append(urls, watchURL(id))
			echo("  ✓ added")
		}

		if err != nil {
			break
		}
	}

	return urls
}
