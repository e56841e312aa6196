package scanner

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// MovieCandidate is a movie title/year guess parsed from a filename.
// Year is 0 when the filename carried no year token.
type MovieCandidate struct {
	Title string
	Year  int
}

// EpisodeCandidate is a show/season/episode guess parsed from a filename.
type EpisodeCandidate struct {
	Show    string
	Season  int
	Episode int
}

var (
	// Tokens are runs of dots and/or whitespace.
	tokenPattern = regexp.MustCompile(`[.\s]+`)

	// A year token is exactly four digits in 1900-2099.
	yearPattern = regexp.MustCompile(`^(19\d{2}|20\d{2})$`)

	// Resolution markers like 1080p, 720p, or 4k.
	resolutionPattern = regexp.MustCompile(`(?i)^(\d{3,4}p|4k)$`)

	// Show.Name.S02E04 or Show Name - s2e04; any non-word run or underscores
	// may separate the show name from the season/episode marker.
	episodePattern = regexp.MustCompile(`(?i)(.+?)[\W_]+s(\d{1,2})e(\d{2})`)
)

// ParseMovie extracts a movie title and release year from a filename.
// The title is every token before the first year token, joined by spaces.
// Filenames without a year token still parse when the second token is a
// resolution marker. Returns nil when no movie pattern is detected.
func ParseMovie(filename string) *MovieCandidate {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	tokens := tokenPattern.Split(name, -1)

	for i, token := range tokens {
		if yearPattern.MatchString(token) {
			year, _ := strconv.Atoi(token)
			return &MovieCandidate{
				Title: strings.Join(tokens[:i], " "),
				Year:  year,
			}
		}
	}

	if len(tokens) >= 2 && resolutionPattern.MatchString(tokens[1]) {
		return &MovieCandidate{Title: tokens[0]}
	}

	return nil
}

// ParseEpisode extracts a show name, season, and episode number from a
// filename. Returns nil when no episode pattern is detected.
func ParseEpisode(filename string) *EpisodeCandidate {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	match := episodePattern.FindStringSubmatch(name)
	if match == nil {
		return nil
	}

	show := strings.TrimSpace(strings.ReplaceAll(match[1], ".", " "))
	season, _ := strconv.Atoi(match[2])
	episode, _ := strconv.Atoi(match[3])

	return &EpisodeCandidate{Show: show, Season: season, Episode: episode}
}
