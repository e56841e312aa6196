package scanner

import (
	"testing"
)

func TestParseMovie(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantTitle string
		wantYear  int
	}{
		{
			name:      "dotted title with year and quality",
			filename:  "Inception.2010.1080p.mkv",
			wantTitle: "Inception",
			wantYear:  2010,
		},
		{
			name:      "spaces instead of dots",
			filename:  "The Matrix 1999 BluRay.mp4",
			wantTitle: "The Matrix",
			wantYear:  1999,
		},
		{
			name:      "first year token wins",
			filename:  "Blade.Runner.2049.2017.2160p.mkv",
			wantTitle: "Blade Runner",
			wantYear:  2049,
		},
		{
			name:      "year as first token leaves empty title",
			filename:  "2012.1080p.mkv",
			wantTitle: "",
			wantYear:  2012,
		},
		{
			name:      "year outside range ignored, later year found",
			filename:  "Movie.2150.1985.mkv",
			wantTitle: "Movie 2150",
			wantYear:  1985,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMovie(tt.filename)
			if got == nil {
				t.Fatalf("ParseMovie(%q) = nil, want candidate", tt.filename)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", got.Year, tt.wantYear)
			}
		})
	}
}

func TestParseMovie_ResolutionFallback(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantTitle string
	}{
		{"4k marker", "Movie.4k.mkv", "Movie"},
		{"uppercase 4K", "Movie.4K.mkv", "Movie"},
		{"1080p marker", "Movie.1080p.x264.mkv", "Movie"},
		{"720p marker", "Something 720p.mkv", "Something"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMovie(tt.filename)
			if got == nil {
				t.Fatalf("ParseMovie(%q) = nil, want candidate", tt.filename)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Year != 0 {
				t.Errorf("Year = %d, want 0", got.Year)
			}
		})
	}
}

func TestParseMovie_NoMatch(t *testing.T) {
	for _, filename := range []string{
		"readme.txt",
		"Show.Name.S02E04.mkv",
		"notes.mkv",
		"Movie.480i.mkv",
	} {
		if got := ParseMovie(filename); got != nil {
			t.Errorf("ParseMovie(%q) = %+v, want nil", filename, got)
		}
	}
}

func TestParseEpisode(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantShow    string
		wantSeason  int
		wantEpisode int
	}{
		{
			name:        "dotted show name",
			filename:    "Show.Name.S02E04.mkv",
			wantShow:    "Show Name",
			wantSeason:  2,
			wantEpisode: 4,
		},
		{
			name:        "lowercase single-digit season",
			filename:    "Show Name - s2e04.mkv",
			wantShow:    "Show Name",
			wantSeason:  2,
			wantEpisode: 4,
		},
		{
			name:        "underscore separators",
			filename:    "Stranger_Things_S04E09.mkv",
			wantShow:    "Stranger_Things",
			wantSeason:  4,
			wantEpisode: 9,
		},
		{
			name:        "double-digit season",
			filename:    "Supernatural.S15E20.WEB-DL.mkv",
			wantShow:    "Supernatural",
			wantSeason:  15,
			wantEpisode: 20,
		},
		{
			name:        "trailing episode title ignored",
			filename:    "Breaking.Bad.S01E02.Cat's.in.the.Bag.mkv",
			wantShow:    "Breaking Bad",
			wantSeason:  1,
			wantEpisode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEpisode(tt.filename)
			if got == nil {
				t.Fatalf("ParseEpisode(%q) = nil, want candidate", tt.filename)
			}
			if got.Show != tt.wantShow {
				t.Errorf("Show = %q, want %q", got.Show, tt.wantShow)
			}
			if got.Season != tt.wantSeason {
				t.Errorf("Season = %d, want %d", got.Season, tt.wantSeason)
			}
			if got.Episode != tt.wantEpisode {
				t.Errorf("Episode = %d, want %d", got.Episode, tt.wantEpisode)
			}
		})
	}
}

func TestParseEpisode_NoMatch(t *testing.T) {
	for _, filename := range []string{
		"readme.txt",
		"Inception.2010.1080p.mkv",
		"S01E02.mkv", // no show name before the marker
		"Show.S01E1.mkv",
	} {
		if got := ParseEpisode(filename); got != nil {
			t.Errorf("ParseEpisode(%q) = %+v, want nil", filename, got)
		}
	}
}
