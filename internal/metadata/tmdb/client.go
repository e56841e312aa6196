package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/renamarr/renamarr/internal/config"
	"github.com/renamarr/renamarr/internal/metadata"
)

var (
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")
	ErrNotFound      = errors.New("resource not found")
	ErrAPIError      = errors.New("TMDB API error")
	ErrRateLimited   = errors.New("TMDB API rate limited")
)

var nonWordPattern = regexp.MustCompile(`\W+`)

// Client is a TMDB API client implementing metadata.Catalog.
type Client struct {
	httpClient *http.Client
	config     config.TMDBConfig
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client.
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "tmdb"
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// SearchMovie searches for a movie by title and optional year and returns the
// first result in TMDB's ranking, or nil when nothing matched.
func (c *Client) SearchMovie(ctx context.Context, title string, year int) (*metadata.MovieResult, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/movie", c.config.BaseURL)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("query", title)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var response SearchMoviesResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", title).
		Int("year", year).
		Int("results", len(response.Results)).
		Msg("Movie search completed")

	if len(response.Results) == 0 {
		return nil, nil
	}

	return toMovieResult(response.Results[0]), nil
}

// SearchSeries searches for a TV series by title and optional first-air year.
// A result whose normalized name exactly equals the normalized query is
// preferred; otherwise the first result in TMDB's ranking is returned.
func (c *Client) SearchSeries(ctx context.Context, title string, year int) (*metadata.SeriesResult, error) {
	if !c.IsConfigured() {
		return nil, ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/search/tv", c.config.BaseURL)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)
	params.Set("query", title)
	if year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(year))
	}

	var response SearchTVResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", title).
		Int("results", len(response.Results)).
		Msg("TV search completed")

	if len(response.Results) == 0 {
		return nil, nil
	}

	normQuery := normalizeTitle(title)
	for _, r := range response.Results {
		if normalizeTitle(r.Name) == normQuery {
			return toSeriesResult(r), nil
		}
	}

	return toSeriesResult(response.Results[0]), nil
}

// EpisodeTitle returns the canonical title of one episode of a series.
func (c *Client) EpisodeTitle(ctx context.Context, seriesID, season, episode int) (string, error) {
	if !c.IsConfigured() {
		return "", ErrAPIKeyMissing
	}

	endpoint := fmt.Sprintf("%s/tv/%d/season/%d/episode/%d", c.config.BaseURL, seriesID, season, episode)
	params := url.Values{}
	params.Set("api_key", c.config.APIKey)

	var details EpisodeDetails
	if err := c.doRequest(ctx, endpoint, params, &details); err != nil {
		return "", err
	}

	c.logger.Debug().
		Int("seriesID", seriesID).
		Int("season", season).
		Int("episode", episode).
		Str("title", details.Name).
		Msg("Got episode title")

	return details.Name, nil
}

// MovieExternalID returns the IMDb id for a movie, empty when TMDB has none.
func (c *Client) MovieExternalID(ctx context.Context, movieID int) (string, error) {
	return c.externalID(ctx, fmt.Sprintf("%s/movie/%d/external_ids", c.config.BaseURL, movieID))
}

// SeriesExternalID returns the IMDb id for a series, empty when TMDB has none.
func (c *Client) SeriesExternalID(ctx context.Context, seriesID int) (string, error) {
	return c.externalID(ctx, fmt.Sprintf("%s/tv/%d/external_ids", c.config.BaseURL, seriesID))
}

func (c *Client) externalID(ctx context.Context, endpoint string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.config.APIKey)

	var ids ExternalIDs
	if err := c.doRequest(ctx, endpoint, params, &ids); err != nil {
		return "", err
	}

	return ids.ImdbID, nil
}

// doRequest performs an HTTP GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		case http.StatusTooManyRequests:
			return ErrRateLimited
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// normalizeTitle strips all non-word characters and lowercases, so that
// "S.W.A.T." and "SWAT" compare equal.
func normalizeTitle(s string) string {
	return strings.ToLower(nonWordPattern.ReplaceAllString(s, ""))
}

func toMovieResult(movie MovieResult) *metadata.MovieResult {
	return &metadata.MovieResult{
		ID:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: movie.ReleaseDate,
	}
}

func toSeriesResult(tv TVResult) *metadata.SeriesResult {
	return &metadata.SeriesResult{
		ID:           tv.ID,
		Name:         tv.Name,
		FirstAirDate: tv.FirstAirDate,
	}
}
