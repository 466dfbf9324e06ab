package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/arlox/showdeck/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "showdeck/1.0"
)

// Client implements domain.CatalogSource against a TVMaze-shaped API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new catalog API client. requestsPerSecond bounds the
// outgoing request rate (the public API enforces roughly 2 req/s).
func NewClient(baseURL string, requestsPerSecond float64, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:  logger,
	}
}

// doRequest performs a rate-limited GET and returns the body.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "url", reqURL, "error", err)
		return nil, 0, domain.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// FetchShowPage returns one page of the show catalog. The API signals the
// end of the catalog with a 404; that maps to an empty page, not an error.
func (c *Client) FetchShowPage(ctx context.Context, page int) ([]domain.Show, error) {
	path := fmt.Sprintf("/shows?page=%d", page)
	body, status, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return []domain.Show{}, nil
	}
	if status != http.StatusOK {
		c.logger.Error("show page request error", "page", page, "status", status)
		return nil, fmt.Errorf("show page %d: unexpected status code: %d", page, status)
	}

	var dtos []showDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Warn("show page not a record array", "page", page, "error", err)
		return nil, fmt.Errorf("show page %d: %w", page, domain.ErrMalformedResponse)
	}

	return mapShows(dtos), nil
}

// FetchEpisodes returns the episode list for one show in source order.
func (c *Client) FetchEpisodes(ctx context.Context, showID int64) ([]domain.Episode, error) {
	path := fmt.Sprintf("/shows/%d/episodes", showID)
	body, status, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, domain.ErrShowNotFound
	}
	if status != http.StatusOK {
		c.logger.Error("episode request error", "show", showID, "status", status)
		return nil, fmt.Errorf("episodes for show %d: unexpected status code: %d", showID, status)
	}

	var dtos []episodeDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Warn("episode body not a record array", "show", showID, "error", err)
		return nil, fmt.Errorf("episodes for show %d: %w", showID, domain.ErrMalformedResponse)
	}

	return mapEpisodes(dtos), nil
}
