package steam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamevault/internal/platform/metrics"

	"golang.org/x/time/rate"
)

var (
	// ErrUnavailable covers transport failures, timeouts, non-2xx responses
	// and undecodable bodies.
	ErrUnavailable = errors.New("steam unavailable")
	// ErrRejected is returned when Steam reports success=false for an app id.
	ErrRejected = errors.New("steam rejected app id")
)

type Config struct {
	StoreURL  string
	APIURL    string
	SearchURL string
	UserAgent string
	Timeout   time.Duration
	RPS       int
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	storeURL   string
	apiURL     string
	searchURL  string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Every(time.Second / time.Duration(cfg.RPS))
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		storeURL:  strings.TrimRight(orDefault(cfg.StoreURL, "https://store.steampowered.com"), "/"),
		apiURL:    strings.TrimRight(orDefault(cfg.APIURL, "https://api.steampowered.com"), "/"),
		searchURL: strings.TrimRight(orDefault(cfg.SearchURL, "https://steamcommunity.com"), "/"),
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// GetAppList fetches the full Steam app directory.
func (c *Client) GetAppList(ctx context.Context) ([]App, error) {
	body, err := c.get(ctx, "applist", c.apiURL+"/ISteamApps/GetAppList/v2/")
	if err != nil {
		return nil, err
	}
	return parseAppList(body)
}

// GetAppDetails fetches the store details for appID.
func (c *Client) GetAppDetails(ctx context.Context, appID int64) (AppDetails, error) {
	u := fmt.Sprintf("%s/api/appdetails?appids=%d&cc=us&l=en", c.storeURL, appID)
	body, err := c.get(ctx, "appdetails", u)
	if err != nil {
		return AppDetails{}, err
	}
	return parseAppDetails(body, appID)
}

// SearchApps queries the community app search. At most limit results are
// returned.
func (c *Client) SearchApps(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	u := c.searchURL + "/actions/SearchApps/" + url.PathEscape(query)
	body, err := c.get(ctx, "search", u)
	if err != nil {
		return nil, err
	}
	return parseSearchResults(body, limit)
}

// get performs a single request. Nothing is retried.
func (c *Client) get(ctx context.Context, endpoint, u string) (body []byte, err error) {
	defer func() { metrics.RecordSteamRequest(endpoint, err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUnavailable, resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return body, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func formatAppID(id int64) string {
	return strconv.FormatInt(id, 10)
}
