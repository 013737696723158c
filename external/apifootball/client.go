package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/riskibarqy/seriea-gateway/internal/platform/resilience"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL    = "https://v3.football.api-sports.io"
	defaultSeason     = 2022
	defaultLeagueID   = 135
	defaultLeagueName = "Serie A"
	apiKeyHeader      = "x-apisports-key"
	maxBodyBytes      = 6 << 20
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	APIKey          string
	Season          int
	LeagueID        int64
	LeagueName      string
	Timeout         time.Duration
	MaxPages        int
	PageConcurrency int
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

// Client talks to the api-football v3 API. Calls are never retried; a breaker
// rejects calls after repeated transient failures.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	apiKey          string
	season          int
	leagueID        int64
	leagueName      string
	maxPages        int
	pageConcurrency int
	timeout         time.Duration
	logger          *logging.Logger
	breaker         *resilience.CircuitBreaker
	flight          resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	season := cfg.Season
	if season <= 0 {
		season = defaultSeason
	}
	leagueID := cfg.LeagueID
	if leagueID <= 0 {
		leagueID = defaultLeagueID
	}
	leagueName := strings.TrimSpace(cfg.LeagueName)
	if leagueName == "" {
		leagueName = defaultLeagueName
	}

	client := &Client{
		httpClient:      httpClient,
		baseURL:         baseURL,
		apiKey:          strings.TrimSpace(cfg.APIKey),
		season:          season,
		leagueID:        leagueID,
		leagueName:      leagueName,
		maxPages:        max(cfg.MaxPages, 1),
		pageConcurrency: max(cfg.PageConcurrency, 1),
		timeout:         timeout,
		logger:          logger,
		breaker:         resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
	client.breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("api-football circuit breaker state changed", "from", from, "to", to)
	})
	return client
}

func (c *Client) LeagueName() string {
	return c.leagueName
}

// FetchTeamByName looks a club up by its exact name within the configured
// league and season.
func (c *Client) FetchTeamByName(ctx context.Context, name string) (TeamsEnvelope, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TeamsEnvelope{}, fmt.Errorf("%w: team name is required", usecase.ErrInvalidInput)
	}

	var env TeamsEnvelope
	if err := c.doJSON(ctx, "/teams", c.competitionQuery("name", name), &env); err != nil {
		return TeamsEnvelope{}, fmt.Errorf("fetch team name=%q: %w", name, err)
	}
	return env, nil
}

func (c *Client) FetchStatistics(ctx context.Context, teamID int64) (StatisticsEnvelope, error) {
	if teamID <= 0 {
		return StatisticsEnvelope{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var env StatisticsEnvelope
	if err := c.doJSON(ctx, "/teams/statistics", c.competitionQuery("team", strconv.FormatInt(teamID, 10)), &env); err != nil {
		return StatisticsEnvelope{}, fmt.Errorf("fetch statistics team=%d: %w", teamID, err)
	}
	return env, nil
}

// FetchPlayers returns all pages of the team's squad merged into one envelope,
// in page order. Pages after the first are fetched concurrently.
func (c *Client) FetchPlayers(ctx context.Context, teamID int64) (PlayersEnvelope, error) {
	if teamID <= 0 {
		return PlayersEnvelope{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	first, err := c.fetchPlayersPage(ctx, teamID, 1)
	if err != nil {
		return PlayersEnvelope{}, err
	}
	if len(first.Errors) > 0 {
		return first, nil
	}

	totalPages := min(max(first.Paging.Total, 1), c.maxPages)
	if first.Paging.Total > c.maxPages {
		c.logger.WarnContext(ctx, "api-football players pagination truncated", "team_id", teamID, "pages", first.Paging.Total, "max_pages", c.maxPages)
	}
	if totalPages == 1 {
		return first, nil
	}

	type pageResult struct {
		page int
		env  PlayersEnvelope
	}

	p := pool.NewWithResults[pageResult]().
		WithContext(ctx).
		WithMaxGoroutines(c.pageConcurrency).
		WithCancelOnError()
	for page := 2; page <= totalPages; page++ {
		page := page
		p.Go(func(ctx context.Context) (pageResult, error) {
			env, err := c.fetchPlayersPage(ctx, teamID, page)
			if err != nil {
				return pageResult{}, err
			}
			if len(env.Errors) > 0 {
				return pageResult{}, checkProviderErrors(env.Meta)
			}
			return pageResult{page: page, env: env}, nil
		})
	}

	pages, err := p.Wait()
	if err != nil {
		return PlayersEnvelope{}, err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].page < pages[j].page })

	merged := first
	for _, page := range pages {
		merged.Response = append(merged.Response, page.env.Response...)
		merged.Results += page.env.Results
	}
	merged.Paging.Current = totalPages
	return merged, nil
}

func (c *Client) fetchPlayersPage(ctx context.Context, teamID int64, page int) (PlayersEnvelope, error) {
	query := c.competitionQuery("team", strconv.FormatInt(teamID, 10))
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}

	var env PlayersEnvelope
	if err := c.doJSON(ctx, "/players", query, &env); err != nil {
		return PlayersEnvelope{}, fmt.Errorf("fetch players team=%d page=%d: %w", teamID, page, err)
	}
	return env, nil
}

func (c *Client) competitionQuery(key, value string) url.Values {
	values := url.Values{}
	values.Set(key, value)
	values.Set("league", strconv.FormatInt(c.leagueID, 10))
	values.Set("season", strconv.Itoa(c.season))
	return values
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	err := c.breaker.Do(func() error {
		var reqErr error
		// The shared request outlives any single caller; each caller only
		// stops waiting when its own ctx ends.
		raw, reqErr, _ = c.flight.DoContext(ctx, fullURL, func() ([]byte, error) {
			reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
			defer cancel()
			return c.executeRequest(reqCtx, fullURL)
		})
		if reqErr != nil && ctx.Err() != nil && crerr.Is(reqErr, ctx.Err()) {
			return fmt.Errorf("%w: wait for provider: %w", usecase.ErrUpstream, reqErr)
		}
		return reqErr
	}, isCircuitFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State(), "path", path)
		return fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrMalformedUpstreamResponse, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = crerr.Mark(crerr.Wrapf(usecase.ErrUpstream, "send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey)), errTransient)
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, crerr.Mark(crerr.Wrapf(usecase.ErrUpstream, "read response body: %v", err), errTransient)
	}
	raw := append([]byte(nil), buf.B...)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := crerr.Wrapf(usecase.ErrUpstream, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(sanitizeSensitiveText(string(raw), c.apiKey)))
		if isTransientStatus(resp.StatusCode) {
			err = crerr.Mark(err, errTransient)
		}
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "status", resp.StatusCode, "error", err)
		return nil, err
	}
	return raw, nil
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return value
}

func abbreviateBody(text string) string {
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
