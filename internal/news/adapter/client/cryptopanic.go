package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"clubsite/internal/news/config"
	"clubsite/internal/news/domain/model"
	"clubsite/internal/news/domain/repository"
	apperrors "clubsite/internal/shared/errors"
	"clubsite/internal/shared/logger"

	"go.uber.org/zap"
)

// postsResponse mirrors the upstream posts payload. Only the fields the site
// consumes are decoded.
type postsResponse struct {
	Results []postResult `json:"results"`
}

type postResult struct {
	ID          json.Number  `json:"id"`
	Title       string       `json:"title"`
	PublishedAt string       `json:"published_at"`
	Kind        string       `json:"kind"`
	Source      postSource   `json:"source"`
	Instruments []instrument `json:"instruments"`
	Currencies  []instrument `json:"currencies"`
	Votes       postVotes    `json:"votes"`
}

type postSource struct {
	Title string `json:"title"`
}

type instrument struct {
	Code string `json:"code"`
}

type postVotes struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// CryptoPanicClient fetches posts from the CryptoPanic developer API and
// normalizes them for the site. The auth token stays inside this process;
// responses never echo it back.
type CryptoPanicClient struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     logger.Logger
}

// NewCryptoPanicClient creates a new upstream news client.
func NewCryptoPanicClient(cfg *config.Config, log logger.Logger) *CryptoPanicClient {
	return &CryptoPanicClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		logger:     log.WithComponent("cryptopanic_client"),
	}
}

// BuildPostsURL assembles the upstream posts URL for the given parameters,
// always overriding auth_token with the configured server-side value.
func (c *CryptoPanicClient) BuildPostsURL(params repository.FetchParams) string {
	q := url.Values{}
	q.Set("auth_token", c.cfg.CryptoPanicToken)
	q.Set("public", "true")
	q.Set("kind", orDefault(params.Kind, c.cfg.DefaultKind))
	q.Set("filter", orDefault(params.Filter, c.cfg.DefaultFilter))
	q.Set("currencies", orDefault(params.Currencies, c.cfg.DefaultCurrencies))
	q.Set("regions", orDefault(params.Regions, c.cfg.DefaultRegions))
	return c.cfg.CryptoPanicBaseURL + "/posts/?" + q.Encode()
}

// Fetch retrieves one page of posts and maps each into a NewsItem. A missing
// token fails before any network traffic.
func (c *CryptoPanicClient) Fetch(ctx context.Context, params repository.FetchParams) ([]model.NewsItem, error) {
	if c.cfg.CryptoPanicToken == "" {
		return nil, apperrors.NewConfigurationError("CRYPTOPANIC_TOKEN not configured").
			WithCode(apperrors.CodeTokenNotSet).
			WithComponent("cryptopanic_client")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildPostsURL(params), nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upstream request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upstream news fetch failed", zap.Error(err))
		return nil, apperrors.NewInfrastructureError("failed to fetch from CryptoPanic").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream news fetch returned non-success status",
			zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewInfrastructureError(fmt.Sprintf("API_STATUS_%d", resp.StatusCode)).
			WithCode(fmt.Sprintf("API_STATUS_%d", resp.StatusCode))
	}

	var payload postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewInfrastructureError("failed to decode upstream response").WithCause(err)
	}

	items := make([]model.NewsItem, 0, len(payload.Results))
	for _, r := range payload.Results {
		items = append(items, normalizePost(r))
	}
	c.logger.Debug("Fetched news from upstream", zap.Int("items", len(items)))
	return items, nil
}

// RawPosts performs one upstream posts request and returns the response status
// and body verbatim, for pass-through proxying. The token is injected here and
// never appears in the returned payload or URL given to callers.
func (c *CryptoPanicClient) RawPosts(ctx context.Context, params repository.FetchParams) (int, []byte, error) {
	if c.cfg.CryptoPanicToken == "" {
		return 0, nil, apperrors.NewConfigurationError("CRYPTOPANIC_TOKEN not configured").
			WithCode(apperrors.CodeTokenNotSet).
			WithComponent("cryptopanic_client")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildPostsURL(params), nil)
	if err != nil {
		return 0, nil, apperrors.NewInternalError("failed to build upstream request").WithCause(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upstream news proxy request failed", zap.Error(err))
		return 0, nil, apperrors.NewInfrastructureError("failed to fetch from CryptoPanic").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperrors.NewInfrastructureError("failed to read upstream response").WithCause(err)
	}
	return resp.StatusCode, body, nil
}

// normalizePost maps one upstream post onto the site's news model, filling
// placeholder values for absent title and source.
func normalizePost(r postResult) model.NewsItem {
	title := r.Title
	if title == "" {
		title = "UNTITLED"
	}
	source := r.Source.Title
	if source == "" {
		source = "UNKNOWN"
	}

	instruments := r.Instruments
	if len(instruments) == 0 {
		instruments = r.Currencies
	}
	currencies := make([]string, 0, len(instruments))
	for _, in := range instruments {
		currencies = append(currencies, in.Code)
	}

	votes := model.Votes{Positive: r.Votes.Positive, Negative: r.Votes.Negative}
	return model.NewsItem{
		ID:          r.ID.String(),
		Title:       title,
		PublishedAt: r.PublishedAt,
		Source:      source,
		Currencies:  currencies,
		Sentiment:   model.ClassifySentiment(votes),
		Votes:       votes,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
