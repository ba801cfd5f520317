package cj

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/donaldgifford/dropship-gateway/internal/metrics"
)

const (
	defaultBaseURL = "https://developers.cjdropshipping.com/api2.0/v1"

	pathLogin        = "/authentication/getAccessToken"
	pathRefresh      = "/authentication/refreshAccessToken"
	pathProductList  = "/product/list"
	pathVariantQuery = "/product/variant/query"
	pathCreateOrder  = "/shopping/order/createOrderV2"

	accessTokenHeader = "CJ-Access-Token" //nolint:gosec // header name, not a credential

	// Fallbacks when the partner omits or garbles expiry dates. Access
	// tokens are valid for about two weeks, refresh tokens for months.
	defaultAccessTokenTTL  = 14 * 24 * time.Hour
	defaultRefreshTokenTTL = 180 * 24 * time.Hour
)

// GatewayClient implements Client against the partner HTTP API. All
// outbound calls, including authentication, flow through one serialized
// request lane per account: session state and the pacing clock are only
// ever touched by the lane's single active task.
type GatewayClient struct {
	baseURL string
	email   string
	apiKey  string

	httpClient *http.Client
	tokens     TokenStore
	limiter    *RateLimiter
	queue      *RequestQueue
	cache      *SearchCache
	log        *slog.Logger
	nowFunc    func() time.Time
}

// GatewayOption configures the GatewayClient.
type GatewayOption func(*GatewayClient)

// WithBaseURL overrides the default partner endpoint.
func WithBaseURL(u string) GatewayOption {
	return func(c *GatewayClient) {
		c.baseURL = u
	}
}

// WithGatewayHTTPClient overrides the default HTTP client.
func WithGatewayHTTPClient(hc *http.Client) GatewayOption {
	return func(c *GatewayClient) {
		c.httpClient = hc
	}
}

// WithTokenStore overrides the default in-memory token store.
func WithTokenStore(ts TokenStore) GatewayOption {
	return func(c *GatewayClient) {
		c.tokens = ts
	}
}

// WithRateLimiter injects the pacing limiter. Defaults to the free tier.
func WithRateLimiter(r *RateLimiter) GatewayOption {
	return func(c *GatewayClient) {
		c.limiter = r
	}
}

// WithSearchCache injects a TTL cache for product searches.
func WithSearchCache(sc *SearchCache) GatewayOption {
	return func(c *GatewayClient) {
		c.cache = sc
	}
}

// WithGatewayLogger sets the logger.
func WithGatewayLogger(l *slog.Logger) GatewayOption {
	return func(c *GatewayClient) {
		c.log = l
	}
}

// WithGatewayNowFunc overrides the time function for testing.
func WithGatewayNowFunc(f func() time.Time) GatewayOption {
	return func(c *GatewayClient) {
		c.nowFunc = f
	}
}

// NewGatewayClient creates a client for one partner account.
func NewGatewayClient(email, apiKey string, opts ...GatewayOption) *GatewayClient {
	c := &GatewayClient{
		baseURL:    defaultBaseURL,
		email:      email,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     NewMemoryTokenStore(),
		log:        slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limiter == nil {
		c.limiter = NewRateLimiter(TierFree)
	}
	c.queue = NewRequestQueue(c.limiter)
	return c
}

// Close stops the request lane. In-flight work completes; buffered tasks
// fail with ErrQueueClosed.
func (c *GatewayClient) Close() {
	c.queue.Close()
}

// Authenticate obtains a fresh session via the partner's login call. It
// goes through the request lane like any other partner call.
func (c *GatewayClient) Authenticate(ctx context.Context) error {
	return c.queue.Enqueue(ctx, func(ctx context.Context) error {
		_, err := c.login(ctx)
		return err
	})
}

// TestConnection performs a minimal authenticated call against the
// partner, bypassing the search cache.
func (c *GatewayClient) TestConnection(ctx context.Context) error {
	q := url.Values{}
	q.Set("pageNum", "1")
	q.Set("pageSize", "1")

	var data productListData
	return c.do(ctx, http.MethodGet, pathProductList, q, nil, &data)
}

// do submits one logical partner call to the request lane and blocks
// until it completes.
func (c *GatewayClient) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) error {
	return c.queue.Enqueue(ctx, func(ctx context.Context) error {
		return c.execute(ctx, method, path, query, body, out)
	})
}

// execute runs inside the serialized lane: ensure a valid session, send,
// classify, and retry at most once per self-healing condition. This loop
// and the classifier in errors.go are the only places retry policy lives.
func (c *GatewayClient) execute(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) error {
	token, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	var retriedRate, retriedAuth bool
	for {
		status, env, sendErr := c.send(ctx, method, path, query, body, token)
		if sendErr != nil {
			metrics.APIErrorsTotal.WithLabelValues("transport").Inc()
			return &TransportError{Err: sendErr}
		}

		switch classify(status, env.Code) {
		case dispositionOK:
			if out != nil && len(env.Data) > 0 {
				if err := json.Unmarshal(env.Data, out); err != nil {
					return fmt.Errorf("parsing response data: %w", err)
				}
			}
			return nil

		case dispositionRateLimited:
			if retriedRate {
				metrics.APIErrorsTotal.WithLabelValues("rate_limit").Inc()
				return &RateLimitError{
					Backoff: c.limiter.BackoffDelay(),
					Message: env.Message,
				}
			}
			retriedRate = true
			metrics.RateLimitHitsTotal.Inc()
			c.log.Warn("partner rate limit hit, backing off",
				"path", path,
				"backoff", c.limiter.BackoffDelay(),
			)
			if err := sleepCtx(ctx, c.limiter.BackoffDelay()); err != nil {
				return err
			}

		case dispositionAuthExpired:
			if retriedAuth {
				metrics.APIErrorsTotal.WithLabelValues("auth").Inc()
				c.tokens.Clear()
				return &AuthError{Message: env.Message}
			}
			retriedAuth = true
			c.log.Info("partner rejected token, refreshing session", "path", path)
			token, err = c.refreshOrLogin(ctx)
			if err != nil {
				return err
			}

		default:
			metrics.APIErrorsTotal.WithLabelValues("remote").Inc()
			code := env.Code
			if code == 0 {
				code = status
			}
			return &RemoteError{Code: code, Message: env.Message}
		}
	}
}

// ensureSession returns a usable access token, refreshing or fully
// re-authenticating as needed. Only called from within the lane.
func (c *GatewayClient) ensureSession(ctx context.Context) (string, error) {
	if s, ok := c.tokens.Get(); ok && s.Valid(c.nowFunc()) {
		return s.AccessToken, nil
	}
	return c.refreshOrLogin(ctx)
}

// refreshOrLogin tries a token refresh first and falls back to a full
// login when no refresh token is usable or the refresh is rejected.
func (c *GatewayClient) refreshOrLogin(ctx context.Context) (string, error) {
	if s, ok := c.tokens.Get(); ok && s.RefreshValid(c.nowFunc()) {
		token, err := c.refresh(ctx, s.RefreshToken)
		if err == nil {
			return token, nil
		}
		c.log.Warn("token refresh failed, re-authenticating", "err", err)
	}

	sess, err := c.login(ctx)
	if err != nil {
		return "", err
	}
	return sess.AccessToken, nil
}

// login performs the credentials flow and stores the resulting session.
func (c *GatewayClient) login(ctx context.Context) (Session, error) {
	body := map[string]string{
		"email":    c.email,
		"password": c.apiKey,
	}

	status, env, err := c.send(ctx, http.MethodPost, pathLogin, nil, body, "")
	if err != nil {
		return Session{}, &TransportError{Err: err}
	}
	if classify(status, env.Code) != dispositionOK {
		c.tokens.Clear()
		metrics.APIErrorsTotal.WithLabelValues("auth").Inc()
		return Session{}, &AuthError{Message: env.Message}
	}

	var data accessTokenData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Session{}, fmt.Errorf("parsing login response: %w", err)
	}

	sess := c.sessionFromTokenData(data)
	c.tokens.Set(sess)
	metrics.AuthLoginsTotal.Inc()
	c.log.Info("authenticated with partner", "expires_at", sess.ExpiresAt)
	return sess, nil
}

// refresh exchanges the refresh token for a new session.
func (c *GatewayClient) refresh(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refreshToken": refreshToken}

	status, env, err := c.send(ctx, http.MethodPost, pathRefresh, nil, body, "")
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if classify(status, env.Code) != dispositionOK {
		return "", &AuthError{Message: env.Message}
	}

	var data accessTokenData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("parsing refresh response: %w", err)
	}

	sess := c.sessionFromTokenData(data)
	c.tokens.Set(sess)
	metrics.AuthRefreshesTotal.Inc()
	return sess.AccessToken, nil
}

func (c *GatewayClient) sessionFromTokenData(data accessTokenData) Session {
	now := c.nowFunc()
	return Session{
		AccessToken:      data.AccessToken,
		RefreshToken:     data.RefreshToken,
		ExpiresAt:        parseExpiry(data.AccessTokenExpiryDate, now.Add(defaultAccessTokenTTL)),
		RefreshExpiresAt: parseExpiry(data.RefreshTokenExpiryDate, now.Add(defaultRefreshTokenTTL)),
	}
}

// expiryLayouts covers the date formats the partner has been seen to emit.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseExpiry(s string, fallback time.Time) time.Time {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

// send performs one HTTP dispatch and parses the partner envelope. It
// never retries; classification and retry belong to execute.
func (c *GatewayClient) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	token string,
) (int, *apiEnvelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(accessTokenHeader, token)
	}

	metrics.APICallsTotal.Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}

	env := &apiEnvelope{}
	if err := json.Unmarshal(respBody, env); err != nil {
		// Rate limiters and proxies sometimes answer with non-JSON
		// bodies; fall back to the HTTP status for classification.
		env = &apiEnvelope{Code: 0, Message: string(respBody)}
	}

	return resp.StatusCode, env, nil
}

// sleepCtx sleeps for d or until the context is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
