// Package directory talks to the external user directory service. The
// directory owns accounts; this side reads profiles and verifies tokens.
package directory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/vats-app/vats-api/internal/domain/user"
	"github.com/vats-app/vats-api/internal/platform/cache"
	"github.com/vats-app/vats-api/internal/platform/resilience"
	"github.com/vats-app/vats-api/internal/usecase"
)

const (
	usersCacheKey        = "directory:users"
	userByIDCachePrefix  = "directory:user:"
	principalCachePrefix = "directory:principal:"
	maxResponseBytes     = 1 << 20
)

type Config struct {
	BaseURL        string
	UsersPath      string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CacheTTL       time.Duration
	Breaker        resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient    *http.Client
	usersURL      string
	introspectURL string
	adminKey      string
	logger        *slog.Logger
	breaker       *resilience.CircuitBreaker
	store         *cache.Store
}

func NewClient(httpClient *http.Client, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var breaker *resilience.CircuitBreaker
	if cfg.Breaker.Enabled {
		normalized := resilience.NormalizeCircuitBreakerConfig(cfg.Breaker)
		breaker = resilience.NewCircuitBreaker(
			normalized.FailureThreshold,
			normalized.OpenTimeout,
			normalized.HalfOpenMaxReq,
		)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Client{
		httpClient:    httpClient,
		usersURL:      buildURL(cfg.BaseURL, cfg.UsersPath),
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      cfg.AdminKey,
		logger:        logger,
		breaker:       breaker,
		store:         cache.NewStore(ttl),
	}
}

func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	v, err := c.store.GetOrLoad(ctx, usersCacheKey, func(ctx context.Context) (any, error) {
		return c.fetchUsers(ctx)
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]user.User)
	return append([]user.User(nil), items...), nil
}

func (c *Client) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, false, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	key := userByIDCachePrefix + userID
	v, err := c.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		u, exists, err := c.fetchUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return cachedUser{value: u, exists: exists}, nil
	})
	if err != nil {
		return user.User{}, false, err
	}

	cached, _ := v.(cachedUser)
	return cached.value, cached.exists, nil
}

// InvalidateUsers drops the cached user list and per-user entries so the
// next read hits the directory again.
func (c *Client) InvalidateUsers(ctx context.Context) {
	c.store.Delete(ctx, usersCacheKey)
	c.store.DeletePrefix(ctx, userByIDCachePrefix)
}

// RefreshUsers forces a fetch and repopulates the list cache.
func (c *Client) RefreshUsers(ctx context.Context) ([]user.User, error) {
	c.InvalidateUsers(ctx)
	return c.ListUsers(ctx)
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := principalCachePrefix + hashToken(token)
	v, err := c.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return c.introspect(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, _ := v.(user.Principal)
	return principal, nil
}

type cachedUser struct {
	value  user.User
	exists bool
}

type userDocument struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (c *Client) fetchUsers(ctx context.Context) ([]user.User, error) {
	body, status, err := c.doGet(ctx, c.usersURL)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, crerr.Newf("directory list users failed with status %d", status)
	}

	var docs []userDocument
	if err := sonic.Unmarshal(body, &docs); err != nil {
		return nil, crerr.Wrap(err, "unmarshal directory users")
	}

	out := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, user.User{ID: doc.ID, Username: doc.Username, Name: doc.Name})
	}

	return out, nil
}

func (c *Client) fetchUser(ctx context.Context, userID string) (user.User, bool, error) {
	body, status, err := c.doGet(ctx, c.usersURL+"/"+userID)
	if err != nil {
		return user.User{}, false, err
	}
	if status == http.StatusNotFound {
		return user.User{}, false, nil
	}
	if status != http.StatusOK {
		return user.User{}, false, crerr.Newf("directory get user failed with status %d", status)
	}

	var doc userDocument
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return user.User{}, false, crerr.Wrap(err, "unmarshal directory user")
	}

	return user.User{ID: doc.ID, Username: doc.Username, Name: doc.Name}, true, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAdminKey(req)

	body, status, err := c.do(req)
	if err != nil {
		return user.Principal{}, err
	}

	switch {
	case status == http.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case status == http.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: directory rejected admin key", usecase.ErrDependencyUnavailable)
	case status != http.StatusOK:
		c.logger.WarnContext(ctx, "directory introspection non-200", "status_code", status)
		return user.Principal{}, crerr.Newf("directory introspection failed with status %d", status)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{UserID: decoded.UserID, Email: decoded.Email}, nil
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, crerr.Wrapf(err, "create directory request for %q", url)
	}
	req.Header.Set("Accept", "application/json")
	c.setAdminKey(req)

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return nil, 0, fmt.Errorf("%w: directory circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, 0, fmt.Errorf("%w: request directory: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		c.recordFailure()
		return nil, 0, crerr.Wrap(err, "read directory response")
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.recordFailure()
	} else {
		c.recordSuccess()
	}

	body := append([]byte(nil), buf.Bytes()...)
	return body, resp.StatusCode, nil
}

func (c *Client) setAdminKey(req *http.Request) {
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}
