package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hypechain/hypechain/internal/cache"
	"github.com/hypechain/hypechain/pkg/config"
	"github.com/hypechain/hypechain/pkg/logging"
	"github.com/hypechain/hypechain/pkg/telemetry"
)

// Identity is the resolved caller identity
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Client resolves bearer tokens against the external auth service
type Client struct {
	baseURL  string
	http     *http.Client
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// New creates a new auth client
func New(cfg *config.AuthConfig, redisCache *cache.Cache) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("auth_url is required")
	}

	logger := logging.WithComponent("auth-client")

	client := &Client{
		baseURL:  cfg.URL,
		http:     &http.Client{Timeout: cfg.Timeout},
		cache:    redisCache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}

	logger.Info("Auth client initialized", zap.String("url", cfg.URL))

	return client, nil
}

// Resolve resolves a bearer token to a user identity. Results are
// cached briefly so hot tokens do not hit the auth service on every
// request.
func (c *Client) Resolve(ctx context.Context, token string) (*Identity, error) {
	ctx, span := telemetry.StartSpan(ctx, "auth.resolve")
	defer span.End()

	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	cacheKey := "auth:" + cache.HashKey(token)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var identity Identity
		if err := json.Unmarshal([]byte(cached), &identity); err == nil {
			return &identity, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if identity.UserID == "" {
		return nil, nil
	}

	if data, err := json.Marshal(&identity); err == nil {
		if err := c.cache.Set(cacheKey, data, c.cacheTTL); err != nil && err != cache.ErrCacheDisabled {
			c.logger.Warn("Failed to cache identity", zap.Error(err))
		}
	}

	return &identity, nil
}
