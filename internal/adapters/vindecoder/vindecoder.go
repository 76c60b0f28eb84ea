package vindecoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/playmixer/autoparts/internal/adapters/metrics"
	"go.uber.org/zap"
)

var ErrDecodeFailed = errors.New("vin decode failed")

const cacheTTL = time.Hour

type Config struct {
	APIURL    string `env:"VIN_API_URL"`
	APIKey    string `env:"VIN_API_KEY"`
	RedisAddr string `env:"VIN_CACHE_REDIS_ADDR"`
	RedisDB   int    `env:"VIN_CACHE_REDIS_DB" envDefault:"0"`
}

// Vehicle is the decoded VIN payload as returned by the external API.
type Vehicle struct {
	Vin   string `json:"vin"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Client calls the external VIN decode API. Successful responses are cached
// in redis for an hour, the API failure mode is terminal for the request.
type Client struct {
	log    *zap.Logger
	http   *http.Client
	rdb    *redis.Client
	apiURL string
	apiKey string
}

type option func(*Client)

func Logger(log *zap.Logger) option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(cfg *Config, options ...option) (*Client, error) {
	c := &Client{
		log:    zap.NewNop(),
		http:   &http.Client{Timeout: 10 * time.Second},
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
	}

	for _, opt := range options {
		opt(c)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		c.rdb = rdb
	}

	return c, nil
}

func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *Client) Decode(ctx context.Context, vin string) (Vehicle, error) {
	vehicle := Vehicle{}

	cacheKey := "vin:" + vin
	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			if err := json.Unmarshal(cached, &vehicle); err == nil {
				return vehicle, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			c.log.Warn("vin cache read failed", zap.Error(err))
		}
	}

	start := time.Now()
	body, err := c.request(ctx, vin)
	metrics.VinDecodeLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return vehicle, err
	}

	if err := json.Unmarshal(body, &vehicle); err != nil {
		return vehicle, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
			c.log.Warn("vin cache write failed", zap.Error(err))
		}
	}

	return vehicle, nil
}

func (c *Client) request(ctx context.Context, vin string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/search?vin=%s", c.apiURL, url.QueryEscape(vin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Info("vin api error response",
			zap.String("status", resp.Status),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %s", ErrDecodeFailed, resp.Status)
	}

	return body, nil
}
