package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// CachedAgentClient memoizes FetchLocations per city/category pair. Chat
// and tour calls pass straight through; cached results never survive past
// the TTL, so the underlying client stays the source of truth.
type CachedAgentClient struct {
	inner  AgentClient
	cache  *cache.Cache
	logger *slog.Logger
}

func NewCachedAgentClient(inner AgentClient, ttl time.Duration, logger *slog.Logger) *CachedAgentClient {
	return &CachedAgentClient{
		inner:  inner,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

var _ AgentClient = (*CachedAgentClient)(nil)

func (c *CachedAgentClient) Chat(ctx context.Context, query, city string, history []types.ChatTurn) (*types.AgentResponse, error) {
	return c.inner.Chat(ctx, query, city, history)
}

func (c *CachedAgentClient) GenerateTour(ctx context.Context, city string, vibeTags []string) (*types.TourResult, error) {
	return c.inner.GenerateTour(ctx, city, vibeTags)
}

func (c *CachedAgentClient) FetchLocations(ctx context.Context, city, category string) ([]types.Location, error) {
	key := locationKey(city, category)
	if cached, ok := c.cache.Get(key); ok {
		c.logger.DebugContext(ctx, "Location cache hit", slog.String("key", key))
		return cached.([]types.Location), nil
	}

	locations, err := c.inner.FetchLocations(ctx, city, category)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, locations, cache.DefaultExpiration)
	return locations, nil
}

// Prefetch warms the cache for several categories of one city. Failures
// abort the group; a warmed cache is an optimization, not a requirement.
func (c *CachedAgentClient) Prefetch(ctx context.Context, city string, categories []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, category := range categories {
		category := category
		g.Go(func() error {
			_, err := c.FetchLocations(ctx, city, category)
			return err
		})
	}
	return g.Wait()
}

func locationKey(city, category string) string {
	return fmt.Sprintf("%s/%s", city, category)
}
