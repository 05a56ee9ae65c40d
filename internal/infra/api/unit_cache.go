package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/config"
	"stay-client/internal/pkg/session"
)

type unitFetcher interface {
	GetUnit(ctx context.Context, sess session.Session, id string) (*booking.Unit, error)
	ListUnits(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error)
}

// CachedUnits keeps recently fetched units for a short TTL. Units are
// read-only for this client, so a stale entry only delays a rate change.
// Concurrent misses for the same id share one upstream call.
type CachedUnits struct {
	next   unitFetcher
	cache  *expirable.LRU[string, *booking.Unit]
	group  singleflight.Group
	logger *slog.Logger
}

func NewCachedUnits(next unitFetcher, cfg config.APIConfig, logger *slog.Logger) *CachedUnits {
	size := cfg.UnitCacheSize
	if size <= 0 {
		size = 256
	}
	ttl := cfg.UnitCacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedUnits{
		next:   next,
		cache:  expirable.NewLRU[string, *booking.Unit](size, nil, ttl),
		logger: logger,
	}
}

func (c *CachedUnits) GetUnit(ctx context.Context, sess session.Session, id string) (*booking.Unit, error) {
	if unit, ok := c.cache.Get(id); ok {
		return unit, nil
	}

	v, err, shared := c.group.Do(id, func() (any, error) {
		unit, err := c.next.GetUnit(ctx, sess, id)
		if err != nil {
			return nil, err
		}
		c.cache.Add(id, unit)
		return unit, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("unit fetch shared", "unit_id", id)
	}
	return v.(*booking.Unit), nil
}

// ListUnits always goes upstream and refreshes the entries it returns.
func (c *CachedUnits) ListUnits(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error) {
	units, err := c.next.ListUnits(ctx, sess, filter)
	if err != nil {
		return nil, err
	}
	for _, unit := range units {
		c.cache.Add(unit.ID(), unit)
	}
	return units, nil
}

func (c *CachedUnits) Purge() {
	c.cache.Purge()
}
