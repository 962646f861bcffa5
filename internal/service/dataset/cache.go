package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/models"
	"github.com/Bekzhan-O/tutor-dashboard/internal/domain/types"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/hasher"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/metrics"
)

// DefaultTTL bounds the age of the cached collection when no TTL is
// configured.
const DefaultTTL = 10 * time.Second

// RefreshHook runs after a refresh whose row content actually changed.
type RefreshHook func(ctx context.Context, count int, checksum string)

// Cache holds the most recently parsed record collection together with
// its fetch timestamp, and refreshes it from the row source once it
// goes stale. The held slice is handed out as-is: callers must treat
// it as read-only and must not retain it across reporting calls.
type Cache struct {
	source RowSource
	parser *Parser
	ttl    time.Duration
	l      logger.Logger

	mu        sync.Mutex
	records   []models.SessionRecord
	fetchedAt time.Time
	checksum  string

	onRefresh []RefreshHook

	now func() time.Time
}

func NewCache(source RowSource, parser *Parser, ttl time.Duration, l logger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		source: source,
		parser: parser,
		ttl:    ttl,
		l:      l,
		now:    time.Now,
	}
}

// OnRefresh registers a hook fired after a refresh that changed the
// dataset checksum. Register before serving traffic; not safe to call
// concurrently with GetRecords.
func (c *Cache) OnRefresh(hook RefreshHook) {
	c.onRefresh = append(c.onRefresh, hook)
}

// GetRecords returns the current record collection, refreshing it from
// the row source when stale or when force is set. A failed fetch
// surfaces as types.ErrDataUnavailable and leaves the previous
// collection untouched.
func (c *Cache) GetRecords(ctx context.Context, force bool) ([]models.SessionRecord, error) {
	ctx = wrap.WithSource(ctx, c.source.Name())

	c.mu.Lock()

	if !force && !c.staleLocked() {
		records := c.records
		c.mu.Unlock()
		metrics.CacheHitsTotal.WithLabelValues(types.ServiceName).Inc()
		return records, nil
	}

	metrics.CacheMissesTotal.WithLabelValues(types.ServiceName).Inc()
	ctx = wrap.WithAction(ctx, types.ActionDatasetRefresh)

	start := time.Now()
	rows, err := c.source.FetchRows(ctx)
	metrics.RecordDatasetFetch(types.ServiceName, c.source.Name(), err, time.Since(start))
	if err != nil {
		c.mu.Unlock()
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %v", types.ErrDataUnavailable, err))
	}

	records := c.parser.ParseRows(rows)
	checksum := hasher.SumRows(rows)
	changed := checksum != c.checksum

	// Swap the whole entry at once: collection, timestamp and checksum.
	c.records = records
	c.fetchedAt = c.now()
	c.checksum = checksum
	hooks := append([]RefreshHook(nil), c.onRefresh...)
	c.mu.Unlock()

	c.l.Debug(ctx, "dataset refreshed",
		"rows", len(rows),
		"records", len(records),
		"changed", changed,
	)

	if changed {
		for _, hook := range hooks {
			hook(ctx, len(records), checksum)
		}
	}

	return records, nil
}

// Clear discards the held collection so that the next access refetches.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.records = nil
	c.fetchedAt = time.Time{}
	c.checksum = ""
	c.mu.Unlock()

	c.l.Info(wrap.WithAction(context.Background(), "cache_clear"), "dataset cache cleared")
}

// Checksum returns the digest of the raw rows behind the held collection.
func (c *Cache) Checksum() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checksum
}

// LastFetched returns when the held collection was produced.
func (c *Cache) LastFetched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

func (c *Cache) staleLocked() bool {
	return c.records == nil || c.now().Sub(c.fetchedAt) > c.ttl
}
