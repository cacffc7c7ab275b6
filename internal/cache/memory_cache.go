package cache

import (
	"sync"
	"time"

	"github.com/paintops/damagecast/internal/models"
)

// AnalyticsCache is an in-memory TTL cache in front of the aggregation
// queries behind the analytics endpoints. Entries expire on read so a burst
// of dashboard traffic costs one scan per surface per TTL window.
type AnalyticsCache struct {
	summaries   map[string]summaryEntry
	dealers     map[int]dealerEntry
	warehouses  *warehouseEntry
	trends      map[string]trendEntry
	problems    *problemsEntry
	summaryMu   sync.RWMutex
	dealerMu    sync.RWMutex
	warehouseMu sync.RWMutex
	trendMu     sync.RWMutex
	problemsMu  sync.RWMutex
	ttl         time.Duration
}

type summaryEntry struct {
	summary   *models.AnalyticsSummary
	fetchedAt time.Time
}

type dealerEntry struct {
	rows      []models.DealerAnalytics
	fetchedAt time.Time
}

type warehouseEntry struct {
	rows      []models.WarehouseAnalytics
	fetchedAt time.Time
}

type trendEntry struct {
	trend     *models.TrendAnalysis
	fetchedAt time.Time
}

type problemsEntry struct {
	problems  *models.TopProblems
	fetchedAt time.Time
}

// NewAnalyticsCache creates a new analytics cache with one TTL for all
// surfaces.
func NewAnalyticsCache(ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{
		summaries: make(map[string]summaryEntry),
		dealers:   make(map[int]dealerEntry),
		trends:    make(map[string]trendEntry),
		ttl:       ttl,
	}
}

func (c *AnalyticsCache) fresh(fetchedAt time.Time) bool {
	return time.Since(fetchedAt) <= c.ttl
}

// GetSummary retrieves a cached summary for a date-range key if fresh.
func (c *AnalyticsCache) GetSummary(key string) (*models.AnalyticsSummary, bool) {
	c.summaryMu.RLock()
	defer c.summaryMu.RUnlock()

	entry, exists := c.summaries[key]
	if !exists || !c.fresh(entry.fetchedAt) {
		return nil, false
	}
	return entry.summary, true
}

// SetSummary caches a summary under a date-range key.
func (c *AnalyticsCache) SetSummary(key string, summary *models.AnalyticsSummary) {
	c.summaryMu.Lock()
	defer c.summaryMu.Unlock()

	c.summaries[key] = summaryEntry{summary: summary, fetchedAt: time.Now()}
}

// GetDealers retrieves cached dealer rows for a limit if fresh.
func (c *AnalyticsCache) GetDealers(limit int) ([]models.DealerAnalytics, bool) {
	c.dealerMu.RLock()
	defer c.dealerMu.RUnlock()

	entry, exists := c.dealers[limit]
	if !exists || !c.fresh(entry.fetchedAt) {
		return nil, false
	}
	return entry.rows, true
}

// SetDealers caches dealer rows under their limit.
func (c *AnalyticsCache) SetDealers(limit int, rows []models.DealerAnalytics) {
	c.dealerMu.Lock()
	defer c.dealerMu.Unlock()

	c.dealers[limit] = dealerEntry{rows: rows, fetchedAt: time.Now()}
}

// GetWarehouses retrieves the cached warehouse rows if fresh.
func (c *AnalyticsCache) GetWarehouses() ([]models.WarehouseAnalytics, bool) {
	c.warehouseMu.RLock()
	defer c.warehouseMu.RUnlock()

	if c.warehouses == nil || !c.fresh(c.warehouses.fetchedAt) {
		return nil, false
	}
	return c.warehouses.rows, true
}

// SetWarehouses caches the warehouse rows.
func (c *AnalyticsCache) SetWarehouses(rows []models.WarehouseAnalytics) {
	c.warehouseMu.Lock()
	defer c.warehouseMu.Unlock()

	c.warehouses = &warehouseEntry{rows: rows, fetchedAt: time.Now()}
}

// GetTrend retrieves a cached trend for a period/window key if fresh.
func (c *AnalyticsCache) GetTrend(key string) (*models.TrendAnalysis, bool) {
	c.trendMu.RLock()
	defer c.trendMu.RUnlock()

	entry, exists := c.trends[key]
	if !exists || !c.fresh(entry.fetchedAt) {
		return nil, false
	}
	return entry.trend, true
}

// SetTrend caches a trend under its period/window key.
func (c *AnalyticsCache) SetTrend(key string, trend *models.TrendAnalysis) {
	c.trendMu.Lock()
	defer c.trendMu.Unlock()

	c.trends[key] = trendEntry{trend: trend, fetchedAt: time.Now()}
}

// GetProblems retrieves the cached problem rankings if fresh.
func (c *AnalyticsCache) GetProblems() (*models.TopProblems, bool) {
	c.problemsMu.RLock()
	defer c.problemsMu.RUnlock()

	if c.problems == nil || !c.fresh(c.problems.fetchedAt) {
		return nil, false
	}
	return c.problems.problems, true
}

// SetProblems caches the problem rankings.
func (c *AnalyticsCache) SetProblems(problems *models.TopProblems) {
	c.problemsMu.Lock()
	defer c.problemsMu.Unlock()

	c.problems = &problemsEntry{problems: problems, fetchedAt: time.Now()}
}

// Clear removes all cached data.
func (c *AnalyticsCache) Clear() {
	c.summaryMu.Lock()
	c.summaries = make(map[string]summaryEntry)
	c.summaryMu.Unlock()

	c.dealerMu.Lock()
	c.dealers = make(map[int]dealerEntry)
	c.dealerMu.Unlock()

	c.warehouseMu.Lock()
	c.warehouses = nil
	c.warehouseMu.Unlock()

	c.trendMu.Lock()
	c.trends = make(map[string]trendEntry)
	c.trendMu.Unlock()

	c.problemsMu.Lock()
	c.problems = nil
	c.problemsMu.Unlock()
}
