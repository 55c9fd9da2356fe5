package analytics

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// UsageTracker collects in-memory request statistics per endpoint. Counters
// reset on process restart; long-term analytics live in the database.
type UsageTracker struct {
	mu        sync.RWMutex
	endpoints map[string]*endpointStats
	startedAt time.Time
}

type endpointStats struct {
	Path          string
	TotalRequests int64
	TotalErrors   int64
	TotalDuration time.Duration
	StatusCounts  map[int]int64
}

func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		endpoints: make(map[string]*endpointStats),
		startedAt: time.Now(),
	}
}

// Record adds a completed request to the per-endpoint counters.
func (ut *UsageTracker) Record(method, path string, status int, duration time.Duration) {
	key := method + " " + path

	ut.mu.Lock()
	defer ut.mu.Unlock()

	ep, ok := ut.endpoints[key]
	if !ok {
		ep = &endpointStats{
			Path:         key,
			StatusCounts: make(map[int]int64),
		}
		ut.endpoints[key] = ep
	}

	ep.TotalRequests++
	ep.TotalDuration += duration
	ep.StatusCounts[status]++
	if status >= 400 {
		ep.TotalErrors++
	}
}

// EndpointSummary is the exported view of a single endpoint's counters.
type EndpointSummary struct {
	Path           string        `json:"path"`
	TotalRequests  int64         `json:"total_requests"`
	TotalErrors    int64         `json:"total_errors"`
	AverageLatency time.Duration `json:"average_latency_ns"`
}

// Overview aggregates counters across all endpoints.
type Overview struct {
	UptimeSeconds  float64            `json:"uptime_seconds"`
	TotalRequests  int64              `json:"total_requests"`
	TotalErrors    int64              `json:"total_errors"`
	ErrorRate      float64            `json:"error_rate"`
	AverageLatency time.Duration      `json:"average_latency_ns"`
	TopEndpoints   []*EndpointSummary `json:"top_endpoints"`
}

func (ut *UsageTracker) GetOverview(topN int) *Overview {
	ut.mu.RLock()
	defer ut.mu.RUnlock()

	var totalReqs, totalErrs int64
	var totalDur time.Duration
	summaries := make([]*EndpointSummary, 0, len(ut.endpoints))

	for _, ep := range ut.endpoints {
		totalReqs += ep.TotalRequests
		totalErrs += ep.TotalErrors
		totalDur += ep.TotalDuration

		s := &EndpointSummary{
			Path:          ep.Path,
			TotalRequests: ep.TotalRequests,
			TotalErrors:   ep.TotalErrors,
		}
		if ep.TotalRequests > 0 {
			s.AverageLatency = ep.TotalDuration / time.Duration(ep.TotalRequests)
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TotalRequests > summaries[j].TotalRequests
	})
	if topN > 0 && len(summaries) > topN {
		summaries = summaries[:topN]
	}

	ov := &Overview{
		UptimeSeconds: time.Since(ut.startedAt).Seconds(),
		TotalRequests: totalReqs,
		TotalErrors:   totalErrs,
		TopEndpoints:  summaries,
	}
	if totalReqs > 0 {
		ov.ErrorRate = float64(totalErrs) / float64(totalReqs)
		ov.AverageLatency = totalDur / time.Duration(totalReqs)
	}
	return ov
}

// UsageMiddleware records every request into the tracker. It uses the echo
// route path (e.g. /api/v1/patients/:id) so ids do not explode the key space.
func UsageMiddleware(tracker *UsageTracker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			tracker.Record(c.Request().Method, c.Path(), status, time.Since(start))
			return err
		}
	}
}

// UsageHandler serves the collected statistics.
type UsageHandler struct {
	tracker *UsageTracker
}

func NewUsageHandler(tracker *UsageTracker) *UsageHandler {
	return &UsageHandler{tracker: tracker}
}

func (h *UsageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/usage", h.HandleOverview)
}

func (h *UsageHandler) HandleOverview(c echo.Context) error {
	topN := 10
	if v := c.QueryParam("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}
	return c.JSON(http.StatusOK, h.tracker.GetOverview(topN))
}
