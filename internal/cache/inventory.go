package cache

import (
	"context"
	"time"
)

const (
	TrendingKey = "reports:trending"
	StatsKey    = "reports:stats"
)

const (
	TrendingTTL = 60 * time.Second
	StatsTTL    = 5 * time.Minute
)

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateReportAggregates drops the trending list and aggregate stats
// snapshots after a report mutation that may change either.
func InvalidateReportAggregates(ctx context.Context) {
	Invalidate(ctx, TrendingKey)
	Invalidate(ctx, StatsKey)
}
