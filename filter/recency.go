package filter

import (
	"context"
	"time"

	"github.com/rushteam/gemkit/core"
)

// RecencyFilter 保留最近 Days 天内的条目。
// 判定时间优先取发行日期，缺失时退到最近更新时间；
// 两者皆缺的条目在本过滤器启用时被排除（未启用时自然保留）。
type RecencyFilter struct {
	Days int

	// Now 提供当前时间，测试可固定。nil 时取 time.Now。
	Now func() time.Time
}

func (f *RecencyFilter) Name() string { return "filter.recency" }

func (f *RecencyFilter) ShouldFilter(_ context.Context, _ *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Days <= 0 || item.Record == nil {
		return false, nil
	}

	var ref time.Time
	switch {
	case item.Record.HasReleaseDate():
		ref = item.Record.ReleaseDate
	case item.Record.HasLastUpdated():
		ref = item.Record.LastUpdated
	default:
		return true, nil
	}

	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	cutoff := now.AddDate(0, 0, -f.Days)
	return ref.Before(cutoff), nil
}
