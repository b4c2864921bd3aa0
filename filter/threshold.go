package filter

import (
	"context"

	"github.com/rushteam/gemkit/core"
)

// MinReviewsFilter 过滤评测量低于 Min 的条目。Min <= 0 表示不过滤。
type MinReviewsFilter struct {
	Min int
}

func (f *MinReviewsFilter) Name() string { return "filter.min_reviews" }

func (f *MinReviewsFilter) ShouldFilter(_ context.Context, _ *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Min <= 0 || item.Record == nil {
		return false, nil
	}
	return item.Record.TotalReviews < f.Min, nil
}

// MinPlaytimeFilter 过滤平均时长（分钟）低于 Min 的条目。Min <= 0 表示不过滤。
type MinPlaytimeFilter struct {
	Min int
}

func (f *MinPlaytimeFilter) Name() string { return "filter.min_playtime" }

func (f *MinPlaytimeFilter) ShouldFilter(_ context.Context, _ *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Min <= 0 || item.Record == nil {
		return false, nil
	}
	return item.Record.AvgPlaytimeMinutes < float64(f.Min), nil
}
