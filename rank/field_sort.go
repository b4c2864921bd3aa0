package rank

import (
	"context"
	"sort"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
)

// SortKey 是直接字段排序的排序键。
type SortKey string

const (
	SortPositiveRatio SortKey = "positive-ratio"
	SortMostReviews   SortKey = "most-reviews"
	SortNewest        SortKey = "newest"
)

// FieldSortNode 按单个记录字段稳定降序排序，不计算分数。
// FinalScore 同步写为排序字段值，保持结果结构一致。
type FieldSortNode struct {
	Key SortKey
}

func (n *FieldSortNode) Name() string        { return "rank.field_sort" }
func (n *FieldSortNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *FieldSortNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	key := func(it *core.Item) float64 {
		if it == nil || it.Record == nil {
			return 0
		}
		switch n.Key {
		case SortMostReviews:
			return float64(it.Record.TotalReviews)
		case SortNewest:
			switch {
			case it.Record.HasReleaseDate():
				return float64(it.Record.ReleaseDate.Unix())
			case it.Record.ReleaseYear > 0:
				return float64(it.Record.ReleaseYear)
			default:
				return 0
			}
		default: // SortPositiveRatio
			return it.Record.PositiveRatio
		}
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		it.FinalScore = key(it)
		it.PutLabel("rank_mode", utils.Label{Value: string(n.Key), Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
	return items, nil
}
