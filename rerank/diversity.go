package rerank

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
)

// DiversityNode 限制榜单头部同类目扎堆：每个首要标签（Tags[0]）
// 最多保留 PerTag 个条目，其余顺延剔除。无标签的条目不受限制。
// 默认关闭（服务层按请求参数挂载），对排序语义是纯截断、不重打分。
type DiversityNode struct {
	// PerTag 每个首要标签允许的最大条目数；<= 0 表示不限制。
	PerTag int
}

func (n *DiversityNode) Name() string        { return "rerank.diversity" }
func (n *DiversityNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *DiversityNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.PerTag <= 0 || len(items) == 0 {
		return items, nil
	}

	counts := make(map[string]int, 32)
	out := make([]*core.Item, 0, len(items))

	for _, it := range items {
		if it == nil {
			continue
		}
		tag := ""
		if it.Record != nil && len(it.Record.Tags) > 0 {
			tag = it.Record.Tags[0]
		}
		if tag == "" {
			out = append(out, it)
			continue
		}
		if counts[tag] >= n.PerTag {
			continue
		}
		counts[tag]++
		out = append(out, it)
	}

	return out, nil
}
