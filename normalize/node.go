package normalize

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
)

// Node 是规范化 Node：对每个 Item 的 Raw 行执行 Normalizer，填充 Record。
// 已携带 Record 的 Item（内存快照/测试数据）原样透传。
type Node struct {
	Normalizer *Normalizer
}

func (n *Node) Name() string        { return "normalize" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindNormalize }

func (n *Node) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	norm := n.Normalizer
	if norm == nil {
		norm = New()
	}

	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.Record == nil {
			it.Record = norm.Record(it.Raw)
			if it.ID == 0 {
				it.ID = it.Record.ID
			}
			it.PutLabel("normalized", utils.Label{Value: "true", Source: "normalize"})
		}
		out = append(out, it)
	}
	return out, nil
}
