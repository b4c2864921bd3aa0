package enrich

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
)

// Node 是补齐 Node：在 normalize 之前把协作方字段合入 Item.Raw。
// 合并遵循首个有定义者胜出：行内已有的字段不被协作方覆盖，
// Provider 注册顺序即后续优先级。Provider 失败整体跳过并打标签。
type Node struct {
	Providers []Provider
	Cache     *Cache
}

func (n *Node) Name() string        { return "enrich" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindSource }

func (n *Node) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Providers) == 0 || len(items) == 0 {
		return items, nil
	}

	byID := make(map[int64]*core.Item, len(items))
	missing := make([]int64, 0, len(items))
	for _, it := range items {
		if it == nil || it.ID == 0 {
			continue
		}
		byID[it.ID] = it
		if n.Cache != nil {
			if fields, ok := n.Cache.Get(it.ID); ok {
				mergeRaw(it, fields, "cache")
				continue
			}
		}
		missing = append(missing, it.ID)
	}
	if len(missing) == 0 {
		return items, nil
	}

	collected := make(map[int64]map[string]any, len(missing))
	for _, p := range n.Providers {
		annotations, err := p.Annotations(ctx, missing)
		if err != nil {
			// 协作方缺席不阻塞打分；留痕供观测
			for _, id := range missing {
				if it := byID[id]; it != nil {
					it.PutLabel("enrich_skipped", utils.Label{Value: p.Name(), Source: "enrich"})
				}
			}
			continue
		}
		for id, fields := range annotations {
			it := byID[id]
			if it == nil {
				continue
			}
			mergeRaw(it, fields, p.Name())
			acc, ok := collected[id]
			if !ok {
				acc = make(map[string]any, len(fields))
				collected[id] = acc
			}
			for k, v := range fields {
				if _, exists := acc[k]; !exists {
					acc[k] = v
				}
			}
		}
	}

	if n.Cache != nil {
		for id, fields := range collected {
			n.Cache.Put(id, fields)
		}
	}
	return items, nil
}

// mergeRaw 只填充行内缺失的字段（首个有定义者胜出）。
func mergeRaw(it *core.Item, fields map[string]any, source string) {
	if len(fields) == 0 {
		return
	}
	if it.Raw == nil {
		it.Raw = make(map[string]any, len(fields))
	}
	merged := false
	for k, v := range fields {
		if _, exists := it.Raw[k]; exists {
			continue
		}
		it.Raw[k] = v
		merged = true
	}
	if merged {
		it.PutLabel("enriched_by", utils.Label{Value: source, Source: "enrich"})
	}
}
