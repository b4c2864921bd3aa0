// Package rerank 在排序结果上做截断与多样性调优。
package rerank

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
)

// TopNNode 在排序后截取前 N 个条目，限制返回结果数量。
type TopNNode struct {
	// N 要保留的条目数量。
	// N <= 0 或大于条目总数时不截断。
	N int
}

func (n *TopNNode) Name() string        { return "rerank.topn" }
func (n *TopNNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.N <= 0 || len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
