package pipeline

import (
	"context"

	"github.com/rushteam/gemkit/core"
)

// Pipeline 是 gemkit 的核心抽象：把排序逻辑拆成可组合的 Node 链。
// 每个 Node 都是显式输入上的纯变换，链路无共享可变状态，
// 同一输入与参数跑两遍得到完全相同的有序输出。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
