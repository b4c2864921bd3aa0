package filter

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pkg/dsl"
)

// ExprFilter 按 CEL 表达式过滤：表达式求值为 true 的条目被保留。
// 例如 `item.price < 20 && item.positive_ratio >= 90`。
// 表达式求值出错的条目按保留处理（策略表达式不应让请求整体失败）。
type ExprFilter struct {
	Expr string
}

func (f *ExprFilter) Name() string { return "filter.expr" }

func (f *ExprFilter) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Expr == "" {
		return false, nil
	}
	keep, err := dsl.NewEval(item, rctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
