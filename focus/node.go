package focus

import (
	"context"
	"strings"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
)

// Node 是档位标注 Node：按 rctx.Focus（或固定 Focus）对每个条目分类，
// 把 Result 写入 Item.Meta 语义的 band 标签并可选按档位截留。
type Node struct {
	// Rules 规则表；nil 时使用内置规则。
	Rules RuleSet

	// Focus 固定焦点名；为空时取 rctx.Focus。两者都空则本 Node 透传。
	Focus string

	// Keep 非空时只保留这些档位（例如 on/near/discovery）。
	Keep []Band

	// Results 按 Item.ID 回收分类结论，供服务层组装输出。nil 时不回收。
	Results map[int64]*Result
}

func (n *Node) Name() string        { return "focus.band" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *Node) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	focusName := n.Focus
	if focusName == "" && rctx != nil {
		focusName = rctx.Focus
	}
	if focusName == "" {
		return items, nil
	}

	rules := n.Rules
	if rules == nil {
		rules = BuiltinRules()
	}
	rule, ok := rules.Get(focusName)
	if !ok {
		return nil, core.NewDomainError(core.ModuleFocus, core.ErrorCodeNotFound,
			"focus: unknown rule "+focusName)
	}

	keep := make(map[Band]bool, len(n.Keep))
	for _, b := range n.Keep {
		keep[b] = true
	}

	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		var factTags []string
		if it.Record != nil {
			factTags = it.Record.FactTags
		}
		res := Classify(factTags, rule)

		it.PutLabel("band", utils.Label{Value: string(res.Band), Source: "focus"})
		if len(res.MatchedBoost) > 0 {
			it.PutLabel("band_boost", utils.Label{Value: strings.Join(res.MatchedBoost, "|"), Source: "focus"})
		}
		if len(res.MatchedBan) > 0 {
			it.PutLabel("band_ban", utils.Label{Value: strings.Join(res.MatchedBan, "|"), Source: "focus"})
		}
		if n.Results != nil {
			n.Results[it.ID] = res
		}

		if len(keep) > 0 && !keep[res.Band] {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}
