// Package dsl 提供基于 CEL (Common Expression Language) 的条目级表达式求值，
// 驱动 filter.ExprFilter 等策略组件。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/gemkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 对单个排序 Item 求值布尔表达式。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.positive_ratio >= 95 / item.total_reviews < 5000
//   - 逻辑：item.price < 20 && item.final_score > 0.7
//   - 标签：label.filtered != null / label.band == "on"
//   - 请求侧：rctx.scene == "weekly_digest"
type Eval struct {
	item *core.Item
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(item *core.Item, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		item: item,
		rctx: rctx,
		env:  env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。空表达式恒为 true。
// 访问不存在的 key 会报错；用 label.key != null 做存在性检查。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 把 Item/上下文展开为 CEL 可见的动态结构。
// 记录字段采用 snake_case，与上游行字段名保持一致。
func (e *Eval) buildInput() map[string]any {
	labelAccessor := make(map[string]any)
	for k, v := range e.item.Labels {
		// label.xxx 直接取 value，存在性检查用 != null
		labelAccessor[k] = v.Value
	}

	item := map[string]any{
		"id":              e.item.ID,
		"base_score":      e.item.BaseScore,
		"composite_score": e.item.CompositeScore,
		"mood_score":      e.item.MoodScore,
		"final_score":     e.item.FinalScore,
	}
	if rec := e.item.Record; rec != nil {
		item["title"] = rec.Title
		item["positive_ratio"] = rec.PositiveRatio
		item["total_reviews"] = rec.TotalReviews
		item["estimated_owners"] = rec.EstimatedOwners
		item["avg_playtime_minutes"] = rec.AvgPlaytimeMinutes
		item["price"] = rec.Price
		item["on_sale"] = rec.OnSale
		item["release_year"] = rec.ReleaseYear
		item["tags"] = rec.Tags
		item["fact_tags"] = rec.FactTags
		item["ai_quality"] = rec.AIQuality
		item["verdict"] = rec.Verdict
		item["statistically_hidden"] = rec.StatisticallyHidden
	}

	rctx := map[string]any{}
	if e.rctx != nil {
		rctx["user_id"] = e.rctx.UserID
		rctx["scene"] = e.rctx.Scene
		rctx["focus"] = e.rctx.Focus
		rctx["params"] = e.rctx.Params
	}

	return map[string]any{
		"item":  item,
		"label": labelAccessor,
		"rctx":  rctx,
	}
}
