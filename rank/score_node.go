// Package rank 实现排序 Node：recommended/custom 的打分排序与三种直接字段排序。
package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
	"github.com/rushteam/gemkit/score"
)

// ScoreNode 对每个条目计算 Base/Composite/Mood/Final 四级分数，
// 并按 FinalScore 稳定降序排序（并列保持到达顺序）。
// 中间分数全部写回 Item，供消费端解释排序结果。
type ScoreNode struct {
	Config *score.Config

	// Mode 选择权重来源；ModeCustom 时使用 Weights。
	Mode    score.Mode
	Weights score.Weights
}

func (n *ScoreNode) Name() string        { return "rank.score" }
func (n *ScoreNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ScoreNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cfg := n.Config
	if cfg == nil {
		cfg = score.DefaultConfig()
	}

	mode := n.Mode
	weights := n.Weights
	if mode != score.ModeCustom {
		mode = score.ModeRecommended
		weights = score.RecommendedWeights()
	}

	base := score.NewBaseCalculator(cfg)
	composite := score.NewCompositeCalculator(cfg)
	mood := score.NewMoodMatcher(cfg)

	var userMood *core.MoodVector
	if rctx != nil {
		userMood = rctx.Mood
	}

	for _, it := range items {
		if it == nil || it.Record == nil {
			continue
		}
		it.BaseScore = base.Score(it.Record)
		it.CompositeScore = composite.Score(it.Record, weights, mode)
		it.MoodScore = mood.Match(it.Record.Mood, userMood)
		it.FinalScore = score.Combine(cfg, it.CompositeScore, it.MoodScore)

		it.PutLabel("rank_mode", utils.Label{Value: string(mode), Source: "rank"})
		it.PutLabel("score_breakdown", utils.Label{
			Value:  fmt.Sprintf("base=%.1f composite=%.4f mood=%.4f final=%.4f", it.BaseScore, it.CompositeScore, it.MoodScore, it.FinalScore),
			Source: "rank",
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		return items[i].FinalScore > items[j].FinalScore
	})
	return items, nil
}
