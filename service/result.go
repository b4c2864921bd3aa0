package service

import (
	"math"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/focus"
	"github.com/rushteam/gemkit/pkg/utils"
)

// RankingResult 是对外输出的单个条目：记录快照、各级分数与可解释信息。
type RankingResult struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	PositiveRatio float64  `json:"positive_ratio"`
	TotalReviews  int      `json:"total_reviews"`
	Price         float64  `json:"price"`
	OnSale        bool     `json:"on_sale"`
	ReleaseYear   int      `json:"release_year"`
	Tags          []string `json:"tags,omitempty"`
	FactTags      []string `json:"fact_tags,omitempty"`
	GemLabel      string   `json:"gem_label,omitempty"`
	Verdict       string   `json:"verdict,omitempty"`

	BaseScore      float64 `json:"base_score"`
	CompositeScore float64 `json:"composite_score"`
	MoodScore      float64 `json:"mood_score"`
	FinalScore     float64 `json:"final_score"`

	// DisplayScore 是对外展示口径：FinalScore 折算到 0-10 并保留两位小数。
	// 仅 recommended/custom 打分排序时有意义，字段排序下为 0。
	DisplayScore float64 `json:"display_score"`

	// Band 档位分类结论；请求未指定 focus 时为 nil。
	Band *focus.Result `json:"band,omitempty"`

	Labels map[string]utils.Label `json:"labels,omitempty"`
}

func newRankingResult(it *core.Item, scored bool, band *focus.Result) *RankingResult {
	res := &RankingResult{
		ID:             it.ID,
		BaseScore:      it.BaseScore,
		CompositeScore: it.CompositeScore,
		MoodScore:      it.MoodScore,
		FinalScore:     it.FinalScore,
		Band:           band,
		Labels:         it.Labels,
	}
	if scored {
		res.DisplayScore = math.Round(it.FinalScore*10*100) / 100
	}
	if rec := it.Record; rec != nil {
		res.Title = rec.Title
		res.PositiveRatio = rec.PositiveRatio
		res.TotalReviews = rec.TotalReviews
		res.Price = rec.Price
		res.OnSale = rec.OnSale
		res.ReleaseYear = rec.ReleaseYear
		res.Tags = rec.Tags
		res.FactTags = rec.FactTags
		res.GemLabel = rec.GemLabel
		res.Verdict = rec.Verdict
	}
	return res
}
