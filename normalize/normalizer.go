// Package normalize 是唯一的 schema 适配边界：把任意松散目录行
// （字段缺失、类型错乱、字符串化数字、多版历史 schema 并存）收敛为
// 规范 GameRecord。其余组件永不接触原始数据。
//
// 契约：从不报错。数据缺失退化为最保守的中性值
// （数值 0、列表为空、枚举 "Unknown"）。
package normalize

import (
	"time"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pkg/conv"
)

// 各字段的历史名字回退链。链序即优先级，调整 schema 兼容性只改这里。
var (
	chainID            = FieldChain("appid", "id", "app_id")
	chainTitle         = FieldChain("title", "name")
	chainPositiveRatio = FieldChain("positive_ratio", "positive_percent", "positive_rate")
	chainTotalReviews  = FieldChain("total_reviews", "review_count", "reviews")
	chainOwners        = FieldChain("estimated_owners", "owners")
	chainPlaytime      = FieldChain("avg_playtime_minutes", "average_playtime", "playtime_forever")
	chainPrice         = FieldChain("price", "final_price")
	chainOrigPrice     = FieldChain("original_price", "initial_price")
	chainDiscount      = FieldChain("discount_percent", "discount")
	chainOnSale        = FieldChain("on_sale", "is_on_sale")
	chainReleaseDate   = FieldChain("release_date", "released_at")
	chainReleaseYear   = FieldChain("release_year", "year")
	chainLastUpdated   = FieldChain("last_updated", "updated_at")
	chainTags          = FieldChain("tags", "genres")
	chainFactTags      = FieldChain("fact_tags", "facts")
	chainAIQuality     = FieldChain("ai_quality", "quality_score", "ai_score")
	chainVerdict       = FieldChain("verdict", "gem_verdict")
	chainGemLabel      = FieldChain("gem_label", "label")
	chainRecovered     = FieldChain("recovered", "review_recovered")
	chainBugRisk       = FieldChain("bug_risk", "bug_risk_score")
	chainOverallRisk   = FieldChain("overall_risk", "risk_score")
	chainRefunds       = FieldChain("refund_mentions", "refund_count")
	chainStatHidden    = FieldChain("statistically_hidden", "is_statistically_hidden")
	chainMood          = FieldChain("mood", "mood_vector")
)

// 发行/更新时间接受的字符串格式，按序尝试。
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
}

// Normalizer 把原始目录行转为规范 GameRecord。无状态，可并发复用。
type Normalizer struct{}

// New 构造 Normalizer。
func New() *Normalizer { return &Normalizer{} }

// Record 规范化一行。任何输入（包括 nil）都得到完整的 GameRecord。
func (n *Normalizer) Record(raw map[string]any) *core.GameRecord {
	rec := &core.GameRecord{
		Title:    "Unknown",
		Tags:     []string{},
		FactTags: []string{},
	}
	if raw == nil {
		return rec
	}

	rec.ID = n.int64Of(chainID, raw)
	if title, ok := chainTitle.Extract(raw); ok {
		if s, ok := conv.ToString(title); ok && s != "" {
			rec.Title = s
		}
	}

	rec.PositiveRatio = clampRange(n.floatOf(chainPositiveRatio, raw), 0, 100)
	rec.TotalReviews = nonNegInt(n.intOf(chainTotalReviews, raw))
	rec.EstimatedOwners = nonNegInt(n.intOf(chainOwners, raw))
	rec.AvgPlaytimeMinutes = nonNeg(n.floatOf(chainPlaytime, raw))

	rec.Price = nonNeg(n.floatOf(chainPrice, raw))
	rec.OriginalPrice = nonNeg(n.floatOf(chainOrigPrice, raw))
	rec.DiscountPercent = clampRange(n.floatOf(chainDiscount, raw), 0, 100)
	rec.OnSale = n.boolOf(chainOnSale, raw) || rec.DiscountPercent > 0

	rec.ReleaseDate = n.timeOf(chainReleaseDate, raw)
	rec.LastUpdated = n.timeOf(chainLastUpdated, raw)
	rec.ReleaseYear = n.intOf(chainReleaseYear, raw)
	if rec.ReleaseYear <= 0 && rec.HasReleaseDate() {
		rec.ReleaseYear = rec.ReleaseDate.Year()
	}
	if rec.ReleaseYear < 0 {
		rec.ReleaseYear = 0
	}

	if v, ok := chainTags.Extract(raw); ok {
		rec.Tags = conv.DedupStrings(conv.SliceAnyToString(v))
	}
	if v, ok := chainFactTags.Extract(raw); ok {
		rec.FactTags = core.NormalizeFactTags(conv.SliceAnyToString(v))
	}

	rec.AIQuality = clampRange(n.floatOf(chainAIQuality, raw), 0, 10)
	if s, ok := chainVerdict.Extract(raw); ok {
		rec.Verdict, _ = conv.ToString(s)
	}
	if s, ok := chainGemLabel.Extract(raw); ok {
		rec.GemLabel, _ = conv.ToString(s)
	}
	rec.Recovered = n.boolOf(chainRecovered, raw)

	rec.BugRisk = clampRange(n.floatOf(chainBugRisk, raw), 0, 100)
	rec.OverallRisk = clampRange(n.floatOf(chainOverallRisk, raw), 0, 100)
	rec.RefundMentions = nonNegInt(n.intOf(chainRefunds, raw))
	rec.StatisticallyHidden = n.boolOf(chainStatHidden, raw)

	rec.Mood = n.moodOf(raw)

	return rec
}

func (n *Normalizer) floatOf(c Chain, raw map[string]any) float64 {
	if v, ok := c.Extract(raw); ok {
		if f, ok := conv.ToFloat64(v); ok {
			return f
		}
	}
	return 0
}

func (n *Normalizer) intOf(c Chain, raw map[string]any) int {
	if v, ok := c.Extract(raw); ok {
		if i, ok := conv.ToInt(v); ok {
			return i
		}
	}
	return 0
}

func (n *Normalizer) int64Of(c Chain, raw map[string]any) int64 {
	if v, ok := c.Extract(raw); ok {
		if f, ok := conv.ToFloat64(v); ok {
			return int64(f)
		}
	}
	return 0
}

func (n *Normalizer) boolOf(c Chain, raw map[string]any) bool {
	if v, ok := c.Extract(raw); ok {
		if b, ok := conv.ToBool(v); ok {
			return b
		}
	}
	return false
}

// timeOf 接受字符串日期（多格式）或 unix 秒时间戳。
func (n *Normalizer) timeOf(c Chain, raw map[string]any) time.Time {
	v, ok := c.Extract(raw)
	if !ok {
		return time.Time{}
	}
	if s, ok := conv.ToString(v); ok {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return time.Time{}
	}
	if f, ok := conv.ToFloat64(v); ok && f > 0 {
		return time.Unix(int64(f), 0).UTC()
	}
	return time.Time{}
}

// moodOf 解析情绪向量。缺失或无一合法轴时返回 nil（score-neutral，不是零向量）。
func (n *Normalizer) moodOf(raw map[string]any) *core.MoodVector {
	v, ok := chainMood.Extract(raw)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	var vec core.MoodVector
	axes := map[string]*float64{
		"operation": &vec.Operation,
		"session":   &vec.Session,
		"tension":   &vec.Tension,
		"narrative": &vec.Narrative,
		"cognitive": &vec.Cognitive,
	}
	found := false
	for key, dst := range axes {
		if f, ok := conv.ToFloat64(m[key]); ok {
			*dst = f
			found = true
		}
	}
	if !found {
		return nil
	}
	return vec.Clamp()
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
