package score

import (
	"math"

	"github.com/rushteam/gemkit/core"
)

// CompositeCalculator 计算 [0,1] 的综合排序分：AI 质量、好评率、评测量、
// 新近度四个子项按 Weights 加权平均，再做风险扣减与统计兜底。
// 缺失子输入退化为中性默认值，从不报错。
type CompositeCalculator struct {
	Config *Config
}

// NewCompositeCalculator 以 cfg 构造计算器；cfg 为 nil 时使用默认配置。
func NewCompositeCalculator(cfg *Config) *CompositeCalculator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &CompositeCalculator{Config: cfg}
}

// Score 返回 rec 在给定权重与模式下的综合分。
// 同一模式内分值只保证内部一致（序不受标度影响）；展示标度由调用方决定。
func (c *CompositeCalculator) Score(rec *core.GameRecord, w Weights, mode Mode) float64 {
	cfg := c.Config
	w = w.Sanitize()

	ai := c.aiScore(rec)
	ratio := clamp01(rec.PositiveRatio / 100)
	volume := c.volumeScore(float64(rec.TotalReviews))
	recency := c.recencyScore(rec)

	denom := w.Sum()
	if denom <= 0 {
		denom = 1 // 退化权重向量：隐式分母 1，不除零
	}
	blended := (ai*w.AIQuality + ratio*w.PositiveRatio + volume*w.ReviewVolume + recency*w.Recency) / denom

	blended -= c.riskPenalty(rec)
	if blended < 0 {
		blended = 0
	}

	// 统计兜底仅在 recommended 模式生效：显式的、有文档的覆盖规则，
	// 防止明显优秀且低曝光的作品被权重噪声压到中游之下。
	if mode == ModeRecommended && c.qualifiesForFloor(rec) && blended < cfg.FloorScore {
		blended = cfg.FloorScore
	}
	return blended
}

// aiScore 把 1-10 的 AI 质量分折算到 [0,1] 并叠加定性加成。
// 未评估（0）取中性默认分，不加成。
func (c *CompositeCalculator) aiScore(rec *core.GameRecord) float64 {
	cfg := c.Config
	quality := rec.AIQuality
	assessed := quality > 0
	if !assessed {
		quality = cfg.AINeutralQuality
	}

	s := quality / 10
	if assessed {
		if cfg.IsStrongVerdict(rec.Verdict) {
			s += cfg.VerdictBoost
		}
		if rec.Recovered {
			s += cfg.RecoveredBoost
		}
		if quality > cfg.QualityMidpoint {
			s += (quality - cfg.QualityMidpoint) * cfg.QualitySlope
		}
	}
	return clamp01(s)
}

// volumeScore 用比 Base 更平缓的曲线：min(log10(n+1)/cap, 1)。
func (c *CompositeCalculator) volumeScore(reviews float64) float64 {
	cap := c.Config.CompositeVolumeLogCap
	if cap <= 0 || reviews < 0 {
		return 0
	}
	return clamp01(math.Log10(reviews+1) / cap)
}

// recencyScore 线性 1→0 衰减 CompositeRecencyCapYears 年。
// 优先用发行日期，缺失时退到发行年，再缺失取中性 0.5。
func (c *CompositeCalculator) recencyScore(rec *core.GameRecord) float64 {
	cap := c.Config.CompositeRecencyCapYears
	if cap <= 0 {
		return 0.5
	}
	now := c.Config.now()

	var ageYears float64
	switch {
	case rec.HasReleaseDate():
		ageYears = now.Sub(rec.ReleaseDate).Hours() / (24 * 365.25)
	case rec.ReleaseYear > 0:
		ageYears = float64(now.Year() - rec.ReleaseYear)
	default:
		return 0.5
	}
	if ageYears < 0 {
		ageYears = 0
	}
	return clamp01(1 - ageYears/cap)
}

func (c *CompositeCalculator) riskPenalty(rec *core.GameRecord) float64 {
	cfg := c.Config
	refunds := rec.RefundMentions
	if refunds < 0 {
		refunds = 0
	}
	if refunds > cfg.RefundMentionsCap {
		refunds = cfg.RefundMentionsCap
	}
	penalty := rec.BugRisk*cfg.BugRiskFactor +
		rec.OverallRisk*cfg.OverallRiskFactor +
		float64(refunds)*cfg.RefundFactor
	if penalty < 0 {
		penalty = 0
	}
	if penalty > cfg.RiskPenaltyCap {
		penalty = cfg.RiskPenaltyCap
	}
	return penalty
}

// qualifiesForFloor 判断统计兜底条件：极高好评率 + 评测量处于可信区间 +
// 统计低曝光旗标 + 强正面结论 + 限定标签，五者同时满足。
func (c *CompositeCalculator) qualifiesForFloor(rec *core.GameRecord) bool {
	cfg := c.Config
	return rec.PositiveRatio >= cfg.FloorMinRatio &&
		rec.TotalReviews >= cfg.FloorMinReviews &&
		rec.TotalReviews <= cfg.FloorMaxReviews &&
		rec.StatisticallyHidden &&
		cfg.IsStrongVerdict(rec.Verdict) &&
		cfg.IsGemLabel(rec.GemLabel)
}
