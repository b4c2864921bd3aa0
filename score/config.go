// Package score 实现 gemkit 的打分核心：统计冷门精品分（Base）、综合排序分
// （Composite）、情绪匹配分（Mood）与最终混合（Combine）。
// 所有计算器都是全函数：对任何规范化后的 GameRecord 都返回有限数，从不报错。
package score

import "time"

// Config 集中管理所有打分边界与默认权重。
// 显式传入每个计算器，不读全局状态，测试可以替换任意边界。
type Config struct {
	// Base 分六个子项的固定权重，合计 100。
	BaseRatioWeight    float64 // 好评率
	BaseVolumeWeight   float64 // 评测量
	BaseHiddenWeight   float64 // 低曝光（拥有者规模）
	BasePriceWeight    float64 // 价格
	BasePlaytimeWeight float64 // 游玩时长
	BaseRecencyWeight  float64 // 新近度

	// 评测量对数曲线边界（Base 专用）：低于低界得 0，高于高界得 1。
	ReviewLowBound  float64
	ReviewHighBound float64

	// 拥有者规模：不超过 OwnerIdeal 视为理想冷门（满分），
	// 之后线性衰减，达到 OwnerCeiling 归零。
	OwnerIdeal   float64
	OwnerCeiling float64

	// 价格：PriceLow 及以下满分，线性衰减至 PriceHigh 归零。
	PriceLow  float64
	PriceHigh float64

	// 游玩时长封顶（分钟），超过按满分计。
	PlaytimeCapMinutes float64

	// 新近度衰减年限：Base 与 Composite 各用一条曲线（刻意不同，保持上游设计）。
	BaseRecencyCapYears      float64
	CompositeRecencyCapYears float64

	// Composite 评测量曲线：min(log10(n+1)/CompositeVolumeLogCap, 1)。
	// 比 Base 的 30/5000 曲线平缓，避免综合排序过度奖励体量。
	CompositeVolumeLogCap float64

	// AI 质量子分
	AINeutralQuality float64 // 缺省质量分（1-10 标度）
	VerdictBoost     float64 // 强正面结论加成
	RecoveredBoost   float64 // 口碑回升加成
	QualitySlope     float64 // 每高于中点 1 分的线性加成
	QualityMidpoint  float64

	// 风险扣减
	RiskPenaltyCap    float64
	BugRiskFactor     float64
	OverallRiskFactor float64
	RefundFactor      float64
	RefundMentionsCap int

	// 统计兜底（仅 recommended 模式）：满足全部条件时综合分至少 FloorScore。
	FloorMinRatio   float64
	FloorMinReviews int
	FloorMaxReviews int
	FloorScore      float64

	// 强正面结论与限定标签（兜底与 AI 加成共用）。
	StrongVerdict string
	GemLabels     []string

	// 情绪匹配：逐轴重要性权重（操作强度/单局时长/紧张度/叙事密度/认知负荷）
	// 与失配惩罚指数（>1，集中高分于真正接近的匹配）。
	MoodAxisWeights [5]float64
	MoodExponent    float64

	// 最终混合：质量信号权重恒大于口味信号，确保个性化不颠倒质量排序。
	CompositeMix float64
	MoodMix      float64

	// Now 提供当前时间，测试可固定。nil 时取 time.Now。
	Now func() time.Time
}

// DefaultConfig 返回生产默认配置。
func DefaultConfig() *Config {
	return &Config{
		BaseRatioWeight:    40,
		BaseVolumeWeight:   20,
		BaseHiddenWeight:   15,
		BasePriceWeight:    10,
		BasePlaytimeWeight: 10,
		BaseRecencyWeight:  5,

		ReviewLowBound:  30,
		ReviewHighBound: 5000,

		OwnerIdeal:   50000,
		OwnerCeiling: 500000,

		PriceLow:  10,
		PriceHigh: 60,

		PlaytimeCapMinutes: 1200,

		BaseRecencyCapYears:      10,
		CompositeRecencyCapYears: 5,

		CompositeVolumeLogCap: 4,

		AINeutralQuality: 5,
		VerdictBoost:     0.15,
		RecoveredBoost:   0.10,
		QualitySlope:     0.02,
		QualityMidpoint:  5,

		RiskPenaltyCap:    0.25,
		BugRiskFactor:     0.01,
		OverallRiskFactor: 0.01,
		RefundFactor:      0.02,
		RefundMentionsCap: 5,

		FloorMinRatio:   97,
		FloorMinReviews: 300,
		FloorMaxReviews: 5000,
		FloorScore:      0.8,

		StrongVerdict: "Yes",
		GemLabels:     []string{"Hidden Gem", "Overlooked Gem", "Cult Classic"},

		MoodAxisWeights: [5]float64{1.0, 0.8, 1.0, 0.9, 0.8},
		MoodExponent:    1.25,

		CompositeMix: 0.6,
		MoodMix:      0.4,
	}
}

func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// IsStrongVerdict 判断定性结论是否为强正面。
func (c *Config) IsStrongVerdict(verdict string) bool {
	return verdict != "" && verdict == c.StrongVerdict
}

// IsGemLabel 判断定性标签是否属于限定标签。
func (c *Config) IsGemLabel(label string) bool {
	for _, l := range c.GemLabels {
		if label == l {
			return true
		}
	}
	return false
}
