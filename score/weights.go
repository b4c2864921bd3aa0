package score

// Mode 选择综合分的权重来源。
type Mode string

const (
	// ModeRecommended 使用内置推荐权重，并启用统计兜底规则。
	ModeRecommended Mode = "recommended"
	// ModeCustom 使用调用方权重，不启用统计兜底（自定义权重的语义由调用方负责）。
	ModeCustom Mode = "custom"
)

// Weights 是综合分四个子项的非负混合权重。
// 允许全零/退化向量：加权平均的分母为零时按 1 处理，不会除零。
type Weights struct {
	AIQuality     float64 `json:"ai_quality" yaml:"ai_quality"`
	PositiveRatio float64 `json:"positive_ratio" yaml:"positive_ratio"`
	ReviewVolume  float64 `json:"review_volume" yaml:"review_volume"`
	Recency       float64 `json:"recency" yaml:"recency"`
}

// RecommendedWeights 返回 recommended 模式的内置权重。
func RecommendedWeights() Weights {
	return Weights{
		AIQuality:     0.4,
		PositiveRatio: 0.3,
		ReviewVolume:  0.2,
		Recency:       0.1,
	}
}

// Sum 返回权重和。
func (w Weights) Sum() float64 {
	return w.AIQuality + w.PositiveRatio + w.ReviewVolume + w.Recency
}

// Sanitize 返回负分量归零后的副本（权重必须非负）。
func (w Weights) Sanitize() Weights {
	for _, p := range []*float64{&w.AIQuality, &w.PositiveRatio, &w.ReviewVolume, &w.Recency} {
		if *p < 0 {
			*p = 0
		}
	}
	return w
}
