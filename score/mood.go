package score

import (
	"math"

	"github.com/rushteam/gemkit/core"
)

// MoodMatcher 计算目录条目情绪向量与用户偏好向量的匹配度 [0,1]。
// 情绪匹配是 opt-in 的中性信号：任一向量缺失即返回 0（不奖励也不惩罚）。
type MoodMatcher struct {
	Config *Config
}

// NewMoodMatcher 以 cfg 构造匹配器；cfg 为 nil 时使用默认配置。
func NewMoodMatcher(cfg *Config) *MoodMatcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &MoodMatcher{Config: cfg}
}

// Match 返回 item 与 user 两个 5 轴向量的加权欧氏相似度。
//
// 算法：逐轴平方差乘轴权重求和开方（加权欧氏距离），
// 除以最大可能距离 sqrt(Σw) 归一，取 1-d 反转为相似度，
// 再乘方 MoodExponent（>1）——中等失配受到超线性惩罚，
// 高分集中在真正接近的匹配上，而不是宽泛地奖励“差不多”。
func (m *MoodMatcher) Match(item, user *core.MoodVector) float64 {
	if item == nil || user == nil {
		return 0
	}
	cfg := m.Config

	a := item.Clamp().Axes()
	b := user.Clamp().Axes()

	var sum, weightSum float64
	for i := 0; i < core.MoodAxisCount; i++ {
		w := cfg.MoodAxisWeights[i]
		if w < 0 {
			w = 0
		}
		d := a[i] - b[i]
		sum += w * d * d
		weightSum += w
	}
	if weightSum <= 0 {
		// 退化轴权重：无任何可比较的轴，视为无信号
		return 0
	}

	normalized := math.Sqrt(sum) / math.Sqrt(weightSum)
	similarity := clamp01(1 - normalized)

	exp := cfg.MoodExponent
	if exp <= 0 {
		exp = 1
	}
	return math.Pow(similarity, exp)
}
