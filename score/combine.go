package score

// Combine 把 [0,1] 综合分与 [0,1] 情绪分线性混合为最终排序键。
//
// 情绪分为 0（无用户偏好或条目无向量）时最终分即综合分，排序不受影响。
// 固定 0.6/0.4 的不对称权重是刻意的：情绪是个性化信号而非质量信号，
// 口味契合不允许让明显更差的作品反超。
func Combine(cfg *Config, composite, mood float64) float64 {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if mood <= 0 {
		return composite
	}
	return cfg.CompositeMix*composite + cfg.MoodMix*mood
}
