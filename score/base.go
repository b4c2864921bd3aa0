package score

import (
	"math"

	"github.com/rushteam/gemkit/core"
)

// BaseCalculator 计算 0-100 的统计冷门精品分：只用客观遥测，
// 不依赖 AI 信号与情绪输入，六个子项各自归一到 [0,1] 后加权求和。
type BaseCalculator struct {
	Config *Config
}

// NewBaseCalculator 以 cfg 构造计算器；cfg 为 nil 时使用默认配置。
func NewBaseCalculator(cfg *Config) *BaseCalculator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &BaseCalculator{Config: cfg}
}

// Score 返回 rec 的冷门精品分，四舍五入到一位小数，恒在 [0,100]。
// 全零遥测得到低但有定义的分数，不会出现 NaN。
func (c *BaseCalculator) Score(rec *core.GameRecord) float64 {
	cfg := c.Config

	ratio := clamp01(rec.PositiveRatio / 100)
	volume := c.volumeScore(float64(rec.TotalReviews))
	hidden := c.hiddenScore(float64(rec.EstimatedOwners))
	price := c.priceScore(rec.Price)
	playtime := c.playtimeScore(rec.AvgPlaytimeMinutes)
	recency := c.recencyScore(rec.ReleaseYear)

	total := ratio*cfg.BaseRatioWeight +
		volume*cfg.BaseVolumeWeight +
		hidden*cfg.BaseHiddenWeight +
		price*cfg.BasePriceWeight +
		playtime*cfg.BasePlaytimeWeight +
		recency*cfg.BaseRecencyWeight

	return math.Round(total*10) / 10
}

// volumeScore 在 [ReviewLowBound, ReviewHighBound] 间做对数插值：
// 低端翻倍的评测量远比高端翻倍更有信息量。
func (c *BaseCalculator) volumeScore(reviews float64) float64 {
	low, high := c.Config.ReviewLowBound, c.Config.ReviewHighBound
	if high <= low || low <= 0 {
		return 0
	}
	if reviews <= low {
		return 0
	}
	if reviews >= high {
		return 1
	}
	return (math.Log10(reviews) - math.Log10(low)) / (math.Log10(high) - math.Log10(low))
}

// hiddenScore 衡量“够不够冷门”：拥有者不超过理想阈值得满分，
// 随后线性衰减，超过上限视为大众作品，得 0。
func (c *BaseCalculator) hiddenScore(owners float64) float64 {
	ideal, ceiling := c.Config.OwnerIdeal, c.Config.OwnerCeiling
	if owners <= ideal {
		return 1
	}
	if owners >= ceiling || ceiling <= ideal {
		return 0
	}
	return 1 - (owners-ideal)/(ceiling-ideal)
}

// priceScore 低价友好：PriceLow 及以下（含免费）满分，到 PriceHigh 线性归零。
func (c *BaseCalculator) priceScore(price float64) float64 {
	low, high := c.Config.PriceLow, c.Config.PriceHigh
	if price <= low {
		return 1
	}
	if price >= high || high <= low {
		return 0
	}
	return 1 - (price-low)/(high-low)
}

func (c *BaseCalculator) playtimeScore(minutes float64) float64 {
	cap := c.Config.PlaytimeCapMinutes
	if cap <= 0 {
		return 0
	}
	return clamp01(minutes / cap)
}

// recencyScore 线性 1→0 衰减 BaseRecencyCapYears 年；未知发行年取中性 0.5。
func (c *BaseCalculator) recencyScore(releaseYear int) float64 {
	if releaseYear <= 0 {
		return 0.5
	}
	cap := c.Config.BaseRecencyCapYears
	if cap <= 0 {
		return 0.5
	}
	age := float64(c.Config.now().Year() - releaseYear)
	if age < 0 {
		age = 0
	}
	return clamp01(1 - age/cap)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
