package core

import "time"

// GameRecord 是目录条目的规范形态：所有数值字段有限、所有列表字段非 nil。
// 只有 Normalizer 负责从上游松散行构造 GameRecord，其余组件不接触原始数据。
type GameRecord struct {
	ID    int64
	Title string

	// 评测遥测
	PositiveRatio      float64 // 好评率百分比 [0,100]
	TotalReviews       int
	EstimatedOwners    int
	AvgPlaytimeMinutes float64

	// 商业数据
	Price           float64
	OriginalPrice   float64
	DiscountPercent float64
	OnSale          bool

	// 时间数据。零值表示未知。
	ReleaseYear int
	ReleaseDate time.Time
	LastUpdated time.Time

	// 分类数据
	Tags     []string // 自由标签，去重且保留首次出现顺序
	FactTags []string // 封闭词表内的事实标签，集合语义

	// AI 衍生信号（外部协作方提供，可缺省）
	AIQuality float64 // 1-10；0 表示未评估
	Verdict   string  // 定性结论，如 "Yes" / "Maybe" / "No"
	GemLabel  string  // 定性标签，如 "Hidden Gem"
	Recovered bool    // 口碑回升/修复后改善

	// 风险信号（0-100 标度，缺省为 0）
	BugRisk        float64
	OverallRisk    float64
	RefundMentions int

	// 统计低曝光旗标（由上游统计任务给出）
	StatisticallyHidden bool

	// 玩法情绪向量；nil 表示无向量，该条目参与排序但不受情绪匹配影响。
	Mood *MoodVector
}

// HasReleaseDate 报告该条目是否有可用的发行日期。
func (r *GameRecord) HasReleaseDate() bool { return !r.ReleaseDate.IsZero() }

// HasLastUpdated 报告该条目是否有可用的最近更新时间。
func (r *GameRecord) HasLastUpdated() bool { return !r.LastUpdated.IsZero() }

// HasTag 判断自由标签列表中是否含有 tag（精确匹配）。
func (r *GameRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MoodVector 是 [0,1]^5 玩法空间中的一个点。
// 五个轴固定：操作强度、单局时长、紧张度、叙事密度、认知负荷。
type MoodVector struct {
	Operation float64 `json:"operation" yaml:"operation"` // 操作强度
	Session   float64 `json:"session" yaml:"session"`     // 单局时长
	Tension   float64 `json:"tension" yaml:"tension"`     // 紧张度
	Narrative float64 `json:"narrative" yaml:"narrative"` // 叙事密度
	Cognitive float64 `json:"cognitive" yaml:"cognitive"` // 认知负荷
}

// MoodAxisCount 是情绪向量的固定维度。
const MoodAxisCount = 5

// Axes 以固定顺序返回五个轴的值，供距离计算按位配对。
func (m *MoodVector) Axes() [MoodAxisCount]float64 {
	return [MoodAxisCount]float64{m.Operation, m.Session, m.Tension, m.Narrative, m.Cognitive}
}

// Clamp 返回逐轴钳制到 [0,1] 的副本。
func (m *MoodVector) Clamp() *MoodVector {
	c := *m
	for _, p := range []*float64{&c.Operation, &c.Session, &c.Tension, &c.Narrative, &c.Cognitive} {
		if *p < 0 {
			*p = 0
		}
		if *p > 1 {
			*p = 1
		}
	}
	return &c
}
