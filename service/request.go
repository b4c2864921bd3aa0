// Package service 是 gemkit 的装配层：把请求描述符翻译成 Node 链并执行，
// 产出带解释信息的有序 RankingResult 集合。
package service

import (
	"strconv"
	"strings"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/score"
)

// 排序键取值，与请求描述符的 sort 字段一一对应。
const (
	SortRecommended   = "recommended"
	SortPositiveRatio = "positive-ratio"
	SortMostReviews   = "most-reviews"
	SortNewest        = "newest"
	SortCustom        = "custom"
)

// MoodSliderMax 是用户情绪滑杆的整数刻度上限（0-4），内部折算到 [0,1]。
const MoodSliderMax = 4

// Request 是一次排序请求的描述符（上游 API 层的字段形态）。
type Request struct {
	// UserID 请求用户，仅用于屏蔽列表等个性化数据的寻址。
	UserID string `json:"user_id"`

	// Genre 标签过滤；空串表示不过滤。
	Genre string `json:"genre"`

	// RecentDays 字符串编码的天数窗口；空串或非法值表示不过滤。
	RecentDays string `json:"recent_days"`

	// Sort 排序键；非法值按 recommended 处理。
	Sort string `json:"sort"`

	// MinReviews / MinPlaytime 下限过滤；<= 0 表示不过滤。
	MinReviews  int `json:"min_reviews"`
	MinPlaytime int `json:"min_playtime"`

	// Weights 自定义权重，仅 sort=custom 时生效。
	Weights *score.Weights `json:"weights,omitempty"`

	// Mood 情绪滑杆（0-4 整数刻度，轴名小写）；nil 表示不启用情绪匹配。
	Mood map[string]int `json:"mood,omitempty"`

	// Focus 体验焦点规则名；空串表示不做档位分类。
	Focus string `json:"focus"`

	// FocusBands 非空时按档位截留（如 ["on","near"]）。
	FocusBands []string `json:"focus_bands,omitempty"`

	// TopN 截断数量；<= 0 表示不截断。
	TopN int `json:"top_n"`

	// DiversityPerTag 每个首要标签的最大条目数；<= 0 表示关闭多样性重排。
	DiversityPerTag int `json:"diversity_per_tag"`

	// Expr 可选 CEL 保留表达式。
	Expr string `json:"expr"`
}

// RecentDaysValue 解析 RecentDays；非法或非正值返回 0（不过滤）。
func (r *Request) RecentDaysValue() int {
	s := strings.TrimSpace(r.RecentDays)
	if s == "" {
		return 0
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		return 0
	}
	return days
}

// SortValue 返回规整后的排序键。
func (r *Request) SortValue() string {
	switch r.Sort {
	case SortPositiveRatio, SortMostReviews, SortNewest, SortCustom:
		return r.Sort
	default:
		return SortRecommended
	}
}

// MoodVector 把 0-4 整数滑杆折算为内部 [0,1] 向量；Mood 为 nil 或无合法轴时返回 nil。
func (r *Request) MoodVector() *core.MoodVector {
	if len(r.Mood) == 0 {
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
		v, ok := r.Mood[key]
		if !ok {
			continue
		}
		*dst = float64(v) / MoodSliderMax
		found = true
	}
	if !found {
		return nil
	}
	return vec.Clamp()
}
