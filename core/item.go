package core

import "github.com/rushteam/gemkit/pkg/utils"

// Item 是排序链路中的统一承载结构：原始行、规范记录、各级分数、标签。
// Labels 用于解释与策略驱动；FinalScore 是排序键。
type Item struct {
	ID int64

	// Raw 是上游目录行的原始形态，仅 source/normalize 阶段使用。
	Raw map[string]any

	// Record 是规范化后的目录记录；normalize 阶段之后保证非 nil。
	Record *GameRecord

	// 各级分数。MoodScore 为 0 表示无情绪信号（中性，不是差匹配）。
	BaseScore      float64 // 统计冷门精品分 [0,100]
	CompositeScore float64 // 综合排序分 [0,1]
	MoodScore      float64 // 情绪匹配分 [0,1]
	FinalScore     float64 // 排序键

	Labels map[string]utils.Label
}

// NewItem 以原始目录行构造 Item。
func NewItem(id int64, raw map[string]any) *Item {
	return &Item{
		ID:     id,
		Raw:    raw,
		Labels: make(map[string]utils.Label),
	}
}

// NewRecordItem 以已规范化的记录构造 Item（测试与内存快照常用）。
func NewRecordItem(rec *GameRecord) *Item {
	return &Item{
		ID:     rec.ID,
		Record: rec,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// GetLabel 读取 Label。
func (it *Item) GetLabel(key string) (utils.Label, bool) {
	if it.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := it.Labels[key]
	return lbl, ok
}
