// Package enrich 在规范化之前补齐原始目录行：AI 质量信号（HTTP 协作方）、
// 实时遥测特征（Feast）。协作方缺席或失败不阻塞打分——缺失字段由
// score 层的中性默认值兜底。
package enrich

import "context"

// Provider 按条目 ID 批量提供补充字段（以原始行字段名为 key）。
type Provider interface {
	// Name 返回提供方名称（用于观测与标签）
	Name() string

	// Annotations 返回 id -> 补充字段 的映射；查不到的 id 缺席即可
	Annotations(ctx context.Context, ids []int64) (map[int64]map[string]any, error)
}
