package utils

// Label 是排序链路中的一等公民：可解释、可追踪、可透传。
// 过滤原因、分数构成、档位判定依据都通过 Label 附着在 Item 上，
// 消费端（卡片 UI / 日志）无需重跑分类器即可解释结果。
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // source / normalize / filter / rank / rerank / focus ...
}

// MergeLabel 用于合并同名 Label，遵循“保留历史、可追踪”的默认策略。
// - Value: 以 '|' 累积
// - Source: 以 ',' 累积
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
