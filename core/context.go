package core

import "github.com/rushteam/gemkit/pkg/utils"

// RecommendContext 承载一次排序请求的用户侧信息，贯穿整个 Pipeline 透传。
// 核心不读任何全局状态：情绪偏好、体验焦点、请求参数都从这里来。
type RecommendContext struct {
	UserID string
	Scene  string

	// Mood 是用户情绪偏好向量；nil 表示本次请求不启用情绪匹配。
	Mood *MoodVector

	// Focus 是请求的体验焦点规则名；空串表示不做档位分类。
	Focus string

	// Labels 是请求级标签，可驱动整个 Pipeline 行为。
	Labels map[string]utils.Label

	// Params 请求级上下文参数（genre、recent_days 等原始请求字段的落点）。
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
