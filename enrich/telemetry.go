package enrich

import (
	"context"
	"strings"

	"github.com/rushteam/gemkit/feast"
)

// FeastTelemetryProvider 从 Feast 在线特征库拉取实时遥测口径，
// 覆盖导入快照里可能滞后的统计字段。
type FeastTelemetryProvider struct {
	Client feast.Client

	// FeatureView 特征视图名，默认 "game_stats"。
	FeatureView string

	// EntityKey 实体键名，默认 "appid"。
	EntityKey string
}

// 拉取的特征后缀即原始行字段名，normalize 的回退链按原名识别。
var telemetryFeatures = []string{
	"total_reviews",
	"positive_ratio",
	"estimated_owners",
	"avg_playtime_minutes",
}

func (p *FeastTelemetryProvider) Name() string { return "enrich.telemetry" }

// Annotations 实现 Provider 接口。
func (p *FeastTelemetryProvider) Annotations(ctx context.Context, ids []int64) (map[int64]map[string]any, error) {
	if p.Client == nil || len(ids) == 0 {
		return nil, nil
	}

	view := p.FeatureView
	if view == "" {
		view = "game_stats"
	}
	entityKey := p.EntityKey
	if entityKey == "" {
		entityKey = "appid"
	}

	features := make([]string, 0, len(telemetryFeatures))
	for _, f := range telemetryFeatures {
		features = append(features, view+":"+f)
	}

	entityRows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		entityRows = append(entityRows, map[string]any{entityKey: id})
	}

	resp, err := p.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   features,
		EntityRows: entityRows,
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int64]map[string]any, len(ids))
	for i, vec := range resp.FeatureVectors {
		if i >= len(ids) || len(vec.Values) == 0 {
			continue
		}
		fields := make(map[string]any, len(vec.Values))
		for name, val := range vec.Values {
			// "game_stats:total_reviews" -> "total_reviews"
			if idx := strings.LastIndex(name, ":"); idx >= 0 {
				name = name[idx+1:]
			}
			fields[name] = val
		}
		out[ids[i]] = fields
	}
	return out, nil
}
