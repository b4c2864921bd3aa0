// Package builders 通过 init 注册全部内置 Node 的配置构建器。
// 配置驱动入口处 import _ "github.com/rushteam/gemkit/config/builders" 即可。
package builders

import (
	"fmt"
	"time"

	"github.com/rushteam/gemkit/config"
	"github.com/rushteam/gemkit/enrich"
	"github.com/rushteam/gemkit/filter"
	"github.com/rushteam/gemkit/focus"
	"github.com/rushteam/gemkit/normalize"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/conv"
	"github.com/rushteam/gemkit/rank"
	"github.com/rushteam/gemkit/rerank"
	"github.com/rushteam/gemkit/score"
	"github.com/rushteam/gemkit/source"
)

func init() {
	config.Register("source.snapshot", BuildSnapshotNode)
	config.Register("source.fanout", BuildFanoutNode)
	config.Register("enrich", BuildEnrichNode)
	config.Register("normalize", BuildNormalizeNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rank.score", BuildScoreNode)
	config.Register("rank.field_sort", BuildFieldSortNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("focus.band", BuildFocusNode)
}

func BuildSnapshotNode(cfg map[string]any) (pipeline.Node, error) {
	rowsConfig, ok := cfg["rows"].([]any)
	if !ok {
		return nil, fmt.Errorf("rows not found or invalid")
	}
	rows := make([]map[string]any, 0, len(rowsConfig))
	for _, rc := range rowsConfig {
		if row, ok := rc.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return &source.Snapshot{Rows: rows}, nil
}

func BuildFanoutNode(cfg map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]source.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "snapshot":
			node, err := BuildSnapshotNode(sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, node.(*source.Snapshot))
		case "store":
			// 存储句柄需在代码中注入，配置只声明 key
			sources = append(sources, &source.StoreSource{
				Key: conv.ConfigGet(sourceMap, "key", ""),
			})
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &source.Fanout{Sources: sources}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

func BuildEnrichNode(cfg map[string]any) (pipeline.Node, error) {
	node := &enrich.Node{}
	if endpoint := conv.ConfigGet(cfg, "quality_endpoint", ""); endpoint != "" {
		timeout := time.Duration(conv.ConfigGetInt64(cfg, "quality_timeout", 0)) * time.Second
		node.Providers = append(node.Providers, enrich.NewHTTPQualityProvider(endpoint, timeout))
	}
	if sec := conv.ConfigGetInt64(cfg, "cache_ttl", 0); sec > 0 {
		node.Cache = enrich.NewCache(time.Duration(sec) * time.Second)
	}
	return node, nil
}

func BuildNormalizeNode(cfg map[string]any) (pipeline.Node, error) {
	return &normalize.Node{Normalizer: normalize.New()}, nil
}

func BuildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "genre":
			filters = append(filters, &filter.GenreFilter{
				Genre: conv.ConfigGet(filterMap, "genre", ""),
			})
		case "recency":
			filters = append(filters, &filter.RecencyFilter{
				Days: int(conv.ConfigGetInt64(filterMap, "days", 0)),
			})
		case "min_reviews":
			filters = append(filters, &filter.MinReviewsFilter{
				Min: int(conv.ConfigGetInt64(filterMap, "min", 0)),
			})
		case "min_playtime":
			filters = append(filters, &filter.MinPlaytimeFilter{
				Min: int(conv.ConfigGetInt64(filterMap, "min", 0)),
			})
		case "dismissed":
			ids := conv.ConvertSlice(conv.SliceAnyToString(filterMap["item_ids"]), parseID)
			// 存储句柄需在代码中注入，配置只承载静态列表与前缀
			filters = append(filters, &filter.DismissedFilter{
				ItemIDs:   ids,
				KeyPrefix: conv.ConfigGet(filterMap, "key_prefix", ""),
			})
		case "expr":
			filters = append(filters, &filter.ExprFilter{
				Expr: conv.ConfigGet(filterMap, "expr", ""),
			})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.Node{Filters: filters}, nil
}

func BuildScoreNode(cfg map[string]any) (pipeline.Node, error) {
	node := &rank.ScoreNode{Mode: score.ModeRecommended}
	if conv.ConfigGet(cfg, "mode", "") == string(score.ModeCustom) {
		node.Mode = score.ModeCustom
		weightsMap, ok := cfg["weights"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("custom mode requires weights")
		}
		node.Weights = score.Weights{
			AIQuality:     conv.ConfigGetFloat64(weightsMap, "ai_quality", 0),
			PositiveRatio: conv.ConfigGetFloat64(weightsMap, "positive_ratio", 0),
			ReviewVolume:  conv.ConfigGetFloat64(weightsMap, "review_volume", 0),
			Recency:       conv.ConfigGetFloat64(weightsMap, "recency", 0),
		}.Sanitize()
	}
	return node, nil
}

func BuildFieldSortNode(cfg map[string]any) (pipeline.Node, error) {
	key := conv.ConfigGet(cfg, "key", "")
	switch rank.SortKey(key) {
	case rank.SortPositiveRatio, rank.SortMostReviews, rank.SortNewest:
		return &rank.FieldSortNode{Key: rank.SortKey(key)}, nil
	default:
		return nil, fmt.Errorf("unknown sort key: %s", key)
	}
}

func BuildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildDiversityNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.DiversityNode{PerTag: int(conv.ConfigGetInt64(cfg, "per_tag", 0))}, nil
}

func BuildFocusNode(cfg map[string]any) (pipeline.Node, error) {
	node := &focus.Node{
		Focus: conv.ConfigGet(cfg, "focus", ""),
	}
	if path := conv.ConfigGet(cfg, "rules_file", ""); path != "" {
		rules, err := focus.LoadRulesFromYAML(path)
		if err != nil {
			return nil, err
		}
		node.Rules = rules
	}
	for _, b := range conv.SliceAnyToString(cfg["keep"]) {
		node.Keep = append(node.Keep, focus.Band(b))
	}
	return node, nil
}

func parseID(s string) (int64, bool) {
	var id int64
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		return 0, false
	}
	return id, true
}
