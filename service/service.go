package service

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/enrich"
	"github.com/rushteam/gemkit/filter"
	"github.com/rushteam/gemkit/focus"
	"github.com/rushteam/gemkit/normalize"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/rank"
	"github.com/rushteam/gemkit/rerank"
	"github.com/rushteam/gemkit/score"
	"github.com/rushteam/gemkit/source"
)

// RankService 把请求描述符装配成 Node 链并执行。
// 装配顺序固定：source → enrich → normalize → filter → rank → rerank → focus。
// 服务自身无可变状态，同一输入跑两遍得到相同输出。
type RankService struct {
	// Config 打分参数；nil 时使用默认值。
	Config *score.Config

	// Rules 焦点规则表；nil 时使用内置规则。
	Rules focus.RuleSet

	// Normalizer 规范化器；nil 时使用默认回退链。
	Normalizer *normalize.Normalizer

	// Providers 补齐协作方（AI 质量、遥测等），可为空。
	Providers []enrich.Provider

	// EnrichCache 协作方字段缓存，可为 nil。
	EnrichCache *enrich.Cache

	// Store 个性化存储（屏蔽列表寻址），可为 nil。
	Store core.KeyValueStore

	// Dismissed 内存屏蔽列表，与 Store 叠加。
	Dismissed []int64
}

// Rank 对一批原始目录行执行完整排序链路。
func (s *RankService) Rank(ctx context.Context, rows []map[string]any, req *Request) ([]*RankingResult, error) {
	return s.RankSource(ctx, &source.Snapshot{Rows: rows}, req)
}

// RankSource 以任意 Source 为起点执行排序链路。
func (s *RankService) RankSource(ctx context.Context, src source.Source, req *Request) ([]*RankingResult, error) {
	if req == nil {
		req = &Request{}
	}

	rctx := &core.RecommendContext{
		UserID: req.UserID,
		Scene:  "hidden-gems",
		Mood:   req.MoodVector(),
		Focus:  req.Focus,
		Params: map[string]any{
			"genre":       req.Genre,
			"recent_days": req.RecentDays,
			"sort":        req.SortValue(),
		},
	}

	sortKey := req.SortValue()
	scored := sortKey == SortRecommended || sortKey == SortCustom

	var bands map[int64]*focus.Result
	if req.Focus != "" {
		bands = make(map[int64]*focus.Result)
	}

	p := &pipeline.Pipeline{
		Nodes: s.buildNodes(src, req, sortKey, bands),
	}
	items, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}

	out := make([]*RankingResult, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, newRankingResult(it, scored, bands[it.ID]))
	}
	return out, nil
}

func (s *RankService) buildNodes(src source.Source, req *Request, sortKey string, bands map[int64]*focus.Result) []pipeline.Node {
	nodes := make([]pipeline.Node, 0, 8)

	if n, ok := src.(pipeline.Node); ok {
		nodes = append(nodes, n)
	} else {
		nodes = append(nodes, &source.Fanout{Sources: []source.Source{src}})
	}

	if len(s.Providers) > 0 {
		nodes = append(nodes, &enrich.Node{Providers: s.Providers, Cache: s.EnrichCache})
	}

	nodes = append(nodes, &normalize.Node{Normalizer: s.Normalizer})

	filters := make([]filter.Filter, 0, 6)
	if req.Genre != "" {
		filters = append(filters, &filter.GenreFilter{Genre: req.Genre})
	}
	if days := req.RecentDaysValue(); days > 0 {
		rf := &filter.RecencyFilter{Days: days}
		if s.Config != nil {
			rf.Now = s.Config.Now // 与打分共用时钟，测试可固定
		}
		filters = append(filters, rf)
	}
	if req.MinReviews > 0 {
		filters = append(filters, &filter.MinReviewsFilter{Min: req.MinReviews})
	}
	if req.MinPlaytime > 0 {
		filters = append(filters, &filter.MinPlaytimeFilter{Min: req.MinPlaytime})
	}
	if len(s.Dismissed) > 0 || s.Store != nil {
		filters = append(filters, &filter.DismissedFilter{ItemIDs: s.Dismissed, Store: s.Store})
	}
	if req.Expr != "" {
		filters = append(filters, &filter.ExprFilter{Expr: req.Expr})
	}
	if len(filters) > 0 {
		nodes = append(nodes, &filter.Node{Filters: filters})
	}

	switch sortKey {
	case SortCustom:
		w := score.RecommendedWeights()
		if req.Weights != nil {
			w = req.Weights.Sanitize()
		}
		nodes = append(nodes, &rank.ScoreNode{Config: s.Config, Mode: score.ModeCustom, Weights: w})
	case SortPositiveRatio, SortMostReviews, SortNewest:
		nodes = append(nodes, &rank.FieldSortNode{Key: rank.SortKey(sortKey)})
	default:
		nodes = append(nodes, &rank.ScoreNode{Config: s.Config, Mode: score.ModeRecommended})
	}

	if req.DiversityPerTag > 0 {
		nodes = append(nodes, &rerank.DiversityNode{PerTag: req.DiversityPerTag})
	}
	if req.TopN > 0 {
		nodes = append(nodes, &rerank.TopNNode{N: req.TopN})
	}

	if req.Focus != "" {
		keep := make([]focus.Band, 0, len(req.FocusBands))
		for _, b := range req.FocusBands {
			keep = append(keep, focus.Band(b))
		}
		nodes = append(nodes, &focus.Node{Rules: s.Rules, Focus: req.Focus, Keep: keep, Results: bands})
	}
	return nodes
}
