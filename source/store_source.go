package source

import (
	"context"
	"encoding/json"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/conv"
	"github.com/rushteam/gemkit/pkg/utils"
)

// StoreSource 从 Store 读取 JSON 编码的目录快照（上游导入任务写入）。
// key 缺失按空目录处理并透传错误语义：快照不存在是可恢复的空结果，
// 存储不可用才是错误。
type StoreSource struct {
	Store core.Store
	Key   string // 例如 "gemkit:catalog:latest"
}

func (s *StoreSource) Name() string        { return "source.store" }
func (s *StoreSource) Kind() pipeline.Kind { return pipeline.KindSource }

// Process 实现 Node 接口，直接调用 Fetch。
func (s *StoreSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return s.Fetch(ctx, rctx)
}

// Fetch 实现 Source 接口。
func (s *StoreSource) Fetch(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	if s.Store == nil || s.Key == "" {
		return nil, nil
	}

	data, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput,
			"source: snapshot "+s.Key+" is not a JSON row array")
	}

	out := make([]*core.Item, 0, len(rows))
	for _, row := range rows {
		id := conv.ConfigGetInt64(row, "appid", conv.ConfigGetInt64(row, "id", 0))
		it := core.NewItem(id, row)
		it.PutLabel("source", utils.Label{Value: s.Name(), Source: "source"})
		out = append(out, it)
	}
	return out, nil
}
