package source

import (
	"context"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/conv"
	"github.com/rushteam/gemkit/pkg/utils"
)

// Snapshot 是内存目录源：调用方把一批原始目录行直接交给管线。
// 同时实现 Source 与 Node 接口，可单独使用或挂入 Fanout。
type Snapshot struct {
	Rows []map[string]any
}

func (s *Snapshot) Name() string        { return "source.snapshot" }
func (s *Snapshot) Kind() pipeline.Kind { return pipeline.KindSource }

// Process 实现 Node 接口，直接调用 Fetch。
func (s *Snapshot) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return s.Fetch(ctx, rctx)
}

// Fetch 实现 Source 接口。
func (s *Snapshot) Fetch(
	_ context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	out := make([]*core.Item, 0, len(s.Rows))
	for _, row := range s.Rows {
		id := conv.ConfigGetInt64(row, "appid", conv.ConfigGetInt64(row, "id", 0))
		it := core.NewItem(id, row)
		it.PutLabel("source", utils.Label{Value: s.Name(), Source: "source"})
		out = append(out, it)
	}
	return out, nil
}
