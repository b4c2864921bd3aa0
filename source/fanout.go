package source

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pipeline"
	"github.com/rushteam/gemkit/pkg/utils"
)

// Fanout 并发执行多个目录源并按 ID 去重合并（保留先注册源的行）。
// 支持每源超时与并发上限；单个源失败不拖垮整个请求。
type Fanout struct {
	Sources       []Source
	Timeout       time.Duration // 每个源的超时时间
	MaxConcurrent int           // 最大并发数（0 表示无限制）
}

func (n *Fanout) Name() string        { return "source.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindSource }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	var (
		mu      sync.Mutex
		byOrder = make([][]*core.Item, len(n.Sources))
		eg, _   = errgroup.WithContext(ctx)
	)
	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		i, s := i, src
		eg.Go(func() error {
			fetchCtx := ctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, n.Timeout)
				defer cancel()
			}

			items, err := s.Fetch(fetchCtx, rctx)
			if err != nil {
				// 超时或错误时返回空结果，不中断其他源
				return nil
			}
			for _, it := range items {
				if it != nil {
					it.PutLabel("source", utils.Label{Value: s.Name(), Source: "source"})
				}
			}

			mu.Lock()
			byOrder[i] = items
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 按源注册顺序合并，ID 去重保留首个；后续重复仅合并 Labels。
	seen := make(map[int64]*core.Item)
	out := make([]*core.Item, 0)
	for _, items := range byOrder {
		for _, it := range items {
			if it == nil {
				continue
			}
			if old, ok := seen[it.ID]; ok && it.ID != 0 {
				for k, v := range it.Labels {
					old.PutLabel(k, v)
				}
				continue
			}
			seen[it.ID] = it
			out = append(out, it)
		}
	}
	return out, nil
}
