// Package source 实现目录取数 Node：内存快照、存储快照与并发 fan-out 合并。
// 取数产出的是原始目录行（Item.Raw），规范化由 normalize 阶段负责；
// 取数之后目录即视为本次请求的不可变快照，核心从不回写任何存储。
package source

import (
	"context"

	"github.com/rushteam/gemkit/core"
)

// Source 表示一个可复用的目录源（内存/存储分片/远端导入/...）。
// 可被 Fanout 并发执行并合并。
type Source interface {
	Name() string
	Fetch(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
