package filter

import (
	"context"

	"github.com/rushteam/gemkit/core"
)

// GenreFilter 按自由标签做精确成员匹配：标签列表不含 Genre 的条目被过滤。
// Genre 为空表示不过滤。
type GenreFilter struct {
	Genre string
}

func (f *GenreFilter) Name() string { return "filter.genre" }

func (f *GenreFilter) ShouldFilter(_ context.Context, _ *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Genre == "" || item.Record == nil {
		return false, nil
	}
	return !item.Record.HasTag(f.Genre), nil
}
