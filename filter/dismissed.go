package filter

import (
	"context"
	"strconv"

	"github.com/rushteam/gemkit/core"
)

// DismissedFilter 过滤用户标记过“不感兴趣/已拥有”的条目。
// 支持内存列表与存储集合两种来源，二者可叠加。
type DismissedFilter struct {
	// ItemIDs 是内存中的屏蔽 ID 列表
	ItemIDs []int64

	// Store 用于从存储集合中读取屏蔽列表（可选）
	Store core.KeyValueStore

	// KeyPrefix 是存储中的集合 key 前缀，拼接 rctx.UserID。
	// 默认 "gemkit:dismissed:"。
	KeyPrefix string
}

func (f *DismissedFilter) Name() string { return "filter.dismissed" }

func (f *DismissedFilter) ShouldFilter(ctx context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	for _, id := range f.ItemIDs {
		if id == item.ID {
			return true, nil
		}
	}

	if f.Store == nil || rctx == nil || rctx.UserID == "" {
		return false, nil
	}
	prefix := f.KeyPrefix
	if prefix == "" {
		prefix = "gemkit:dismissed:"
	}
	ok, err := f.Store.SIsMember(ctx, prefix+rctx.UserID, strconv.FormatInt(item.ID, 10))
	if err != nil {
		// 存储不可用时放行：屏蔽是尽力而为的个性化，不是正确性约束
		return false, nil
	}
	return ok, nil
}
