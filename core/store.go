package core

import "context"

// 存储的领域接口定义在 core，由基础设施层（store 包）实现，避免循环依赖。
//
// gemkit 自身不持久化任何排序结果；Store 只服务于两类协作数据：
//   - 目录快照：上游导入任务写入、source.StoreSource 读取
//   - 用户侧数据：已屏蔽（dismissed）条目列表等

// ErrStoreNotFound 表示 key 不存在。
var ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

// ErrStoreNotSupported 表示后端不支持该操作。
var ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")

// Store 是最小 KV 存储接口。
type Store interface {
	// Name 返回存储后端名称（用于观测与错误信息）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value；ttl 为秒，省略或 <=0 表示不过期
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// BatchGet 批量读取（快照分片、批量遥测常用，减少网络往返）
	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)

	// Close 关闭连接/释放资源
	Close() error
}

// KeyValueStore 是 Store 的扩展接口，增加集合与有序集合操作。
// 集合用于用户屏蔽列表，有序集合用于按分数组织的榜单快照。
// 后端不支持时返回 ErrStoreNotSupported。
type KeyValueStore interface {
	Store

	// SAdd 向集合添加成员
	SAdd(ctx context.Context, key string, members ...string) error

	// SMembers 返回集合全部成员
	SMembers(ctx context.Context, key string) ([]string, error)

	// SIsMember 判断成员是否在集合中
	SIsMember(ctx context.Context, key string, member string) (bool, error)

	// ZAdd 向有序集合添加成员
	ZAdd(ctx context.Context, key string, score float64, member string) error

	// ZRevRange 按分数降序获取有序集合成员区间
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}
