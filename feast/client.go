// Package feast 是 Feast Feature Store 的客户端边界。
// gemkit 用它拉取目录条目的在线遥测特征（评测量、好评率等实时口径），
// 领域层只依赖 Client 接口，gRPC 实现可替换。
package feast

import (
	"context"
	"time"
)

// Client 是 Feast 在线特征客户端接口。
type Client interface {
	// GetOnlineFeatures 获取在线特征。
	//
	// features 形如 ["game_stats:total_reviews", "game_stats:positive_ratio"]，
	// entityRows 形如 [{"appid": 620}]。
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求。
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表
	Features []string

	// EntityRows 实体行，例如 [{"appid": 620}, {"appid": 400}]
	EntityRows []map[string]any

	// Project 项目名称（可选，覆盖客户端默认）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应。
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 与 EntityRows 按位对应
	FeatureVectors []FeatureVector
}

// FeatureVector 单个实体的特征向量。
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]any

	// EntityRow 对应的实体行
	EntityRow map[string]any
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	Endpoint string
	Project  string
	Timeout  time.Duration
	Token    string // 静态 Token 认证，空表示不认证
}

// ClientOption 配置选项。
type ClientOption func(*ClientConfig)

// WithTimeout 设置请求超时。
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientConfig) { c.Timeout = timeout }
}

// WithStaticToken 设置静态 Token 认证。
func WithStaticToken(token string) ClientOption {
	return func(c *ClientConfig) { c.Token = token }
}
