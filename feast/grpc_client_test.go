package feast

import (
	"context"
	"testing"
)

// TestGrpcClient_GetOnlineFeatures 测试 gRPC 客户端的基本功能
// 注意：这是一个示例测试，实际使用时需要连接真实的 Feast 服务器
func TestGrpcClient_GetOnlineFeatures(t *testing.T) {
	t.Skip("需要连接真实的 Feast 服务器才能运行")

	ctx := context.Background()

	client, err := NewGrpcClient("localhost", 6565, "gemkit")
	if err != nil {
		t.Fatalf("创建客户端失败: %v", err)
	}
	defer client.Close()

	req := &GetOnlineFeaturesRequest{
		Features: []string{
			"game_stats:total_reviews",
			"game_stats:positive_ratio",
		},
		EntityRows: []map[string]interface{}{
			{"appid": int64(620)},
			{"appid": int64(400)},
		},
	}

	resp, err := client.GetOnlineFeatures(ctx, req)
	if err != nil {
		t.Fatalf("获取特征失败: %v", err)
	}

	if len(resp.FeatureVectors) != 2 {
		t.Errorf("期望 2 个特征向量，实际得到 %d 个", len(resp.FeatureVectors))
	}
	for i, fv := range resp.FeatureVectors {
		if len(fv.Values) == 0 {
			t.Errorf("特征向量 %d 为空", i)
		}
	}
}

// TestFromSDKValue 测试从 SDK 值类型转换
func TestFromSDKValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"string", "gem", "gem"},
		{"int64 to float64", int64(42), float64(42)},
		{"float64 passthrough", 3.14, 3.14},
		{"bool true to 1", true, float64(1)},
		{"bool false to 0", false, float64(0)},
		{"bytes to string", []byte("x"), "x"},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fromSDKValue(tt.in); got != tt.want {
				t.Errorf("fromSDKValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
