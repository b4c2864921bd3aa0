package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPQualityProvider 是 AI 质量协作方的 HTTP 客户端：
// 按条目批量拉取质量分（1-10）、定性结论/标签与风险信号。
//
// 协议：
//   - POST {Endpoint}/v1/quality:batch
//   - 请求：{"appids": [620, 400]}
//   - 响应：{"results": [{"appid": 620, "quality": 8.5, "verdict": "Yes",
//     "label": "Hidden Gem", "recovered": false, "bug_risk": 5,
//     "overall_risk": 10, "refund_mentions": 1}]}
type HTTPQualityProvider struct {
	// Endpoint 服务根地址，如 "http://localhost:8600"
	Endpoint string
	// Timeout 请求超时
	Timeout time.Duration

	httpClient *http.Client
}

// NewHTTPQualityProvider 创建质量协作方客户端。
func NewHTTPQualityProvider(endpoint string, timeout time.Duration) *HTTPQualityProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPQualityProvider{
		Endpoint:   endpoint,
		Timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPQualityProvider) Name() string { return "enrich.quality" }

type qualityRequest struct {
	AppIDs []int64 `json:"appids"`
}

type qualityResult struct {
	AppID          int64    `json:"appid"`
	Quality        *float64 `json:"quality"`
	Verdict        string   `json:"verdict"`
	Label          string   `json:"label"`
	Recovered      bool     `json:"recovered"`
	BugRisk        *float64 `json:"bug_risk"`
	OverallRisk    *float64 `json:"overall_risk"`
	RefundMentions *int     `json:"refund_mentions"`
}

type qualityResponse struct {
	Results []qualityResult `json:"results"`
}

// Annotations 实现 Provider 接口。响应字段名映射到原始行字段名。
func (p *HTTPQualityProvider) Annotations(ctx context.Context, ids []int64) (map[int64]map[string]any, error) {
	if p.Endpoint == "" || len(ids) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(qualityRequest{AppIDs: ids})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint+"/v1/quality:batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("quality provider status %d: %s", resp.StatusCode, string(data))
	}

	var parsed qualityResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode quality response: %w", err)
	}

	out := make(map[int64]map[string]any, len(parsed.Results))
	for _, r := range parsed.Results {
		fields := make(map[string]any)
		if r.Quality != nil {
			fields["ai_quality"] = *r.Quality
		}
		if r.Verdict != "" {
			fields["verdict"] = r.Verdict
		}
		if r.Label != "" {
			fields["gem_label"] = r.Label
		}
		if r.Recovered {
			fields["recovered"] = true
		}
		if r.BugRisk != nil {
			fields["bug_risk"] = *r.BugRisk
		}
		if r.OverallRisk != nil {
			fields["overall_risk"] = *r.OverallRisk
		}
		if r.RefundMentions != nil {
			fields["refund_mentions"] = *r.RefundMentions
		}
		if len(fields) > 0 {
			out[r.AppID] = fields
		}
	}
	return out, nil
}
