package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rushteam/gemkit/core"
)

type stubProvider struct {
	name   string
	fields map[int64]map[string]any
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Annotations(_ context.Context, ids []int64) (map[int64]map[string]any, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	out := make(map[int64]map[string]any, len(ids))
	for _, id := range ids {
		if f, ok := p.fields[id]; ok {
			out[id] = f
		}
	}
	return out, nil
}

func rawItem(id int64, raw map[string]any) *core.Item {
	return core.NewItem(id, raw)
}

func TestNode_Process_MergesMissingFieldsOnly(t *testing.T) {
	p := &stubProvider{
		name: "quality",
		fields: map[int64]map[string]any{
			1: {"ai_quality": 8.5, "verdict": "Yes"},
		},
	}
	node := &Node{Providers: []Provider{p}}

	// 行内已有 verdict，协作方不得覆盖
	it := rawItem(1, map[string]any{"verdict": "No"})
	out, err := node.Process(context.Background(), nil, []*core.Item{it})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Raw["ai_quality"] != 8.5 {
		t.Errorf("ai_quality = %v, want merged 8.5", out[0].Raw["ai_quality"])
	}
	if out[0].Raw["verdict"] != "No" {
		t.Errorf("verdict = %v, row value must win", out[0].Raw["verdict"])
	}
	if _, ok := out[0].GetLabel("enriched_by"); !ok {
		t.Error("merged item should carry enriched_by label")
	}
}

func TestNode_Process_ProviderErrorSkipped(t *testing.T) {
	broken := &stubProvider{name: "down", err: errors.New("timeout")}
	ok := &stubProvider{name: "ok", fields: map[int64]map[string]any{1: {"ai_quality": 7.0}}}
	node := &Node{Providers: []Provider{broken, ok}}

	it := rawItem(1, map[string]any{})
	out, err := node.Process(context.Background(), nil, []*core.Item{it})
	if err != nil {
		t.Fatalf("Process() error = %v, enrich must not fail the request", err)
	}
	if out[0].Raw["ai_quality"] != 7.0 {
		t.Errorf("healthy provider should still merge, raw = %v", out[0].Raw)
	}
	if _, ok := out[0].GetLabel("enrich_skipped"); !ok {
		t.Error("skipped provider should leave a trace label")
	}
}

func TestNode_Process_CacheHitSkipsProviders(t *testing.T) {
	p := &stubProvider{name: "quality", fields: map[int64]map[string]any{1: {"ai_quality": 8.0}}}
	cache := NewCache(time.Minute)
	node := &Node{Providers: []Provider{p}, Cache: cache}

	// 第一次：走协作方并写缓存
	it := rawItem(1, map[string]any{})
	if _, err := node.Process(context.Background(), nil, []*core.Item{it}); err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", p.calls)
	}

	// 第二次：命中缓存，不再调用协作方
	it2 := rawItem(1, map[string]any{})
	out, err := node.Process(context.Background(), nil, []*core.Item{it2})
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want still 1 (cache hit)", p.calls)
	}
	if out[0].Raw["ai_quality"] != 8.0 {
		t.Errorf("cached fields should merge, raw = %v", out[0].Raw)
	}
}

func TestNode_Process_NoProviders(t *testing.T) {
	node := &Node{}
	it := rawItem(1, map[string]any{"title": "x"})
	out, err := node.Process(context.Background(), nil, []*core.Item{it})
	if err != nil || len(out) != 1 {
		t.Errorf("Process() = (%v, %v), want passthrough", out, err)
	}
}

func TestCache_TTL(t *testing.T) {
	c := NewCache(time.Millisecond)
	c.Put(1, map[string]any{"k": "v"})

	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get(1); ok {
		t.Error("expired entry should miss")
	}
}
