package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/pkg/utils"
)

type stubSource struct {
	name  string
	items []*core.Item
	err   error
	delay time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.items, s.err
}

func item(id int64) *core.Item {
	return core.NewItem(id, nil)
}

func TestFanout_MergePreservesRegistrationOrder(t *testing.T) {
	n := &Fanout{Sources: []Source{
		&stubSource{name: "a", items: []*core.Item{item(1), item(2)}, delay: 20 * time.Millisecond},
		&stubSource{name: "b", items: []*core.Item{item(3)}},
	}}

	out, err := n.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 2, 3}
	if len(out) != len(want) {
		t.Fatalf("merged %d items, want %d", len(out), len(want))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("out[%d].ID = %d, want %d (slow source a must still come first)", i, out[i].ID, id)
		}
	}
}

func TestFanout_DedupKeepsFirstAndMergesLabels(t *testing.T) {
	dup := item(1)
	dup.PutLabel("tier", utils.Label{Value: "backup", Source: "b"})

	n := &Fanout{Sources: []Source{
		&stubSource{name: "a", items: []*core.Item{item(1)}},
		&stubSource{name: "b", items: []*core.Item{dup, item(2)}},
	}}

	out, err := n.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("merged %d items, want 2", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("order = [%d %d], want [1 2]", out[0].ID, out[1].ID)
	}
	// 重复条目的标签并入首个
	if _, ok := out[0].GetLabel("tier"); !ok {
		t.Error("duplicate's labels should be merged into the kept item")
	}
}

func TestFanout_FailedSourceSwallowed(t *testing.T) {
	n := &Fanout{Sources: []Source{
		&stubSource{name: "broken", err: errors.New("backend down")},
		&stubSource{name: "ok", items: []*core.Item{item(5)}},
	}}

	out, err := n.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v, want nil (partial results)", err)
	}
	if len(out) != 1 || out[0].ID != 5 {
		t.Errorf("out = %v, want only id=5", out)
	}
}

func TestFanout_TimeoutDropsSlowSource(t *testing.T) {
	n := &Fanout{
		Timeout: 10 * time.Millisecond,
		Sources: []Source{
			&stubSource{name: "slow", items: []*core.Item{item(1)}, delay: 200 * time.Millisecond},
			&stubSource{name: "fast", items: []*core.Item{item(2)}},
		},
	}

	out, err := n.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Errorf("out = %v, want only fast source's id=2", out)
	}
}

func TestFanout_Empty(t *testing.T) {
	n := &Fanout{}
	out, err := n.Process(context.Background(), nil, nil)
	if err != nil || out != nil {
		t.Errorf("Process() = (%v, %v), want (nil, nil)", out, err)
	}
}

func TestSnapshot_Fetch(t *testing.T) {
	s := &Snapshot{Rows: []map[string]any{
		{"appid": 620, "title": "Portal 2"},
		{"id": 400, "title": "Portal"},
		{"title": "no id"},
	}}

	out, err := s.Fetch(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("fetched %d items, want 3", len(out))
	}
	if out[0].ID != 620 || out[1].ID != 400 || out[2].ID != 0 {
		t.Errorf("ids = [%d %d %d], want [620 400 0]", out[0].ID, out[1].ID, out[2].ID)
	}
	if out[0].Raw == nil {
		t.Error("raw row should be carried on the item")
	}
}
