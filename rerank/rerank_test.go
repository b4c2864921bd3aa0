package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/gemkit/core"
)

func tagged(id int64, tags ...string) *core.Item {
	return core.NewRecordItem(&core.GameRecord{ID: id, Tags: tags})
}

func TestTopNNode(t *testing.T) {
	items := []*core.Item{tagged(1), tagged(2), tagged(3)}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"truncate", 2, 2},
		{"n larger than input", 10, 3},
		{"n zero disables", 0, 3},
		{"n negative disables", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			out, err := node.Process(context.Background(), nil, items)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != tt.want {
				t.Errorf("len = %d, want %d", len(out), tt.want)
			}
		})
	}

	// 截断保持头部顺序
	node := &TopNNode{N: 2}
	out, _ := node.Process(context.Background(), nil, items)
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("order = [%d %d], want [1 2]", out[0].ID, out[1].ID)
	}
}

func TestDiversityNode(t *testing.T) {
	node := &DiversityNode{PerTag: 2}

	items := []*core.Item{
		tagged(1, "Roguelike"),
		tagged(2, "Roguelike"),
		tagged(3, "Roguelike"), // 超出同标签配额，被顺延剔除
		tagged(4, "Puzzle"),
		tagged(5), // 无标签不受限
		tagged(6),
		tagged(7),
	}

	out, err := node.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}

	got := make([]int64, 0, len(out))
	for _, it := range out {
		got = append(got, it.ID)
	}
	want := []int64{1, 2, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("kept %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kept[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDiversityNode_Disabled(t *testing.T) {
	node := &DiversityNode{}
	items := []*core.Item{tagged(1, "A"), tagged(2, "A"), tagged(3, "A")}
	out, err := node.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Errorf("PerTag<=0 should not drop items, kept %d", len(out))
	}
}
