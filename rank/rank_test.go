package rank

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/score"
)

func fixedConfig() *score.Config {
	cfg := score.DefaultConfig()
	cfg.Now = func() time.Time {
		return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	}
	return cfg
}

func TestScoreNode_Process_SortsDescending(t *testing.T) {
	node := &ScoreNode{Config: fixedConfig()}

	items := []*core.Item{
		core.NewRecordItem(&core.GameRecord{ID: 1, PositiveRatio: 70, TotalReviews: 100, ReleaseYear: 2015}),
		core.NewRecordItem(&core.GameRecord{ID: 2, PositiveRatio: 98, TotalReviews: 2000, ReleaseYear: 2024, AIQuality: 9, Verdict: "Yes"}),
		core.NewRecordItem(&core.GameRecord{ID: 3, PositiveRatio: 85, TotalReviews: 500, ReleaseYear: 2020}),
	}

	out, err := node.Process(context.Background(), &core.RecommendContext{}, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out[0].ID != 2 {
		t.Errorf("top item = %d, want 2", out[0].ID)
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].FinalScore < out[i].FinalScore {
			t.Errorf("order violated at %d: %v < %v", i, out[i-1].FinalScore, out[i].FinalScore)
		}
	}
	// 分数与解释标签都已写回
	for _, it := range out {
		if it.BaseScore == 0 && it.CompositeScore == 0 {
			t.Errorf("item %d: scores not populated", it.ID)
		}
		if _, ok := it.GetLabel("score_breakdown"); !ok {
			t.Errorf("item %d: missing score_breakdown label", it.ID)
		}
	}
}

func TestScoreNode_Process_StableOnTies(t *testing.T) {
	node := &ScoreNode{Config: fixedConfig()}

	// 完全相同的遥测 → 相同分数，到达顺序必须保持
	mk := func(id int64) *core.Item {
		return core.NewRecordItem(&core.GameRecord{ID: id, PositiveRatio: 90, TotalReviews: 400, ReleaseYear: 2023})
	}
	items := []*core.Item{mk(10), mk(11), mk(12)}

	out, err := node.Process(context.Background(), &core.RecommendContext{}, items)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int64{10, 11, 12} {
		if out[i].ID != want {
			t.Errorf("out[%d].ID = %d, want %d (stable order)", i, out[i].ID, want)
		}
	}
}

func TestScoreNode_Process_MoodInfluence(t *testing.T) {
	node := &ScoreNode{Config: fixedConfig()}

	vec := &core.MoodVector{Operation: 0.9, Session: 0.2, Tension: 0.8, Narrative: 0.1, Cognitive: 0.3}
	items := []*core.Item{
		core.NewRecordItem(&core.GameRecord{ID: 1, PositiveRatio: 90, TotalReviews: 400, Mood: vec}),
		core.NewRecordItem(&core.GameRecord{ID: 2, PositiveRatio: 90, TotalReviews: 400}),
	}

	out, err := node.Process(context.Background(), &core.RecommendContext{Mood: vec}, items)
	if err != nil {
		t.Fatal(err)
	}
	var withVec, without *core.Item
	for _, it := range out {
		if it.ID == 1 {
			withVec = it
		} else {
			without = it
		}
	}
	if withVec.MoodScore != 1 {
		t.Errorf("MoodScore = %v, want 1 for identical vectors", withVec.MoodScore)
	}
	if without.MoodScore != 0 {
		t.Errorf("MoodScore = %v, want 0 for missing item vector", without.MoodScore)
	}
	if without.FinalScore != without.CompositeScore {
		t.Errorf("no mood signal: FinalScore %v should equal CompositeScore %v", without.FinalScore, without.CompositeScore)
	}
	if withVec.FinalScore <= without.FinalScore {
		t.Error("perfect mood match should rank above mood-neutral twin")
	}
}

func TestScoreNode_InvalidModeFallsBack(t *testing.T) {
	node := &ScoreNode{Config: fixedConfig(), Mode: "bogus"}
	items := []*core.Item{core.NewRecordItem(&core.GameRecord{ID: 1, PositiveRatio: 90})}

	out, err := node.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	if lbl, _ := out[0].GetLabel("rank_mode"); lbl.Value != string(score.ModeRecommended) {
		t.Errorf("rank_mode = %q, want recommended fallback", lbl.Value)
	}
}

func TestFieldSortNode(t *testing.T) {
	items := func() []*core.Item {
		return []*core.Item{
			core.NewRecordItem(&core.GameRecord{ID: 1, PositiveRatio: 80, TotalReviews: 900, ReleaseYear: 2024}),
			core.NewRecordItem(&core.GameRecord{ID: 2, PositiveRatio: 95, TotalReviews: 100, ReleaseDate: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC), ReleaseYear: 2022}),
			core.NewRecordItem(&core.GameRecord{ID: 3, PositiveRatio: 90, TotalReviews: 5000, ReleaseDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ReleaseYear: 2025}),
		}
	}

	tests := []struct {
		key  SortKey
		want []int64
	}{
		{SortPositiveRatio, []int64{2, 3, 1}},
		{SortMostReviews, []int64{3, 1, 2}},
		{SortNewest, []int64{3, 2, 1}}, // 无日期的条目退到年份键，排在任何日期键之后
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			node := &FieldSortNode{Key: tt.key}
			out, err := node.Process(context.Background(), nil, items())
			if err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.want {
				if out[i].ID != want {
					t.Errorf("out[%d].ID = %d, want %d", i, out[i].ID, want)
				}
			}
		})
	}
}
