package service

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/gemkit/core"
	"github.com/rushteam/gemkit/focus"
	"github.com/rushteam/gemkit/score"
)

func fixedService() *RankService {
	cfg := score.DefaultConfig()
	cfg.Now = func() time.Time {
		return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	}
	return &RankService{Config: cfg}
}

func sampleRows() []map[string]any {
	return []map[string]any{
		{
			"appid": 1, "title": "Gloam Keeper",
			"positive_ratio": 97.5, "total_reviews": 900, "estimated_owners": 35000,
			"price": 11.99, "release_date": "2024-09-01",
			"tags":      []any{"Roguelike"},
			"fact_tags": []any{"roguelike-permadeath", "procedural-generation"},
		},
		{
			"appid": 2, "title": "Harbor & Hearth",
			"positive_ratio": 93.0, "total_reviews": 4000, "estimated_owners": 120000,
			"price": 19.99, "release_date": "2023-01-15",
			"tags":      []any{"Simulation"},
			"fact_tags": []any{"automation-production-loop", "farming-sim"},
		},
		{
			"appid": 3, "title": "Ironclad Protocol",
			"positive_ratio": 81.0, "total_reviews": 60000, "estimated_owners": 3000000,
			"price": 49.99, "release_date": "2020-06-30",
			"tags":      []any{"Action"},
			"fact_tags": []any{"realtime-precise-input"},
		},
	}
}

func TestRankService_Rank_Recommended(t *testing.T) {
	svc := fixedService()

	results, err := svc.Rank(context.Background(), sampleRows(), &Request{Sort: SortRecommended})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].FinalScore < results[i].FinalScore {
			t.Errorf("order violated at %d", i)
		}
	}
	// 展示分数折算到 0-10
	for _, r := range results {
		if r.DisplayScore < 0 || r.DisplayScore > 10 {
			t.Errorf("%s: DisplayScore = %v, want in [0,10]", r.Title, r.DisplayScore)
		}
	}
}

func TestRankService_Rank_Idempotent(t *testing.T) {
	svc := fixedService()
	req := &Request{Sort: SortRecommended, Genre: "", TopN: 10}

	first, err := svc.Rank(context.Background(), sampleRows(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Rank(context.Background(), sampleRows(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].FinalScore != second[i].FinalScore {
			t.Errorf("run mismatch at %d: (%d, %v) vs (%d, %v)",
				i, first[i].ID, first[i].FinalScore, second[i].ID, second[i].FinalScore)
		}
	}
}

func TestRankService_Rank_Filters(t *testing.T) {
	svc := fixedService()

	results, err := svc.Rank(context.Background(), sampleRows(), &Request{
		Genre:      "Roguelike",
		MinReviews: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("results = %v, want only appid=1", results)
	}
}

func TestRankService_Rank_RecentDays(t *testing.T) {
	svc := fixedService()

	// 固定 now=2025-06-15，365 天窗口只留 2024-09-01 的条目
	results, err := svc.Rank(context.Background(), sampleRows(), &Request{RecentDays: "365"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		ids := make([]int64, 0, len(results))
		for _, r := range results {
			ids = append(ids, r.ID)
		}
		t.Errorf("ids = %v, want [1]", ids)
	}

	// 非法窗口视为不过滤
	results, err = svc.Rank(context.Background(), sampleRows(), &Request{RecentDays: "soon"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Errorf("invalid recent_days should disable the window, got %d results", len(results))
	}
}

func TestRankService_Rank_CustomWeights(t *testing.T) {
	svc := fixedService()

	// 全押新近度：2024 年的条目应登顶
	results, err := svc.Rank(context.Background(), sampleRows(), &Request{
		Sort:    SortCustom,
		Weights: &score.Weights{Recency: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].ID != 1 {
		t.Errorf("top = %d, want 1 (newest) under recency-only weights", results[0].ID)
	}
}

func TestRankService_Rank_FieldSorts(t *testing.T) {
	svc := fixedService()

	tests := []struct {
		sort string
		top  int64
	}{
		{SortPositiveRatio, 1},
		{SortMostReviews, 3},
		{SortNewest, 1},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			results, err := svc.Rank(context.Background(), sampleRows(), &Request{Sort: tt.sort})
			if err != nil {
				t.Fatal(err)
			}
			if results[0].ID != tt.top {
				t.Errorf("top = %d, want %d", results[0].ID, tt.top)
			}
			// 字段排序不产出展示分
			if results[0].DisplayScore != 0 {
				t.Errorf("DisplayScore = %v, want 0 for field sort", results[0].DisplayScore)
			}
		})
	}
}

func TestRankService_Rank_FocusBands(t *testing.T) {
	svc := fixedService()

	results, err := svc.Rank(context.Background(), sampleRows(), &Request{
		Focus: "roguelike-grind",
	})
	if err != nil {
		t.Fatal(err)
	}
	byID := make(map[int64]*RankingResult, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}
	if byID[1].Band == nil || byID[1].Band.Band != focus.BandOn {
		t.Errorf("appid 1 band = %+v, want on", byID[1].Band)
	}
	if byID[2].Band == nil || byID[2].Band.Band != focus.BandOff {
		t.Errorf("appid 2 band = %+v, want off", byID[2].Band)
	}

	// 档位截留
	results, err = svc.Rank(context.Background(), sampleRows(), &Request{
		Focus:      "roguelike-grind",
		FocusBands: []string{"on"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("band-kept results = %v, want only appid=1", results)
	}
}

func TestRankService_Rank_UnknownFocus(t *testing.T) {
	svc := fixedService()
	_, err := svc.Rank(context.Background(), sampleRows(), &Request{Focus: "no-such-focus"})
	if err == nil {
		t.Fatal("expected error for unknown focus rule")
	}
	if de := core.GetDomainError(err); de == nil || de.Code != core.ErrorCodeNotFound {
		t.Errorf("error = %v, want domain NOT_FOUND", err)
	}
}

func TestRequest_MoodVector(t *testing.T) {
	req := &Request{Mood: map[string]int{"operation": 4, "tension": 2}}
	vec := req.MoodVector()
	if vec == nil {
		t.Fatal("MoodVector() = nil")
	}
	if vec.Operation != 1 || vec.Tension != 0.5 {
		t.Errorf("vec = %+v, want operation=1 tension=0.5", vec)
	}

	if (&Request{}).MoodVector() != nil {
		t.Error("empty mood should yield nil vector")
	}
	if (&Request{Mood: map[string]int{"vibes": 3}}).MoodVector() != nil {
		t.Error("unknown axes should yield nil vector")
	}
}

func TestRequest_SortValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", SortRecommended},
		{"recommended", SortRecommended},
		{"positive-ratio", SortPositiveRatio},
		{"bogus", SortRecommended},
		{"custom", SortCustom},
	}
	for _, tt := range tests {
		if got := (&Request{Sort: tt.in}).SortValue(); got != tt.want {
			t.Errorf("SortValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
