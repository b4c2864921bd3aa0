package score

import (
	"math"
	"testing"
	"time"

	"github.com/rushteam/gemkit/core"
)

func fixedConfig() *Config {
	cfg := DefaultConfig()
	cfg.Now = func() time.Time {
		return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	}
	return cfg
}

func TestBaseCalculator_Score_Range(t *testing.T) {
	calc := NewBaseCalculator(fixedConfig())

	tests := []struct {
		name string
		rec  *core.GameRecord
	}{
		{"zero record", &core.GameRecord{}},
		{"perfect record", &core.GameRecord{
			PositiveRatio:      100,
			TotalReviews:       5000,
			EstimatedOwners:    10000,
			Price:              4.99,
			AvgPlaytimeMinutes: 2000,
			ReleaseYear:        2025,
		}},
		{"mainstream hit", &core.GameRecord{
			PositiveRatio:      85,
			TotalReviews:       200000,
			EstimatedOwners:    5000000,
			Price:              59.99,
			AvgPlaytimeMinutes: 600,
			ReleaseYear:        2020,
		}},
		{"negative telemetry clamped", &core.GameRecord{
			PositiveRatio:      -5,
			TotalReviews:       -100,
			EstimatedOwners:    -1,
			Price:              -2,
			AvgPlaytimeMinutes: -30,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Score(tt.rec)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Score() = %v, want finite", got)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score() = %v, want in [0,100]", got)
			}
		})
	}
}

func TestBaseCalculator_Score_Deterministic(t *testing.T) {
	calc := NewBaseCalculator(fixedConfig())
	rec := &core.GameRecord{
		PositiveRatio:      96,
		TotalReviews:       800,
		EstimatedOwners:    40000,
		Price:              12.99,
		AvgPlaytimeMinutes: 400,
		ReleaseYear:        2023,
	}

	first := calc.Score(rec)
	for i := 0; i < 10; i++ {
		if got := calc.Score(rec); got != first {
			t.Fatalf("run %d: Score() = %v, want %v", i, got, first)
		}
	}
}

func TestBaseCalculator_VolumeScore(t *testing.T) {
	calc := NewBaseCalculator(fixedConfig())

	tests := []struct {
		reviews float64
		want    float64
	}{
		{0, 0},
		{30, 0},    // 低界及以下得 0
		{5000, 1},  // 高界及以上得 1
		{80000, 1},
	}
	for _, tt := range tests {
		if got := calc.volumeScore(tt.reviews); got != tt.want {
			t.Errorf("volumeScore(%v) = %v, want %v", tt.reviews, got, tt.want)
		}
	}

	// 对数中点：sqrt(30*5000) ≈ 387 处应得 0.5
	mid := math.Sqrt(30 * 5000)
	if got := calc.volumeScore(mid); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("volumeScore(%v) = %v, want 0.5", mid, got)
	}
}

func TestBaseCalculator_HiddenScore(t *testing.T) {
	calc := NewBaseCalculator(fixedConfig())

	tests := []struct {
		owners float64
		want   float64
	}{
		{0, 1},
		{50000, 1},  // 理想阈值内满分
		{500000, 0}, // 上限归零
		{275000, 0.5},
		{9000000, 0},
	}
	for _, tt := range tests {
		if got := calc.hiddenScore(tt.owners); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("hiddenScore(%v) = %v, want %v", tt.owners, got, tt.want)
		}
	}
}

func TestBaseCalculator_RecencyScore_UnknownYear(t *testing.T) {
	calc := NewBaseCalculator(fixedConfig())
	if got := calc.recencyScore(0); got != 0.5 {
		t.Errorf("recencyScore(0) = %v, want neutral 0.5", got)
	}
	// 未来年份按零龄处理
	if got := calc.recencyScore(2030); got != 1 {
		t.Errorf("recencyScore(2030) = %v, want 1", got)
	}
}
