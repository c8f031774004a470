package entity

import "testing"

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"no ratings", nil, 0},
		{"single rating", []int{4}, 4},
		{"mixed ratings", []int{5, 4, 3}, 4},
		{"fractional mean", []int{5, 4}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := make([]Rating, len(tt.scores))
			for i, s := range tt.scores {
				ratings[i] = Rating{Score: s}
			}
			if got := AverageScore(ratings); got != tt.want {
				t.Errorf("AverageScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
