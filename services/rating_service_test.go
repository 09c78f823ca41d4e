package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyNewRating(t *testing.T) {
	tests := []struct {
		name        string
		average     float64
		count       int
		rating      int
		wantAverage float64
		wantCount   int
	}{
		{"first rating", 0, 0, 4, 4.0, 1},
		{"first rating ignores stale average", 3.5, 0, 5, 5.0, 1},
		{"negative count treated as empty", 2.0, -1, 3, 3.0, 1},
		{"folds into existing average", 4.0, 3, 5, 4.25, 4},
		{"all identical ratings stay put", 5.0, 9, 5, 5.0, 10},
		{"lowest rating drags average down", 4.5, 2, 1, 10.0 / 3.0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAverage, gotCount := ApplyNewRating(tt.average, tt.count, tt.rating)
			assert.InDelta(t, tt.wantAverage, gotAverage, 1e-9)
			assert.Equal(t, tt.wantCount, gotCount)
		})
	}
}

func TestApplyNewRatingMatchesFullRescan(t *testing.T) {
	ratings := []int{5, 3, 4, 4, 2, 5, 1, 4}

	average, count := 0.0, 0
	sum := 0
	for _, r := range ratings {
		average, count = ApplyNewRating(average, count, r)
		sum += r
	}

	assert.Equal(t, len(ratings), count)
	assert.InDelta(t, float64(sum)/float64(len(ratings)), average, 1e-9)
}
