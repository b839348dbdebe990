package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   Rank
	}{
		{0, RankYoungling},
		{99, RankYoungling},
		{100, RankPadawan},
		{499, RankPadawan},
		{500, RankKnight},
		{1499, RankKnight},
		{1500, RankMaster},
		{4999, RankMaster},
		{5000, RankGrandMaster},
		{100000, RankGrandMaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankForPoints(tt.points), "points=%d", tt.points)
	}
}

func TestNextRank(t *testing.T) {
	next, minPoints, ok := NextRank(RankYoungling)
	assert.True(t, ok)
	assert.Equal(t, RankPadawan, next)
	assert.Equal(t, 100, minPoints)

	next, minPoints, ok = NextRank(RankMaster)
	assert.True(t, ok)
	assert.Equal(t, RankGrandMaster, next)
	assert.Equal(t, 5000, minPoints)

	_, _, ok = NextRank(RankGrandMaster)
	assert.False(t, ok)
}

func TestAddPoints(t *testing.T) {
	u := &User{Points: 90, Rank: RankYoungling}

	u.AddPoints(10)
	assert.Equal(t, 100, u.Points)
	assert.Equal(t, RankPadawan, u.Rank)

	// Non-positive amounts are ignored.
	u.AddPoints(0)
	u.AddPoints(-50)
	assert.Equal(t, 100, u.Points)
	assert.Equal(t, RankPadawan, u.Rank)
}
