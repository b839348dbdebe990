package domain

import "time"

// Rank is a named tier in the points progression.
type Rank string

const (
	RankYoungling   Rank = "Youngling"
	RankPadawan     Rank = "Padawan"
	RankKnight      Rank = "Jedi Knight"
	RankMaster      Rank = "Jedi Master"
	RankGrandMaster Rank = "Grand Master"
)

// rankLadder lists ranks with their minimum point thresholds, ascending.
var rankLadder = []struct {
	Rank      Rank
	MinPoints int
}{
	{RankYoungling, 0},
	{RankPadawan, 100},
	{RankKnight, 500},
	{RankMaster, 1500},
	{RankGrandMaster, 5000},
}

// RankForPoints returns the highest rank whose threshold the points reach.
func RankForPoints(points int) Rank {
	rank := RankYoungling
	for _, tier := range rankLadder {
		if points >= tier.MinPoints {
			rank = tier.Rank
		}
	}
	return rank
}

// NextRank returns the rank above the given one and its point threshold.
// ok is false when the rank is already the top of the ladder.
func NextRank(current Rank) (next Rank, minPoints int, ok bool) {
	for i, tier := range rankLadder {
		if tier.Rank == current && i+1 < len(rankLadder) {
			return rankLadder[i+1].Rank, rankLadder[i+1].MinPoints, true
		}
	}
	return current, 0, false
}

// User represents a registered learner.
type User struct {
	ID                string
	GoogleID          string
	Email             string
	Name              string
	ProfilePictureURL string
	Points            int
	Rank              Rank
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AddPoints accumulates points and keeps the rank consistent with them.
func (u *User) AddPoints(points int) {
	if points <= 0 {
		return
	}
	u.Points += points
	u.Rank = RankForPoints(u.Points)
}
