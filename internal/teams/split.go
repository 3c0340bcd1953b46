package teams

import (
	"math/rand"
	"sort"

	"matchday/backend/internal/models"
	"matchday/backend/internal/roster"
)

// Team numbers used in an Assignment.
const (
	Team1 = 1
	Team2 = 2
)

// Member is one entrant placed on a team.
type Member struct {
	SignupID   uint              `json:"signup_id"`
	PlayerName string            `json:"player_name"`
	Positions  []models.Position `json:"positions"`
	Team       int               `json:"team"`
}

// Assignment is an ephemeral two-team partition of a match's active
// roster. It is never persisted; callers regenerate or move members
// around on their side.
type Assignment struct {
	Members []Member `json:"members"`
}

// Teams splits the assignment back into the two member lists.
func (a Assignment) Teams() (team1, team2 []Member) {
	for _, m := range a.Members {
		if m.Team == Team1 {
			team1 = append(team1, m)
		} else {
			team2 = append(team2, m)
		}
	}
	return team1, team2
}

// positionPriority orders entrants for greedy assignment: goalkeepers
// first, then defenders, midfielders, forwards, untagged last.
func positionPriority(positions []models.Position) int {
	if len(positions) == 0 {
		return 4
	}
	has := func(want models.Position) bool {
		for _, p := range positions {
			if p == want {
				return true
			}
		}
		return false
	}
	switch {
	case has(models.PositionGoalkeeper):
		return 0
	case has(models.PositionDefender):
		return 1
	case has(models.PositionMidfielder):
		return 2
	case has(models.PositionForward):
		return 3
	}
	return 4
}

// Split partitions the active entrants of a match into two balanced teams.
//
// The entrant list is shuffled, stable-sorted by position priority, then
// assigned greedily: the first two goalkeepers go to opposite teams, a
// lone goalkeeper goes to team 1, and every remaining entrant joins
// whichever team has fewer members in their first declared position (or
// fewer members overall when they declared none), ties going to team 1.
func Split(entrants []models.Signup, rng *rand.Rand) (Assignment, error) {
	if len(entrants) < 2 {
		return Assignment{}, &roster.ValidationError{Reason: "at least 2 active players are needed to form teams"}
	}

	pool := make([]models.Signup, len(entrants))
	copy(pool, entrants)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	sort.SliceStable(pool, func(i, j int) bool {
		return positionPriority(pool[i].Positions) < positionPriority(pool[j].Positions)
	})

	counts := map[int]map[models.Position]int{
		Team1: {},
		Team2: {},
	}
	sizes := map[int]int{Team1: 0, Team2: 0}
	var assigned []Member

	place := func(su models.Signup, team int) {
		assigned = append(assigned, Member{
			SignupID:   su.ID,
			PlayerName: su.PlayerName,
			Positions:  su.Positions,
			Team:       team,
		})
		sizes[team]++
		for _, p := range su.Positions {
			counts[team][p]++
		}
	}

	hasGK := func(su models.Signup) bool {
		return positionPriority(su.Positions) == 0
	}

	// Goalkeepers pair off first so each side gets at most one.
	rest := pool[:0]
	gkPlaced := 0
	for _, su := range pool {
		if hasGK(su) && gkPlaced < 2 {
			if gkPlaced == 0 {
				place(su, Team1)
			} else {
				place(su, Team2)
			}
			gkPlaced++
			continue
		}
		rest = append(rest, su)
	}

	for _, su := range rest {
		team := Team1
		if len(su.Positions) > 0 {
			primary := su.Positions[0]
			if counts[Team1][primary] > counts[Team2][primary] {
				team = Team2
			}
		} else if sizes[Team1] > sizes[Team2] {
			team = Team2
		}
		place(su, team)
	}

	return Assignment{Members: assigned}, nil
}
