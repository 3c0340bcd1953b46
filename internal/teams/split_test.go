package teams_test

import (
	"fmt"
	"math/rand"
	"testing"

	"matchday/backend/internal/models"
	"matchday/backend/internal/roster"
	"matchday/backend/internal/teams"

	"github.com/stretchr/testify/require"
)

func signup(id uint, name string, positions ...models.Position) models.Signup {
	su := models.Signup{PlayerName: name, Positions: positions}
	su.ID = id
	return su
}

func countByTeam(members []teams.Member, want models.Position) (team1, team2 int) {
	for _, m := range members {
		has := false
		for _, p := range m.Positions {
			if p == want {
				has = true
			}
		}
		if !has {
			continue
		}
		if m.Team == teams.Team1 {
			team1++
		} else {
			team2++
		}
	}
	return team1, team2
}

func TestSplitRejectsFewerThanTwoEntrants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := teams.Split(nil, rng)
	require.True(t, roster.IsInvalid(err))

	_, err = teams.Split([]models.Signup{signup(1, "Ana")}, rng)
	require.True(t, roster.IsInvalid(err))
}

func TestSplitAlwaysSeparatesTwoGoalkeepers(t *testing.T) {
	entrants := []models.Signup{
		signup(1, "GK One", models.PositionGoalkeeper),
		signup(2, "GK Two", models.PositionGoalkeeper),
	}
	for i := uint(3); i <= 10; i++ {
		entrants = append(entrants, signup(i, fmt.Sprintf("Player %d", i)))
	}

	// Shuffling is random; the goalkeeper rule must hold on every run.
	for seed := int64(0); seed < 50; seed++ {
		assignment, err := teams.Split(entrants, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, assignment.Members, 10)

		gk1, gk2 := countByTeam(assignment.Members, models.PositionGoalkeeper)
		require.Equal(t, 1, gk1, "seed %d: team 1 must get exactly one goalkeeper", seed)
		require.Equal(t, 1, gk2, "seed %d: team 2 must get exactly one goalkeeper", seed)

		team1, team2 := assignment.Teams()
		require.Len(t, team1, 5, "seed %d", seed)
		require.Len(t, team2, 5, "seed %d", seed)
	}
}

func TestSplitLoneGoalkeeperGoesToTeamOne(t *testing.T) {
	entrants := []models.Signup{
		signup(1, "GK", models.PositionGoalkeeper),
		signup(2, "Ana"),
		signup(3, "Bruno"),
		signup(4, "Carla"),
	}

	for seed := int64(0); seed < 20; seed++ {
		assignment, err := teams.Split(entrants, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		gk1, gk2 := countByTeam(assignment.Members, models.PositionGoalkeeper)
		require.Equal(t, 1, gk1)
		require.Zero(t, gk2)
	}
}

func TestSplitBalancesDeclaredPositions(t *testing.T) {
	entrants := []models.Signup{
		signup(1, "D1", models.PositionDefender),
		signup(2, "D2", models.PositionDefender),
		signup(3, "D3", models.PositionDefender),
		signup(4, "D4", models.PositionDefender),
		signup(5, "F1", models.PositionForward),
		signup(6, "F2", models.PositionForward),
	}

	for seed := int64(0); seed < 20; seed++ {
		assignment, err := teams.Split(entrants, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		d1, d2 := countByTeam(assignment.Members, models.PositionDefender)
		require.Equal(t, 2, d1, "seed %d", seed)
		require.Equal(t, 2, d2, "seed %d", seed)

		f1, f2 := countByTeam(assignment.Members, models.PositionForward)
		require.Equal(t, 1, f1, "seed %d", seed)
		require.Equal(t, 1, f2, "seed %d", seed)
	}
}

func TestSplitBalancesUntaggedBySize(t *testing.T) {
	var entrants []models.Signup
	for i := uint(1); i <= 9; i++ {
		entrants = append(entrants, signup(i, fmt.Sprintf("Player %d", i)))
	}

	for seed := int64(0); seed < 20; seed++ {
		assignment, err := teams.Split(entrants, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		team1, team2 := assignment.Teams()
		require.Equal(t, 5, len(team1), "seed %d: odd pools tip toward team 1", seed)
		require.Equal(t, 4, len(team2), "seed %d", seed)
	}
}

func TestSplitIsDeterministicForAFixedSeed(t *testing.T) {
	var entrants []models.Signup
	for i := uint(1); i <= 8; i++ {
		entrants = append(entrants, signup(i, fmt.Sprintf("Player %d", i)))
	}

	first, err := teams.Split(entrants, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := teams.Split(entrants, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	entrants := []models.Signup{
		signup(1, "Ana"),
		signup(2, "Bruno"),
		signup(3, "Carla"),
	}
	want := []uint{1, 2, 3}

	_, err := teams.Split(entrants, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for i, su := range entrants {
		require.Equal(t, want[i], su.ID)
	}
}
