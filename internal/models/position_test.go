package models_test

import (
	"testing"

	"matchday/backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestParsePositionNormalizesAliases(t *testing.T) {
	cases := map[string]models.Position{
		"goalkeeper": models.PositionGoalkeeper,
		"GK":         models.PositionGoalkeeper,
		"arco":       models.PositionGoalkeeper,
		"Arquero":    models.PositionGoalkeeper,
		" defensa ":  models.PositionDefender,
		"defender":   models.PositionDefender,
		"medio":      models.PositionMidfielder,
		"MEDIOCAMPO": models.PositionMidfielder,
		"delantero":  models.PositionForward,
		"striker":    models.PositionForward,
	}
	for tag, want := range cases {
		got, ok := models.ParsePosition(tag)
		require.True(t, ok, "tag %q", tag)
		require.Equal(t, want, got, "tag %q", tag)
	}
}

func TestParsePositionRejectsUnknownTags(t *testing.T) {
	for _, tag := range []string{"", "libero", "coach", "sweeper"} {
		_, ok := models.ParsePosition(tag)
		require.False(t, ok, "tag %q", tag)
	}
}

func TestPositionValid(t *testing.T) {
	require.True(t, models.PositionGoalkeeper.Valid())
	require.False(t, models.Position("libero").Valid())
}

func TestPlayerOverallRating(t *testing.T) {
	player := models.Player{Speed: 7, Control: 6, PhysicalCondition: 5, Attitude: 4}
	require.Equal(t, 6, player.OverallRating()) // 22/4 rounds to 6

	balanced := models.Player{Speed: 5, Control: 5, PhysicalCondition: 5, Attitude: 5}
	require.Equal(t, 5, balanced.OverallRating())
}
