package models

import "strings"

// Position is the closed set of field positions the balancing logic
// understands. Signup forms accept free-form tags; they are normalized
// into this set at the API boundary.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// positionAliases maps the tags accepted on signup forms (including the
// Spanish ones used by the original sheets) to canonical positions.
var positionAliases = map[string]Position{
	"goalkeeper": PositionGoalkeeper,
	"gk":         PositionGoalkeeper,
	"keeper":     PositionGoalkeeper,
	"arco":       PositionGoalkeeper,
	"arquero":    PositionGoalkeeper,
	"defender":   PositionDefender,
	"defence":    PositionDefender,
	"defense":    PositionDefender,
	"defensa":    PositionDefender,
	"defensor":   PositionDefender,
	"midfielder": PositionMidfielder,
	"midfield":   PositionMidfielder,
	"medio":      PositionMidfielder,
	"mediocampo": PositionMidfielder,
	"forward":    PositionForward,
	"striker":    PositionForward,
	"delantero":  PositionForward,
}

// ParsePosition normalizes a free-form tag into a canonical Position.
// Returns false for tags outside the known set.
func ParsePosition(tag string) (Position, bool) {
	p, ok := positionAliases[strings.ToLower(strings.TrimSpace(tag))]
	return p, ok
}

// Valid reports whether p is one of the canonical positions.
func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}
