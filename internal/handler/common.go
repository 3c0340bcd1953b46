package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"matchday/backend/internal/models"
	"matchday/backend/internal/roster"
	"matchday/backend/internal/teams"

	"github.com/gin-gonic/gin"
)

var (
	rosterService *roster.Service
	teamGenerator *teams.Generator
)

// Setup wires the handler package to its collaborators. Must be called
// before the router starts serving.
func Setup(svc *roster.Service, gen *teams.Generator) {
	rosterService = svc
	teamGenerator = gen
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// SignupResponse defines the public shape of a signup record.
type SignupResponse struct {
	ID         uint              `json:"id"`
	MatchID    uint              `json:"match_id"`
	PlayerName string            `json:"player_name"`
	PlayerID   *uint             `json:"player_id,omitempty"`
	IsGuest    bool              `json:"is_guest"`
	IsWaiting  bool              `json:"is_waiting"`
	MealOnly   bool              `json:"meal_only"`
	HasMeal    bool              `json:"has_meal"`
	Positions  []models.Position `json:"positions"`
	OrderRank  int               `json:"order_rank"`
	SignupTime time.Time         `json:"signup_time"`
}

func newSignupResponse(signup models.Signup) SignupResponse {
	return SignupResponse{
		ID:         signup.ID,
		MatchID:    signup.MatchID,
		PlayerName: signup.PlayerName,
		PlayerID:   signup.PlayerID,
		IsGuest:    signup.IsGuest,
		IsWaiting:  signup.IsWaiting,
		MealOnly:   signup.MealOnly,
		HasMeal:    signup.HasMeal,
		Positions:  signup.Positions,
		OrderRank:  signup.OrderRank,
		SignupTime: signup.SignupTime,
	}
}

func newSignupResponses(signups []models.Signup) []SignupResponse {
	out := make([]SignupResponse, 0, len(signups))
	for _, su := range signups {
		out = append(out, newSignupResponse(su))
	}
	return out
}

// abortRosterError translates the roster error taxonomy into HTTP status
// codes. Validation, conflict and not-found failures mean nothing was
// written; a storage failure means the caller should reload before
// retrying.
func abortRosterError(c *gin.Context, err error) {
	switch {
	case roster.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case roster.IsInvalid(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, roster.ErrDuplicateSignup):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("roster storage failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure; the roster may have changed, reload and check"})
	}
}

// parsePositions normalizes the free-form tags accepted by the API into
// canonical positions. Unknown tags are rejected, not dropped, so a typo
// never silently loses a declaration.
func parsePositions(tags []string) ([]models.Position, bool) {
	positions := make([]models.Position, 0, len(tags))
	seen := make(map[models.Position]bool)
	for _, tag := range tags {
		p, ok := models.ParsePosition(tag)
		if !ok {
			return nil, false
		}
		if !seen[p] {
			seen[p] = true
			positions = append(positions, p)
		}
	}
	return positions, true
}
