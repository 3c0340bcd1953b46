package handler

import (
	"io"
	"net/http"
	"strconv"

	"matchday/backend/internal/hub"
	"matchday/backend/internal/roster"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type SignupInput struct {
	PlayerID   *uint    `json:"player_id"`
	PlayerName string   `json:"player_name" example:"Mesa"`
	IsGuest    bool     `json:"is_guest"`
	MealOnly   bool     `json:"meal_only"`
	HasMeal    bool     `json:"has_meal"`
	Positions  []string `json:"positions" example:"goalkeeper"`
}

type MealInput struct {
	HasMeal *bool `json:"has_meal" binding:"required"`
}

type PositionsInput struct {
	Positions []string `json:"positions" binding:"required"`
}

type WithdrawResponse struct {
	Success bool `json:"success"`
	// Promoted is the waiting signup pulled into the active partition by
	// this withdrawal, if any.
	Promoted *SignupResponse `json:"promoted,omitempty"`
}

type ReorderResponse struct {
	Moved   bool   `json:"moved"`
	Message string `json:"message,omitempty"`
}

type RosterResponse struct {
	Active   []SignupResponse `json:"active"`
	Waiting  []SignupResponse `json:"waiting"`
	MealOnly []SignupResponse `json:"meal_only"`
}

// endregion

func signupIDs(c *gin.Context) (uint, uint) {
	matchID, _ := strconv.Atoi(c.Param("id"))
	signupID, _ := strconv.Atoi(c.Param("signupID"))
	return uint(matchID), uint(signupID)
}

func broadcastRoster(matchID uint) {
	if r, err := rosterService.List(matchID); err == nil {
		hub.GlobalHub.Broadcast(matchID, hub.Event{
			Type: hub.EventRosterUpdated,
			Payload: RosterResponse{
				Active:   newSignupResponses(r.Active),
				Waiting:  newSignupResponses(r.Waiting),
				MealOnly: newSignupResponses(r.MealOnly),
			},
		})
	}
}

// CreateSignup godoc
// @Summary      Sign up for a match
// @Description  Registers a player or guest. Entrants beyond the player limit land on the waiting list; meal-only entrants never occupy a playing slot.
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        id    path int         true "Match ID"
// @Param        input body SignupInput true "Entrant Info"
// @Success      201  {object}  SignupResponse
// @Failure      400  {object}  ErrorResponse "Invalid entrant"
// @Failure      404  {object}  ErrorResponse "Match or player not found"
// @Failure      409  {object}  ErrorResponse "Already signed up"
// @Router       /matches/{id}/signups [post]
func CreateSignup(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	positions, ok := parsePositions(input.Positions)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown position tag"})
		return
	}

	signup, err := rosterService.Admit(uint(matchID), roster.AdmitRequest{
		PlayerName: input.PlayerName,
		PlayerID:   input.PlayerID,
		IsGuest:    input.IsGuest,
		MealOnly:   input.MealOnly,
		HasMeal:    input.HasMeal,
		Positions:  positions,
	})
	if err != nil {
		abortRosterError(c, err)
		return
	}

	broadcastRoster(uint(matchID))
	c.JSON(http.StatusCreated, newSignupResponse(*signup))
}

// DeleteSignup godoc
// @Summary      Withdraw from a match
// @Description  Removes a signup. Vacating an active playing slot promotes the first waiting entrant.
// @Tags         signups
// @Produce      json
// @Param        id       path int true "Match ID"
// @Param        signupID path int true "Signup ID"
// @Success      200 {object} WithdrawResponse
// @Failure      404 {object} ErrorResponse "Signup not found"
// @Router       /matches/{id}/signups/{signupID} [delete]
func DeleteSignup(c *gin.Context) {
	matchID, signupID := signupIDs(c)

	promoted, err := rosterService.Withdraw(matchID, signupID)
	if err != nil {
		abortRosterError(c, err)
		return
	}

	response := WithdrawResponse{Success: true}
	if promoted != nil {
		r := newSignupResponse(*promoted)
		response.Promoted = &r
	}

	broadcastRoster(matchID)
	c.JSON(http.StatusOK, response)
}

// ReorderSignupUp godoc
// @Summary      Move a signup one position up
// @Description  Swaps order ranks with the predecessor in the same roster partition. A signup already at the head reports moved=false.
// @Tags         signups
// @Produce      json
// @Param        id       path int true "Match ID"
// @Param        signupID path int true "Signup ID"
// @Success      200 {object} ReorderResponse
// @Failure      404 {object} ErrorResponse "Signup not found"
// @Router       /matches/{id}/signups/{signupID}/order [put]
func ReorderSignupUp(c *gin.Context) {
	matchID, signupID := signupIDs(c)

	moved, err := rosterService.ReorderUp(matchID, signupID)
	if err != nil {
		abortRosterError(c, err)
		return
	}

	response := ReorderResponse{Moved: moved}
	if !moved {
		response.Message = "Signup is already at the top of its list"
	} else {
		broadcastRoster(matchID)
	}
	c.JSON(http.StatusOK, response)
}

// UpdateSignupMeal godoc
// @Summary      Toggle meal interest
// @Description  Sets whether a playing signup joins the meal headcount. Meal-only signups cannot opt out.
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        id       path int       true "Match ID"
// @Param        signupID path int       true "Signup ID"
// @Param        input    body MealInput true "Meal flag"
// @Success      200 {object} SignupResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Signup not found"
// @Router       /matches/{id}/signups/{signupID}/meal [put]
func UpdateSignupMeal(c *gin.Context) {
	matchID, signupID := signupIDs(c)

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signup, err := rosterService.ToggleMeal(matchID, signupID, *input.HasMeal)
	if err != nil {
		abortRosterError(c, err)
		return
	}

	broadcastRoster(matchID)
	c.JSON(http.StatusOK, newSignupResponse(*signup))
}

// UpdateSignupPositions godoc
// @Summary      Set declared positions
// @Description  Replaces a signup's self-declared field positions. Tags are normalized to the canonical set.
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        id       path int            true "Match ID"
// @Param        signupID path int            true "Signup ID"
// @Param        input    body PositionsInput true "Position tags"
// @Success      200 {object} SignupResponse
// @Failure      400 {object} ErrorResponse "Unknown position tag"
// @Failure      404 {object} ErrorResponse "Signup not found"
// @Router       /matches/{id}/signups/{signupID}/positions [put]
func UpdateSignupPositions(c *gin.Context) {
	matchID, signupID := signupIDs(c)

	var input PositionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	positions, ok := parsePositions(input.Positions)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown position tag"})
		return
	}

	signup, err := rosterService.SetPositions(matchID, signupID, positions)
	if err != nil {
		abortRosterError(c, err)
		return
	}

	broadcastRoster(matchID)
	c.JSON(http.StatusOK, newSignupResponse(*signup))
}

// GetRoster godoc
// @Summary      Get a match roster
// @Description  Returns the active, waiting and meal-only partitions, each in display order.
// @Tags         signups
// @Produce      json
// @Param        id path int true "Match ID"
// @Success      200 {object} RosterResponse
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id}/roster [get]
func GetRoster(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	r, err := rosterService.List(uint(matchID))
	if err != nil {
		abortRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, RosterResponse{
		Active:   newSignupResponses(r.Active),
		Waiting:  newSignupResponses(r.Waiting),
		MealOnly: newSignupResponses(r.MealOnly),
	})
}

// StreamRosterEvents godoc
// @Summary      Subscribe to roster updates
// @Description  Server-sent event stream; emits a roster_updated event after every mutation of this match's signups.
// @Tags         signups
// @Produce      text/event-stream
// @Param        id path int true "Match ID"
// @Success      200 {string} string "event stream"
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id}/events [get]
func StreamRosterEvents(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	// Reject streams for matches that don't exist.
	if _, err := rosterService.List(uint(matchID)); err != nil {
		abortRosterError(c, err)
		return
	}

	client := make(hub.Client, 8)
	hub.GlobalHub.Subscribe(uint(matchID), client)
	defer hub.GlobalHub.Unsubscribe(uint(matchID), client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
