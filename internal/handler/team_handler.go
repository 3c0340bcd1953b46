package handler

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"matchday/backend/internal/teams"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type TeamsResponse struct {
	Team1 []teams.Member `json:"team1"`
	Team2 []teams.Member `json:"team2"`
}

func newTeamsResponse(assignment teams.Assignment) TeamsResponse {
	team1, team2 := assignment.Teams()
	return TeamsResponse{Team1: team1, Team2: team2}
}

// endregion

// GenerateTeams godoc
// @Summary      Split the active roster into two teams
// @Description  Produces a randomized, position-balanced two-team split of the active players. Nothing is persisted; call again to regenerate.
// @Tags         teams
// @Produce      json
// @Param        id path int true "Match ID"
// @Success      200 {object} TeamsResponse
// @Failure      400 {object} ErrorResponse "Fewer than 2 active players"
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id}/teams [post]
func GenerateTeams(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	entrants, err := rosterService.ActivePlayers(uint(matchID))
	if err != nil {
		abortRosterError(c, err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	assignment, err := teams.Split(entrants, rng)
	if err != nil {
		abortRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTeamsResponse(assignment))
}

// GenerateTeamsAI godoc
// @Summary      Split the active roster via the AI assistant
// @Description  Sends the active roster and player skill profiles to the configured language model and returns its two-team proposal. Nothing is persisted.
// @Tags         teams
// @Produce      json
// @Param        id path int true "Match ID"
// @Success      200 {object} TeamsResponse
// @Failure      400 {object} ErrorResponse "Fewer than 2 active players"
// @Failure      404 {object} ErrorResponse "Match not found"
// @Failure      502 {object} ErrorResponse "Model call failed"
// @Failure      503 {object} ErrorResponse "AI assistant not configured"
// @Router       /matches/{id}/teams/ai [post]
func GenerateTeamsAI(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	if teamGenerator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI team generation is not configured"})
		return
	}

	entrants, err := rosterService.ActivePlayers(uint(matchID))
	if err != nil {
		abortRosterError(c, err)
		return
	}
	if len(entrants) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least 2 active players are needed to form teams"})
		return
	}

	assignment, err := teamGenerator.Generate(c.Request.Context(), entrants)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI team generation failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, newTeamsResponse(assignment))
}
