package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"matchday/backend/internal/database"
	"matchday/backend/internal/models"
	"matchday/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

type MatchInput struct {
	GroupName    string    `json:"group_name" binding:"required" example:"Thursday League"`
	DateTime     time.Time `json:"date_time" binding:"required"`
	LocationName string    `json:"location_name" binding:"required" example:"Riverside Pitch 3"`
	PlayerLimit  int       `json:"player_limit" binding:"required,min=2,max=30"`

	// Passphrase is optional; when set, it can later be exchanged for a
	// fresh organizer token.
	Passphrase string `json:"passphrase"`
}

type TokenInput struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type MatchResponse struct {
	ID           uint      `json:"id"`
	GroupName    string    `json:"group_name"`
	DateTime     time.Time `json:"date_time"`
	LocationName string    `json:"location_name"`
	PlayerLimit  int       `json:"player_limit"`
	ShareCode    string    `json:"share_code"`
}

type MatchSummaryResponse struct {
	MatchResponse
	SignupCount int `json:"signup_count"`
	MealCount   int `json:"meal_count"`
}

type MatchDetailResponse struct {
	MatchResponse
	Active   []SignupResponse `json:"active"`
	Waiting  []SignupResponse `json:"waiting"`
	MealOnly []SignupResponse `json:"meal_only"`
}

type CreatedMatchResponse struct {
	MatchResponse
	// OrganizerToken is returned exactly once; it authorizes destructive
	// operations on this match.
	OrganizerToken string `json:"organizer_token"`
}

func newMatchResponse(match models.Match) MatchResponse {
	return MatchResponse{
		ID:           match.ID,
		GroupName:    match.GroupName,
		DateTime:     match.DateTime,
		LocationName: match.LocationName,
		PlayerLimit:  match.PlayerLimit,
		ShareCode:    match.ShareCode,
	}
}

// endregion

// CreateMatch godoc
// @Summary      Create a new match
// @Description  Creates a match with a capacity-limited roster and returns its one-time organizer token.
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        input body MatchInput true "Match Info"
// @Success      201  {object}  CreatedMatchResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /matches [post]
func CreateMatch(c *gin.Context) {
	var input MatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match := models.Match{
		GroupName:    input.GroupName,
		DateTime:     input.DateTime,
		LocationName: input.LocationName,
		PlayerLimit:  input.PlayerLimit,
		ShareCode:    uuid.NewString(),
	}

	if input.Passphrase != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Passphrase), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash passphrase"})
			return
		}
		match.OrganizerHash = string(hash)
	}

	if err := database.DB.Create(&match).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	token, err := jwt.GenerateMatchToken(match.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate organizer token"})
		return
	}

	c.JSON(http.StatusCreated, CreatedMatchResponse{
		MatchResponse:  newMatchResponse(match),
		OrganizerToken: token,
	})
}

// GetMatches godoc
// @Summary      List matches
// @Description  Lists all matches ordered by date, oldest first, with signup and meal headcounts.
// @Tags         matches
// @Produce      json
// @Success      200  {array}  MatchSummaryResponse
// @Router       /matches [get]
func GetMatches(c *gin.Context) {
	var matches []models.Match
	if err := database.DB.Preload("Signups").Order("date_time ASC").Find(&matches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
		return
	}

	response := make([]MatchSummaryResponse, 0, len(matches))
	for _, match := range matches {
		meals := 0
		for _, su := range match.Signups {
			if su.HasMeal || su.MealOnly {
				meals++
			}
		}
		response = append(response, MatchSummaryResponse{
			MatchResponse: newMatchResponse(match),
			SignupCount:   len(match.Signups),
			MealCount:     meals,
		})
	}
	c.JSON(http.StatusOK, response)
}

// GetMatchByID godoc
// @Summary      Get a match by ID
// @Description  Gets full details for a single match including its three roster partitions.
// @Tags         matches
// @Produce      json
// @Param        id path int true "Match ID"
// @Success      200 {object} MatchDetailResponse
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id} [get]
func GetMatchByID(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	roster, err := rosterService.List(match.ID)
	if err != nil {
		abortRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchDetailResponse{
		MatchResponse: newMatchResponse(match),
		Active:        newSignupResponses(roster.Active),
		Waiting:       newSignupResponses(roster.Waiting),
		MealOnly:      newSignupResponses(roster.MealOnly),
	})
}

// GetMatchByCode godoc
// @Summary      Resolve a share code
// @Description  Looks up the match behind a signup-link share code.
// @Tags         matches
// @Produce      json
// @Param        code path string true "Share code"
// @Success      200 {object} MatchResponse
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /join/{code} [get]
func GetMatchByCode(c *gin.Context) {
	var match models.Match
	if err := database.DB.Where("share_code = ?", c.Param("code")).First(&match).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	c.JSON(http.StatusOK, newMatchResponse(match))
}

// DeleteMatch godoc
// @Summary      Delete a match (organizer only)
// @Description  Deletes a match and all of its signups. Requires the organizer token for this match.
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Match ID"
// @Success      200 {object} map[string]string "{"message": "Match deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id} [delete]
func DeleteMatch(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	if err := rosterService.DeleteMatch(uint(matchID)); err != nil {
		abortRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match deleted"})
}

// IssueMatchToken godoc
// @Summary      Re-issue an organizer token
// @Description  Exchanges the match's organizer passphrase for a fresh token.
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        id    path int        true "Match ID"
// @Param        input body TokenInput true "Passphrase"
// @Success      200 {object} map[string]string "{"organizer_token": "..."}"
// @Failure      401 {object} ErrorResponse "Wrong passphrase"
// @Failure      404 {object} ErrorResponse "Match not found"
// @Router       /matches/{id}/token [post]
func IssueMatchToken(c *gin.Context) {
	matchID, _ := strconv.Atoi(c.Param("id"))

	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load match"})
		return
	}

	if match.OrganizerHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(match.OrganizerHash), []byte(input.Passphrase)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong passphrase"})
		return
	}

	token, err := jwt.GenerateMatchToken(match.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate organizer token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizer_token": token})
}
