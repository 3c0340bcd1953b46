package handler

import (
	"net/http"
	"strconv"

	"matchday/backend/internal/database"
	"matchday/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type PlayerInput struct {
	Name              string `json:"name" binding:"required" example:"Diego"`
	PrimaryPosition   string `json:"primary_position" example:"midfielder"`
	SecondaryPosition string `json:"secondary_position"`
	Speed             int    `json:"speed" binding:"omitempty,min=1,max=10"`
	Control           int    `json:"control" binding:"omitempty,min=1,max=10"`
	PhysicalCondition int    `json:"physical_condition" binding:"omitempty,min=1,max=10"`
	Attitude          int    `json:"attitude" binding:"omitempty,min=1,max=10"`
}

type PlayerResponse struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	PrimaryPosition   models.Position `json:"primary_position,omitempty"`
	SecondaryPosition models.Position `json:"secondary_position,omitempty"`
	Speed             int             `json:"speed"`
	Control           int             `json:"control"`
	PhysicalCondition int             `json:"physical_condition"`
	Attitude          int             `json:"attitude"`
	OverallRating     int             `json:"overall_rating"`
}

func newPlayerResponse(player models.Player) PlayerResponse {
	return PlayerResponse{
		ID:                player.ID,
		Name:              player.Name,
		PrimaryPosition:   player.PrimaryPosition,
		SecondaryPosition: player.SecondaryPosition,
		Speed:             player.Speed,
		Control:           player.Control,
		PhysicalCondition: player.PhysicalCondition,
		Attitude:          player.Attitude,
		OverallRating:     player.OverallRating(),
	}
}

// endregion

func ratingOrDefault(v int) int {
	if v == 0 {
		return 5
	}
	return v
}

// CreatePlayer godoc
// @Summary      Create a roster member
// @Description  Adds a known player entrants can sign up as. Skill ratings default to 5.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        input body PlayerInput true "Player Info"
// @Success      201  {object}  PlayerResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Name already exists"
// @Router       /players [post]
func CreatePlayer(c *gin.Context) {
	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := models.Player{
		Name:              input.Name,
		Speed:             ratingOrDefault(input.Speed),
		Control:           ratingOrDefault(input.Control),
		PhysicalCondition: ratingOrDefault(input.PhysicalCondition),
		Attitude:          ratingOrDefault(input.Attitude),
	}

	if input.PrimaryPosition != "" {
		p, ok := models.ParsePosition(input.PrimaryPosition)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown primary position"})
			return
		}
		player.PrimaryPosition = p
	}
	if input.SecondaryPosition != "" {
		p, ok := models.ParsePosition(input.SecondaryPosition)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown secondary position"})
			return
		}
		player.SecondaryPosition = p
	}

	var existing models.Player
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A player with this name already exists"})
		return
	}

	if err := database.DB.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}

	c.JSON(http.StatusCreated, newPlayerResponse(player))
}

// GetPlayers godoc
// @Summary      List roster members
// @Description  Gets a paginated list of known players, optionally filtered by name.
// @Tags         players
// @Produce      json
// @Param        q     query string false "Name filter (substring)"
// @Param        page  query int    false "Page number" default(1)
// @Param        limit query int    false "Items per page" default(20)
// @Success      200 {object} PaginatedResponse[PlayerResponse]
// @Router       /players [get]
func GetPlayers(c *gin.Context) {
	page, limit := PageParams(c, 20)

	query := database.DB.Model(&models.Player{}).Order("name ASC")
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	paginated, err := Paginate[models.Player](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}

	response := make([]PlayerResponse, 0, len(paginated.Data))
	for _, player := range paginated.Data {
		response = append(response, newPlayerResponse(player))
	}
	c.JSON(http.StatusOK, PaginatedResponse[PlayerResponse]{Data: response, Meta: paginated.Meta})
}

// GetPlayerByID godoc
// @Summary      Get a roster member
// @Tags         players
// @Produce      json
// @Param        id path int true "Player ID"
// @Success      200 {object} PlayerResponse
// @Failure      404 {object} ErrorResponse "Player not found"
// @Router       /players/{id} [get]
func GetPlayerByID(c *gin.Context) {
	playerID, _ := strconv.Atoi(c.Param("id"))

	var player models.Player
	if err := database.DB.First(&player, playerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, newPlayerResponse(player))
}
