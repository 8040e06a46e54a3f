package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"programmers-api/internal/database"
	"programmers-api/internal/models"
	"programmers-api/internal/realtime"
	"programmers-api/internal/validation"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateProgrammerRequest represents the request payload for creating a programmer.
// Fields carry form and json tags so browser form posts and JSON API clients
// share one binding path; AvatarNumber is a json.Number so a non-numeric form
// value becomes a field validation error instead of a decode failure.
type CreateProgrammerRequest struct {
	Nickname     string      `form:"nickname" json:"nickname" validate:"required,max=100"`
	AvatarNumber json.Number `form:"avatarNumber" json:"avatarNumber" validate:"required,number"`
	Password     string      `form:"password" json:"password" validate:"required,min=6"`
}

// UpdateProgrammerRequest represents the request payload for updating a programmer.
// The password is optional; an empty value keeps the stored hash.
type UpdateProgrammerRequest struct {
	Nickname     string      `form:"nickname" json:"nickname" validate:"required,max=100"`
	AvatarNumber json.Number `form:"avatarNumber" json:"avatarNumber" validate:"required,number"`
	Password     string      `form:"password" json:"password" validate:"omitempty,min=6"`
}

// parseProgrammerID extracts the numeric id from a path segment, tolerating a
// trailing .json suffix (e.g. GET /api/programmers/5.json).
func parseProgrammerID(segment string) (uint, bool) {
	raw := strings.TrimSuffix(segment, ".json")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

/*
*
GetProgrammers handles GET /api/programmers and /api/programmers.json
Returns programmers ordered by creation time, paginated.
*/
func GetProgrammers(c *gin.Context) {
	// Query params: page (default 1), limit (default 25), sort (asc|desc on created_at, default desc)
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "25")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "desc"))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	order := "created_at desc"
	if sortParam == "asc" {
		order = "created_at asc"
	}

	db := database.GetDB()

	// Total count (without pagination)
	var total int64
	if err := db.Model(&models.Programmer{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count programmers",
		})
		return
	}

	var programmers []models.Programmer
	result := db.Order(order).Limit(limit).Offset(offset).Find(&programmers)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch programmers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"programmers": programmers,
		"count":       len(programmers), // number of items in this page
		"total":       total,            // total programmers across all pages
		"page":        page,
		"limit":       limit,
		"sort":        sortParam,
	})
}

/*
*
CreateProgrammer handles POST /api/programmers and /api/programmers.json
Accepts a JSON or form-encoded body. On success returns 201 with the stored
record; on validation failure returns 400 with a field -> error-list mapping
the client uses to annotate the form.
*/
func CreateProgrammer(c *gin.Context) {
	var req CreateProgrammerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request payload",
		})
		return
	}

	if fields := validation.Fields(req); fields != nil {
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	avatar, err := req.AvatarNumber.Int64()
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string][]string{
			"avatarNumber": {"Must be a number"},
		})
		return
	}

	// The plaintext password is hashed here and discarded; only the hash is stored
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to hash password",
		})
		return
	}

	programmer := models.Programmer{
		Nickname:     req.Nickname,
		AvatarNumber: int(avatar),
		PasswordHash: string(hash),
	}

	result := database.GetDB().Create(&programmer)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create programmer",
		})
		return
	}

	// Broadcast event so open list views refresh
	evt := map[string]any{
		"type":     "programmer_created",
		"id":       programmer.ID,
		"nickname": programmer.Nickname,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(bytes)
	}

	c.JSON(http.StatusCreated, programmer)
}

// GetProgrammerByID handles GET /api/programmers/:id
// The id segment may carry a .json suffix.
func GetProgrammerByID(c *gin.Context) {
	id, ok := parseProgrammerID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid programmer ID"})
		return
	}

	var programmer models.Programmer
	result := database.GetDB().First(&programmer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Programmer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch programmer"})
		}
		return
	}

	c.JSON(http.StatusOK, programmer)
}

// UpdateProgrammer handles PUT /api/programmers/:id
// Replaces nickname and avatar number; the password hash changes only when a
// new password is supplied.
func UpdateProgrammer(c *gin.Context) {
	id, ok := parseProgrammerID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid programmer ID",
		})
		return
	}

	// Check if programmer exists
	var existing models.Programmer
	result := database.GetDB().First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Programmer not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch programmer",
			})
		}
		return
	}

	var req UpdateProgrammerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request payload",
		})
		return
	}

	if fields := validation.Fields(req); fields != nil {
		c.JSON(http.StatusBadRequest, fields)
		return
	}

	avatar, err := req.AvatarNumber.Int64()
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string][]string{
			"avatarNumber": {"Must be a number"},
		})
		return
	}

	existing.Nickname = req.Nickname
	existing.AvatarNumber = int(avatar)
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to hash password",
			})
			return
		}
		existing.PasswordHash = string(hash)
	}

	result = database.GetDB().Save(&existing)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update programmer",
		})
		return
	}

	// Broadcast update event
	evt := map[string]any{
		"type":     "programmer_updated",
		"id":       existing.ID,
		"nickname": existing.Nickname,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(bytes)
	}

	c.JSON(http.StatusOK, existing)
}

// DeleteProgrammer handles DELETE /api/programmers/:id
// Hard-deletes the record.
func DeleteProgrammer(c *gin.Context) {
	id, ok := parseProgrammerID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid programmer ID",
		})
		return
	}

	// Check if programmer exists
	var programmer models.Programmer
	result := database.GetDB().First(&programmer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Programmer not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch programmer",
			})
		}
		return
	}

	result = database.GetDB().Delete(&programmer)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete programmer",
		})
		return
	}

	// Broadcast deletion
	evt := map[string]any{
		"type":     "programmer_deleted",
		"id":       programmer.ID,
		"nickname": programmer.Nickname,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(bytes)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Programmer deleted successfully",
		"id":      programmer.ID,
	})
}

// GetAvatarStats handles GET /api/stats
// Returns programmer counts grouped by avatar number.
func GetAvatarStats(c *gin.Context) {
	db := database.GetDB()

	type row struct {
		AvatarNumber int   `json:"avatarNumber"`
		Count        int64 `json:"count"`
	}

	rows := make([]row, 0)
	if err := db.Model(&models.Programmer{}).
		Select("avatar_number, COUNT(*) as count").
		Group("avatar_number").
		Order("avatar_number asc").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var total int64 = 0
	for _, r := range rows {
		total += r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"avatars": rows,
		"total":   total,
	})
}
