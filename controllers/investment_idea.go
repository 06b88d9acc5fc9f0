// controllers/investment_idea.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"investment-ideas-api/models"
	"investment-ideas-api/services"
	"investment-ideas-api/utils"
)

// IdeaController exposes the idea service over HTTP. It is built with
// an explicit service handle rather than an ambient database.
type IdeaController struct {
	service *services.IdeaService
}

func NewIdeaController(service *services.IdeaService) *IdeaController {
	return &IdeaController{service: service}
}

// ListIdeas returns all ideas, or only those matching ?status=.
func (ctl *IdeaController) ListIdeas(c *gin.Context) {
	var (
		ideas []models.InvestmentIdea
		err   error
	)

	if status := c.Query("status"); status != "" {
		ideas, err = ctl.service.GetByStatus(models.InvestmentStatus(status))
	} else {
		ideas, err = ctl.service.GetAll()
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]models.InvestmentIdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		responses = append(responses, idea.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    responses,
		"count":   len(responses),
	})
}

// GetIdea returns a single idea by id.
func (ctl *IdeaController) GetIdea(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	idea, err := ctl.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    idea.ToResponse(),
	})
}

// CreateIdea stores a new idea. The title is trimmed here, before the
// service sees it; a title that is empty after trimming is rejected.
func (ctl *IdeaController) CreateIdea(c *gin.Context) {
	var req models.InvestmentIdeaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Title = utils.SanitizeInput(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title: is required"})
		return
	}

	idea, err := ctl.service.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    idea.ToResponse(),
	})
}

// UpdateIdea applies a partial update; absent fields keep their
// stored values.
func (ctl *IdeaController) UpdateIdea(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.InvestmentIdeaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		trimmed := utils.SanitizeInput(*req.Title)
		req.Title = &trimmed
	}

	idea, err := ctl.service.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    idea.ToResponse(),
	})
}

// DeleteIdea removes an idea permanently.
func (ctl *IdeaController) DeleteIdea(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := ctl.service.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Investment idea not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Investment idea deleted",
	})
}

// GetStatuses lists the valid lifecycle statuses for form dropdowns.
func (ctl *IdeaController) GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.AllStatuses(),
	})
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return 0, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Investment idea not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access investment ideas"})
	}
}
