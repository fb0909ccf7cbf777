package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
	"immo-assistant/internal/service"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	engine *service.Engine
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(engine *service.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// Register mounts the search routes on api
func (h *SearchHandler) Register(api *gin.RouterGroup) {
	api.POST("/search/parse", h.Parse)
}

// Parse handles POST /api/v1/search/parse
func (h *SearchHandler) Parse(c *gin.Context) {
	var req model.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var prior model.SearchFilters
	if req.Filters != nil {
		prior = *req.Filters
		// form controls send display labels such as "🏊 Piscine"
		prior.Amenities = lexicon.NormalizeAmenities(req.Filters.Amenities)
	}

	filters, facts := h.engine.ParseQueryFacts(req.Query, prior)

	c.JSON(http.StatusOK, model.ParseResponse{
		Filters: filters,
		Facts:   facts,
	})
}
