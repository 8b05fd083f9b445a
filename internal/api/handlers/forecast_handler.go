package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/supplylens/supplylens/internal/service"
)

type ForecastHandler struct {
	service *service.ForecastService
}

func NewForecastHandler(service *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// GetSummary returns the summary of the latest forecast run.
func (h *ForecastHandler) GetSummary(c *gin.Context) {
	summary, ok, err := h.service.Summary(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to read forecast summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read forecast summary"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no forecast run available yet"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetRef returns the latest output row and weekly shortfall series for one
// entity.
func (h *ForecastHandler) GetRef(c *gin.Context) {
	ref := c.Param("ref")

	row, missed, ok := h.service.RefDetail(ref)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown ref or no forecast run available yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ref":          ref,
		"row":          row,
		"sales_missed": missed,
	})
}

// RunForecast triggers a full forecast run and returns its summary.
func (h *ForecastHandler) RunForecast(c *gin.Context) {
	summary, err := h.service.Run(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("forecast run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "forecast run failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
