package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/services"
)

type ReportHandler struct {
	ReportService *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{ReportService: s}
}

// Summary is the GET /reports/summary endpoint
func (h *ReportHandler) Summary(c *gin.Context) {
	sum, err := h.ReportService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to build summary", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// Companies is the GET /reports/companies endpoint
func (h *ReportHandler) Companies(c *gin.Context) {
	rows, err := h.ReportService.Companies(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to build company report", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
