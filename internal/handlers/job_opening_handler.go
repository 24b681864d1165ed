package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

// JobOpeningHandler also owns LLM extraction, which prefills the opening
// form from a pasted posting.
type JobOpeningHandler struct {
	LLMService     *services.LLMService
	OpeningService *services.JobOpeningService
}

func NewJobOpeningHandler(llm *services.LLMService, o *services.JobOpeningService) *JobOpeningHandler {
	return &JobOpeningHandler{LLMService: llm, OpeningService: o}
}

// Extract is the POST /job-openings/extract endpoint
func (h *JobOpeningHandler) Extract(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if !bindJSON(c, &req) {
		return
	}
	extractedJSON, err := h.LLMService.ExtractJobOpening(c.Request.Context(), req.RawHTML)
	if err != nil {
		respondError(c, "AI Extraction failed", err)
		return
	}
	if !json.Valid([]byte(extractedJSON)) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Extraction returned invalid JSON"})
		return
	}

	// RawMessage keeps the model's JSON from being re-escaped as a string.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

func (h *JobOpeningHandler) List(c *gin.Context) {
	openings, err := h.OpeningService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list job openings", err)
		return
	}
	respondList(c, views.JobOpenings, openings)
}

// ListByStatus is the GET /job-openings/status/:status endpoint
func (h *JobOpeningHandler) ListByStatus(c *gin.Context) {
	openings, err := h.OpeningService.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, "Failed to list job openings", err)
		return
	}
	respondList(c, views.JobOpenings, openings)
}

func (h *JobOpeningHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	opening, err := h.OpeningService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get job opening", err)
		return
	}
	c.JSON(http.StatusOK, opening)
}

func (h *JobOpeningHandler) Create(c *gin.Context) {
	var req dtos.JobOpeningRequest
	if !bindJSON(c, &req) {
		return
	}
	opening, err := h.OpeningService.CreateOpening(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create job opening", err)
		return
	}
	c.JSON(http.StatusCreated, opening)
}

func (h *JobOpeningHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.JobOpeningRequest
	if !bindJSON(c, &req) {
		return
	}
	opening, err := h.OpeningService.UpdateOpening(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update job opening", err)
		return
	}
	c.JSON(http.StatusOK, opening)
}

// UpdateStatus is the PUT /job-openings/:id/status?status= endpoint
func (h *JobOpeningHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	opening, err := h.OpeningService.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		respondError(c, "Failed to update job opening status", err)
		return
	}
	c.JSON(http.StatusOK, opening)
}

func (h *JobOpeningHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.OpeningService.DeleteOpening(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete job opening", err)
		return
	}
	c.Status(http.StatusNoContent)
}
