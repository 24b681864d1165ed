package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type InterviewHandler struct {
	InterviewService *services.InterviewService
}

func NewInterviewHandler(s *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{InterviewService: s}
}

func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.InterviewService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list interviews", err)
		return
	}
	respondList(c, views.InterviewSchedules, interviews)
}

// ListForStudent is the GET /interview-schedules/student/:studentId endpoint
func (h *InterviewHandler) ListForStudent(c *gin.Context) {
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	interviews, err := h.InterviewService.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, "Failed to list interviews", err)
		return
	}
	respondList(c, views.InterviewSchedules, interviews)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	interview, err := h.InterviewService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get interview", err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Create(c *gin.Context) {
	var req dtos.InterviewRequest
	if !bindJSON(c, &req) {
		return
	}
	interview, err := h.InterviewService.Schedule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to schedule interview", err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.InterviewRequest
	if !bindJSON(c, &req) {
		return
	}
	interview, err := h.InterviewService.UpdateInterview(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update interview", err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.InterviewService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete interview", err)
		return
	}
	c.Status(http.StatusNoContent)
}
