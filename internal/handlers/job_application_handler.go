package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
)

type JobApplicationHandler struct {
	ApplicationService *services.JobApplicationService
}

func NewJobApplicationHandler(s *services.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{ApplicationService: s}
}

func (h *JobApplicationHandler) List(c *gin.Context) {
	apps, err := h.ApplicationService.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list job applications", err)
		return
	}
	respondList(c, views.JobApplications, apps)
}

// ListByJob is the GET /job-applications/job/:jobId endpoint
func (h *JobApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return
	}
	apps, err := h.ApplicationService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, "Failed to list job applications", err)
		return
	}
	respondList(c, views.JobApplications, apps)
}

// ListByStudent is the GET /job-applications/student/:studentId endpoint
func (h *JobApplicationHandler) ListByStudent(c *gin.Context) {
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	apps, err := h.ApplicationService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, "Failed to list job applications", err)
		return
	}
	respondList(c, views.JobApplications, apps)
}

// Pipeline is the GET /job-applications/pipeline endpoint. ?job= narrows
// the board to one opening; a Company-ID header narrows it to the
// company's openings.
func (h *JobApplicationHandler) Pipeline(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		apps []models.JobApplication
		err  error
	)
	if job := c.Query("job"); job != "" {
		jobID, perr := strconv.ParseUint(job, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job: " + job})
			return
		}
		apps, err = h.ApplicationService.ListByJob(ctx, uint(jobID))
	} else {
		apps, err = h.ApplicationService.List(ctx)
	}
	if err != nil {
		respondError(c, "Failed to build pipeline", err)
		return
	}

	if companyID := c.GetString("companyID"); companyID != "" {
		scoped := apps[:0:0]
		for _, a := range apps {
			if strconv.FormatUint(uint64(a.JobOpening.CompanyID), 10) == companyID {
				scoped = append(scoped, a)
			}
		}
		apps = scoped
	}
	c.JSON(http.StatusOK, services.BuildPipeline(apps))
}

func (h *JobApplicationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	app, err := h.ApplicationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get job application", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *JobApplicationHandler) Create(c *gin.Context) {
	var req dtos.JobApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.ApplicationService.Apply(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to apply", err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *JobApplicationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.JobApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.ApplicationService.UpdateApplication(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, "Failed to update job application", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *JobApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		respondError(c, "Failed to update job application status", err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *JobApplicationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.ApplicationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete job application", err)
		return
	}
	c.Status(http.StatusNoContent)
}
