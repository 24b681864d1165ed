package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
	"gorm.io/gorm"
)

// Handlers bundles every resource handler the API serves.
type Handlers struct {
	Company      *CompanyHandler
	JobOpening   *JobOpeningHandler
	Application  *JobApplicationHandler
	Interview    *InterviewHandler
	Offer        *OfferHandler
	User         *UserHandler
	Notification *NotificationHandler
	Report       *ReportHandler
}

// New wires handlers to services over db. llm and mail may be disabled.
func New(db *gorm.DB, llm *services.LLMService, mail *services.MailService) *Handlers {
	return &Handlers{
		Company:      NewCompanyHandler(services.NewCompanyService(db)),
		JobOpening:   NewJobOpeningHandler(llm, services.NewJobOpeningService(db)),
		Application:  NewJobApplicationHandler(services.NewJobApplicationService(db)),
		Interview:    NewInterviewHandler(services.NewInterviewService(db)),
		Offer:        NewOfferHandler(services.NewOfferService(db)),
		User:         NewUserHandler(services.NewUserService(db)),
		Notification: NewNotificationHandler(services.NewNotificationService(db, mail)),
		Report:       NewReportHandler(services.NewReportService(db)),
	}
}

// Register mounts every route on api, normally the /api group.
func (h *Handlers) Register(api *gin.RouterGroup) {
	company := api.Group("/" + views.Companies)
	{
		company.GET("", h.Company.List)
		company.POST("", h.Company.Create)
		company.GET("/:id", h.Company.Get)
		company.PUT("/:id", h.Company.Update)
		company.DELETE("/:id", h.Company.Delete)
	}

	openings := api.Group("/" + views.JobOpenings)
	{
		openings.GET("", h.JobOpening.List)
		openings.POST("", h.JobOpening.Create)
		openings.POST("/extract", h.JobOpening.Extract)
		openings.GET("/status/:status", h.JobOpening.ListByStatus)
		openings.GET("/:id", h.JobOpening.Get)
		openings.PUT("/:id", h.JobOpening.Update)
		openings.PUT("/:id/status", h.JobOpening.UpdateStatus)
		openings.DELETE("/:id", h.JobOpening.Delete)
	}

	apps := api.Group("/" + views.JobApplications)
	{
		apps.GET("", h.Application.List)
		apps.POST("", h.Application.Create)
		apps.GET("/pipeline", h.Application.Pipeline)
		apps.GET("/job/:jobId", h.Application.ListByJob)
		apps.GET("/student/:studentId", h.Application.ListByStudent)
		apps.GET("/:id", h.Application.Get)
		apps.PUT("/:id", h.Application.Update)
		apps.PUT("/:id/status", h.Application.UpdateStatus)
		apps.DELETE("/:id", h.Application.Delete)
	}

	interviews := api.Group("/" + views.InterviewSchedules)
	{
		interviews.GET("", h.Interview.List)
		interviews.POST("", h.Interview.Create)
		interviews.GET("/student/:studentId", h.Interview.ListForStudent)
		interviews.GET("/:id", h.Interview.Get)
		interviews.PUT("/:id", h.Interview.Update)
		interviews.DELETE("/:id", h.Interview.Delete)
	}

	offers := api.Group("/" + views.JobOffers)
	{
		offers.GET("", h.Offer.List)
		offers.POST("", h.Offer.Create)
		offers.GET("/:id", h.Offer.Get)
		offers.PUT("/:id", h.Offer.Update)
		offers.PUT("/:id/status", h.Offer.UpdateStatus)
		offers.DELETE("/:id", h.Offer.Delete)
	}

	users := api.Group("/" + views.Users)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.DELETE("/:id", h.User.Delete)
	}

	notes := api.Group("/" + views.Notifications)
	{
		notes.GET("", h.Notification.List)
		notes.POST("", h.Notification.Create)
		notes.GET("/user/:userId", h.Notification.ListForUser)
		notes.PUT("/:id/read", h.Notification.MarkRead)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/companies", h.Report.Companies)
	}
}
