package dtos

import (
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/placement-portal/internal/models"
)

type JobExtractionRequest struct {
	RawHTML string `json:"rawHtml" binding:"required"`
	URL     string `json:"url"`
}

type CompanyRequest struct {
	Name string `json:"name" binding:"required"`

	// Optional Fields
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`
	WebsiteURL  string `json:"websiteUrl"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	CompanyType string `json:"companyType"`
	HRName      string `json:"hrName"`
}

func (r *CompanyRequest) Apply(c *models.Company) {
	c.Name = strings.TrimSpace(r.Name)
	c.Industry = r.Industry
	c.Location = r.Location
	c.ContactInfo = r.ContactInfo
	c.WebsiteURL = r.WebsiteURL
	c.Description = r.Description
	c.LogoURL = r.LogoURL
	c.CompanyType = r.CompanyType
	c.HRName = r.HRName
}

type JobOpeningRequest struct {
	CompanyID uint    `json:"companyId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	SalaryLPA float64 `json:"salaryLPA" binding:"gte=0"`

	// Optional Fields
	Description         string `json:"description"`
	Location            string `json:"location"`
	EligibilityCriteria string `json:"eligibilityCriteria"`
	ApplicationDeadline string `json:"applicationDeadline"` // "2006-01-02" or RFC 3339
	Status              string `json:"status"`              // Defaults to "DRAFT" if empty
}

func (r *JobOpeningRequest) Apply(o *models.JobOpening) error {
	deadline, err := ParseTime(r.ApplicationDeadline)
	if err != nil {
		return fmt.Errorf("applicationDeadline: %w", err)
	}
	o.CompanyID = r.CompanyID
	o.Title = strings.TrimSpace(r.Title)
	o.SalaryLPA = r.SalaryLPA
	o.Description = r.Description
	o.Location = r.Location
	o.EligibilityCriteria = r.EligibilityCriteria
	o.ApplicationDeadline = deadline
	if r.Status != "" {
		o.Status = r.Status
	}
	return nil
}

type JobApplicationRequest struct {
	StudentID    uint   `json:"studentId" binding:"required"`
	JobOpeningID uint   `json:"jobOpeningId" binding:"required"`
	ResumeLink   string `json:"resumeLink" binding:"required"`
	Feedback     string `json:"feedback"`
}

func (r *JobApplicationRequest) Apply(a *models.JobApplication) {
	a.StudentID = r.StudentID
	a.JobOpeningID = r.JobOpeningID
	a.ResumeLink = r.ResumeLink
	a.Feedback = r.Feedback
}

type InterviewRequest struct {
	JobApplicationID  uint   `json:"jobApplicationId" binding:"required"`
	InterviewDateTime string `json:"interviewDateTime" binding:"required"`

	// Optional Fields
	InterviewerName string `json:"interviewerName"`
	Location        string `json:"location"`
	Status          string `json:"status"` // Defaults to "SCHEDULED" if empty
	Feedback        string `json:"feedback"`
}

func (r *InterviewRequest) Apply(i *models.InterviewSchedule) error {
	at, err := ParseTime(r.InterviewDateTime)
	if err != nil {
		return fmt.Errorf("interviewDateTime: %w", err)
	}
	if at == nil {
		return fmt.Errorf("interviewDateTime: %w", ErrMissingTime)
	}
	i.JobApplicationID = r.JobApplicationID
	i.InterviewDateTime = *at
	i.InterviewerName = r.InterviewerName
	i.Location = r.Location
	i.Feedback = r.Feedback
	if r.Status != "" {
		i.Status = r.Status
	}
	return nil
}

type JobOfferRequest struct {
	JobApplicationID uint    `json:"jobApplicationId" binding:"required"`
	Salary           float64 `json:"salary" binding:"required,gt=0"`

	// Optional Fields
	OfferDate      string `json:"offerDate"` // Defaults to today
	JoiningDate    string `json:"joiningDate"`
	Status         string `json:"status"`
	OfferLetterURL string `json:"offerLetterUrl"`
}

func (r *JobOfferRequest) Apply(o *models.JobOffer, now time.Time) error {
	offerDate, err := ParseTime(r.OfferDate)
	if err != nil {
		return fmt.Errorf("offerDate: %w", err)
	}
	joining, err := ParseTime(r.JoiningDate)
	if err != nil {
		return fmt.Errorf("joiningDate: %w", err)
	}
	if offerDate == nil {
		today := now.Truncate(24 * time.Hour)
		offerDate = &today
	}
	o.JobApplicationID = r.JobApplicationID
	o.Salary = r.Salary
	o.OfferDate = *offerDate
	o.JoiningDate = joining
	o.OfferLetterURL = r.OfferLetterURL
	if r.Status != "" {
		o.Status = r.Status
	}
	return nil
}

type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`

	// Optional Fields
	Department string `json:"department"`
	CompanyID  *uint  `json:"companyId"`
}

func (r *UserRequest) Apply(u *models.User) {
	u.Name = strings.TrimSpace(r.Name)
	u.Email = strings.ToLower(strings.TrimSpace(r.Email))
	u.Role = strings.ToUpper(r.Role)
	u.Department = r.Department
	u.CompanyID = r.CompanyID
}

type NotificationRequest struct {
	UserID   uint   `json:"userId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"max=1000"`
	SenderID *uint  `json:"senderId"`
}

func (r *NotificationRequest) Apply(n *models.Notification) {
	n.UserID = r.UserID
	n.Title = r.Title
	n.Message = r.Message
	n.SenderID = r.SenderID
}
