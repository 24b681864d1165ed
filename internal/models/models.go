package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Role       string `gorm:"not null;index" json:"role"`
	Department string `json:"department,omitempty"`
	// HR users belong to the company they recruit for.
	CompanyID *uint    `json:"companyId,omitempty"`
	Company   *Company `json:"company,omitempty"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`
	WebsiteURL  string `json:"websiteUrl"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `json:"logoUrl"`
	CompanyType string `json:"companyType"`
	HRName      string `json:"hrName"`

	// 'omitempty' keeps Company -> JobOpenings -> Company from looping.
	JobOpenings []JobOpening `json:"jobOpenings,omitempty"`
}

type JobOpening struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint `gorm:"index" json:"companyId"`
	// Association: needs Preload("Company")
	Company Company `json:"company"`

	Title               string     `gorm:"not null" json:"title"`
	Description         string     `gorm:"type:text" json:"description"`
	Location            string     `json:"location"`
	EligibilityCriteria string     `gorm:"type:text" json:"eligibilityCriteria"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	SalaryLPA           float64    `gorm:"not null" json:"salaryLPA"`
	Status              string     `gorm:"default:'DRAFT';index" json:"status"`
}

type JobApplication struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StudentID    uint       `gorm:"not null;index" json:"studentId"`
	Student      User       `json:"student"`
	JobOpeningID uint       `gorm:"not null;index" json:"jobOpeningId"`
	JobOpening   JobOpening `json:"jobOpening"`

	ResumeLink string    `gorm:"not null" json:"resumeLink"`
	Status     string    `gorm:"default:'APPLIED';index" json:"status"`
	AppliedAt  time.Time `json:"appliedAt"`
	Feedback   string    `gorm:"type:text" json:"feedback"`
}

type InterviewSchedule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobApplicationID uint           `gorm:"not null;index" json:"jobApplicationId"`
	JobApplication   JobApplication `json:"jobApplication"`

	InterviewDateTime time.Time `json:"interviewDateTime"`
	InterviewerName   string    `json:"interviewerName"`
	Location          string    `json:"location"`
	Status            string    `gorm:"default:'SCHEDULED'" json:"status"`
	Feedback          string    `gorm:"type:text" json:"feedback"`
}

type JobOffer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One offer per application.
	JobApplicationID uint           `gorm:"not null;uniqueIndex" json:"jobApplicationId"`
	JobApplication   JobApplication `json:"jobApplication"`

	OfferDate      time.Time  `gorm:"not null" json:"offerDate"`
	Salary         float64    `gorm:"not null" json:"salary"`
	Status         string     `gorm:"default:'PENDING';index" json:"status"`
	JoiningDate    *time.Time `json:"joiningDate"`
	OfferLetterURL string     `json:"offerLetterUrl"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID   uint  `gorm:"not null;index" json:"userId"`
	User     User  `json:"-"`
	SenderID *uint `json:"senderId,omitempty"`

	Title      string `json:"title"`
	Message    string `gorm:"size:1000" json:"message"`
	ReadStatus bool   `gorm:"default:false" json:"readStatus"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &Company{}, &JobOpening{}, &JobApplication{},
		&InterviewSchedule{}, &JobOffer{}, &Notification{},
	}
}
