package models

// User roles.
const (
	RoleAdmin            = "ADMIN"
	RoleHR               = "HR"
	RolePlacementOfficer = "PLACEMENT_OFFICER"
	RoleStudent          = "STUDENT"
)

// Job opening statuses.
const (
	OpeningOpen      = "OPEN"
	OpeningClosed    = "CLOSED"
	OpeningDraft     = "DRAFT"
	OpeningFilled    = "FILLED"
	OpeningExpired   = "EXPIRED"
	OpeningCancelled = "CANCELLED"
)

// Job application statuses, in pipeline order.
const (
	ApplicationApplied            = "APPLIED"
	ApplicationUnderReview        = "UNDER_REVIEW"
	ApplicationShortlisted        = "SHORTLISTED"
	ApplicationInterviewScheduled = "INTERVIEW_SCHEDULED"
	ApplicationSelected           = "SELECTED"
	ApplicationRejected           = "REJECTED"
	ApplicationWithdrawn          = "WITHDRAWN"
)

// Interview statuses.
const (
	InterviewScheduled = "SCHEDULED"
	InterviewCompleted = "COMPLETED"
	InterviewCancelled = "CANCELLED"
)

// Offer statuses.
const (
	OfferPending    = "PENDING"
	OfferAccepted   = "ACCEPTED"
	OfferRejected   = "REJECTED"
	OfferOnboarding = "ONBOARDING"
	OfferOnboarded  = "ONBOARDED"
)

var (
	Roles             = []string{RoleAdmin, RoleHR, RolePlacementOfficer, RoleStudent}
	OpeningStatuses   = []string{OpeningOpen, OpeningClosed, OpeningDraft, OpeningFilled, OpeningExpired, OpeningCancelled}
	InterviewStatuses = []string{InterviewScheduled, InterviewCompleted, InterviewCancelled}
	OfferStatuses     = []string{OfferPending, OfferAccepted, OfferRejected, OfferOnboarding, OfferOnboarded}
)

// ApplicationStatuses doubles as the column order of the hiring pipeline.
var ApplicationStatuses = []string{
	ApplicationApplied, ApplicationUnderReview, ApplicationShortlisted,
	ApplicationInterviewScheduled, ApplicationSelected, ApplicationRejected, ApplicationWithdrawn,
}
