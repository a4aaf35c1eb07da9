package models

import "time"

const (
	ApplicationApplied   = "Applied"
	ApplicationCancelled = "Cancelled"
)

// Application is a user's application to an internal job, including the
// applicant form fields and the stored resume path.
type Application struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	JobID       string    `json:"jobId"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	College     string    `json:"college,omitempty"`
	Degree      string    `json:"degree,omitempty"`
	CurrentYear string    `json:"currentYear,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	Message     string    `json:"message,omitempty"`
	ResumeURL   string    `json:"resumeUrl,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"appliedAt"`

	// Joined job fields for listing views.
	JobTitle    string `json:"jobTitle,omitempty"`
	JobCompany  string `json:"jobCompany,omitempty"`
	JobLocation string `json:"jobLocation,omitempty"`
	JobTypeName string `json:"jobType,omitempty"`
}
