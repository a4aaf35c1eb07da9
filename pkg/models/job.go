package models

import "time"

// Job is a platform-authored posting as stored in the jobs table.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	City             string    `json:"city,omitempty"`
	Country          string    `json:"country"`
	Type             string    `json:"type"`      // "Job" or "Internship"
	JobType          string    `json:"jobType"`   // "Internal" or "Platform"
	ApplyType        string    `json:"applyType"` // "internal" or "external"
	ApplyURL         string    `json:"applyUrl,omitempty"`
	Platform         string    `json:"platform,omitempty"`
	IsVerified       bool      `json:"isVerified"`
	Description      string    `json:"description"`
	Salary           string    `json:"salary,omitempty"`
	Stipend          string    `json:"stipend,omitempty"`
	Skills           []string  `json:"skills"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Perks            []string  `json:"perks,omitempty"`
	Eligibility      string    `json:"eligibility,omitempty"`
	AboutCompany     string    `json:"aboutCompany,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
