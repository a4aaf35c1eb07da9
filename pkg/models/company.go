package models

// CompanyInfo is one entry of the static whitelist of Indian companies.
type CompanyInfo struct {
	Name       string `json:"name"`
	Industry   string `json:"industry"`
	Logo       string `json:"logo"`
	IsVerified bool   `json:"isVerified"`
}

// CompanyAggregate is the per-company summary computed on each request by
// joining the whitelist against current internal + external jobs. It is
// never persisted.
type CompanyAggregate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Industry   string `json:"industry"`
	City       string `json:"city"`
	Country    string `json:"country"`
	TotalJobs  int    `json:"totalJobs"`
	Logo       string `json:"logo,omitempty"`
	IsVerified bool   `json:"isVerified"`
}

// CompanyJob is the trimmed job shape returned by the per-company jobs
// endpoint, covering both internal and external origins.
type CompanyJob struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Company       string  `json:"company"`
	City          string  `json:"city"`
	Type          string  `json:"type"`
	ApplyPlatform *string `json:"applyPlatform"`
	ApplyURL      string  `json:"applyUrl,omitempty"`
	Source        string  `json:"source"` // "Internal" or "External"
}
