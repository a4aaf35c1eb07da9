package models

// SourceJob is the raw-ish form a source adapter produces before the
// aggregation pipeline has filtered or normalized it. Location is the
// free-text string exactly as the upstream API reported it; City is
// filled in later from the India whitelist.
type SourceJob struct {
	ID            string // source-local id prefixed with the source name
	Title         string
	Company       string
	Location      string
	Type          string // "Job" or "Internship"
	Description   string // already HTML-stripped and capped by the adapter
	ApplyURL      string
	SourceName    string
	PublishedDate string // RFC3339; adapter defaults to fetch time
}

// ExternalJob is the canonical, normalized record served to consumers.
// All external sources are mapped into this structure; it never contains
// raw HTML and its location has already passed the India filter.
type ExternalJob struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Company       string  `json:"company"`
	City          string  `json:"city"`
	Type          string  `json:"type"` // "Job" or "Internship"
	Description   string  `json:"description"`
	ApplyURL      string  `json:"applyUrl"`
	ApplyPlatform *string `json:"applyPlatform"` // nil unless the apply link is a known platform
	IsVerified    bool    `json:"isVerified"`
	Source        string  `json:"source"` // always "External"
	SourceName    string  `json:"sourceName"`
	PublishedDate string  `json:"publishedDate"`
}

const (
	JobTypeJob        = "Job"
	JobTypeInternship = "Internship"

	SourceExternal = "External"
	SourceInternal = "Internal"
)
