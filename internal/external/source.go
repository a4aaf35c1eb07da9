package external

import (
	"context"
	"regexp"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

// Source is implemented by each upstream job-listing API. Each source is
// responsible for fetching its own data format and mapping it into
// SourceJob. A source may return an error; the aggregator tolerates it
// and keeps the other sources' results.
type Source interface {
	Name() string
	FetchJobs(ctx context.Context) ([]models.SourceJob, error)
}

// FetchResult records what one source contributed to an aggregation
// cycle, so per-source success is a visible value rather than a side
// effect in the logs.
type FetchResult struct {
	Source string
	Jobs   []models.SourceJob
	Err    error
}

var internRe = regexp.MustCompile(`(?i)intern`)

// classifyType derives the Job/Internship enum by keyword match on the
// title and description.
func classifyType(title, description string) string {
	if internRe.MatchString(title) || internRe.MatchString(description) {
		return models.JobTypeInternship
	}
	return models.JobTypeJob
}

// placeholder defaults for sources that omit fields
const (
	untitledPosition    = "Untitled Position"
	companyNotSpecified = "Company Not Specified"
	noDescription       = "No description available"
	applyURLSentinel    = "#"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
