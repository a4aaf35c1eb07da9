package companies

import (
	"sort"
	"strings"

	"github.com/Sahil9505/JobFinder/internal/external"
	"github.com/Sahil9505/JobFinder/pkg/models"
)

// mergedJob is the origin-neutral shape both internal and external jobs
// collapse into before company matching.
type mergedJob struct {
	ID            string
	Title         string
	Company       string
	Location      string // raw location, used for the India filter
	City          string
	Type          string
	ApplyPlatform *string
	ApplyURL      string
	Source        string // "Internal" or "External"
}

// merge flattens internal and external jobs into one list tagged by
// origin, keeping only entries whose location passes the India filter.
func merge(internal []models.Job, externalJobs []models.ExternalJob) []mergedJob {
	out := make([]mergedJob, 0, len(internal)+len(externalJobs))

	for _, j := range internal {
		loc := j.City
		if loc == "" {
			loc = j.Location
		}
		if !external.IsIndiaLocation(loc) {
			continue
		}
		var platform *string
		if j.Platform != "" {
			p := j.Platform
			platform = &p
		}
		out = append(out, mergedJob{
			ID:            j.ID,
			Title:         j.Title,
			Company:       orUnknown(j.Company),
			Location:      loc,
			City:          external.NormalizeCity(loc),
			Type:          j.Type,
			ApplyPlatform: platform,
			ApplyURL:      j.ApplyURL,
			Source:        models.SourceInternal,
		})
	}

	for _, j := range externalJobs {
		// external jobs are already India-filtered; re-check anyway since
		// the same predicate must hold for every merged entry
		if !external.IsIndiaLocation(j.City) {
			continue
		}
		out = append(out, mergedJob{
			ID:            j.ID,
			Title:         j.Title,
			Company:       orUnknown(j.Company),
			Location:      j.City,
			City:          external.NormalizeCity(j.City),
			Type:          j.Type,
			ApplyPlatform: j.ApplyPlatform,
			ApplyURL:      j.ApplyURL,
			Source:        models.SourceExternal,
		})
	}

	return out
}

// Aggregate computes the per-company summaries for every whitelist entry
// with at least one matching India job, sorted by descending job count.
func Aggregate(internal []models.Job, externalJobs []models.ExternalJob) []models.CompanyAggregate {
	indiaJobs := merge(internal, externalJobs)

	out := make([]models.CompanyAggregate, 0, len(Whitelist))
	for _, comp := range Whitelist {
		matches := matchCompany(indiaJobs, comp.Name)
		if len(matches) == 0 {
			continue
		}

		out = append(out, models.CompanyAggregate{
			ID:         Slug(comp.Name),
			Name:       comp.Name,
			Industry:   comp.Industry,
			City:       pluralityCity(matches),
			Country:    "India",
			TotalJobs:  len(matches),
			Logo:       comp.Logo,
			IsVerified: comp.IsVerified,
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].TotalJobs > out[k].TotalJobs
	})
	return out
}

// JobsForCompany returns the merged India-only jobs matching one
// whitelist entry, in merged order.
func JobsForCompany(comp models.CompanyInfo, internal []models.Job, externalJobs []models.ExternalJob) []models.CompanyJob {
	matches := matchCompany(merge(internal, externalJobs), comp.Name)

	out := make([]models.CompanyJob, 0, len(matches))
	for _, j := range matches {
		platform := j.ApplyPlatform
		if platform == nil && j.Source == models.SourceInternal {
			p := models.SourceInternal
			platform = &p
		}
		out = append(out, models.CompanyJob{
			ID:            j.ID,
			Title:         j.Title,
			Company:       j.Company,
			City:          j.City,
			Type:          j.Type,
			ApplyPlatform: platform,
			ApplyURL:      j.ApplyURL,
			Source:        j.Source,
		})
	}
	return out
}

// matchCompany filters by case-insensitive substring match on the
// company name.
func matchCompany(jobs []mergedJob, name string) []mergedJob {
	needle := strings.ToLower(name)
	var matches []mergedJob
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Company), needle) {
			matches = append(matches, j)
		}
	}
	return matches
}

// pluralityCity picks the most frequent normalized city among a
// company's matches. Ties break toward the city whose count was reached
// first (stable sort over first-appearance order).
func pluralityCity(jobs []mergedJob) string {
	counts := make(map[string]int)
	var order []string
	for _, j := range jobs {
		city := j.City
		if city == "" {
			city = "Remote India"
		}
		if counts[city] == 0 {
			order = append(order, city)
		}
		counts[city]++
	}
	if len(order) == 0 {
		return "Remote India"
	}

	sort.SliceStable(order, func(i, k int) bool {
		return counts[order[i]] > counts[order[k]]
	})
	return order[0]
}

func orUnknown(company string) string {
	if company == "" {
		return "Unknown Company"
	}
	return company
}
