package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

const arbeitnowBase = "https://www.arbeitnow.com/api/job-board-api"

// ArbeitnowSource fetches listings from the Arbeitnow job board API,
// a second source with a different JSON shape.
type ArbeitnowSource struct {
	BaseURL string
	Client  *http.Client
}

func NewArbeitnowSource() *ArbeitnowSource {
	return &ArbeitnowSource{
		BaseURL: arbeitnowBase,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ArbeitnowSource) Name() string { return "Arbeitnow" }

type arbeitnowResponse struct {
	Data []struct {
		Slug        string   `json:"slug"`
		Title       string   `json:"title"`
		CompanyName string   `json:"company_name"`
		Location    string   `json:"location"`
		Remote      bool     `json:"remote"`
		Tags        []string `json:"tags"`
		Description string   `json:"description"`
		URL         string   `json:"url"`
		CreatedAt   int64    `json:"created_at"`
	} `json:"data"`
}

func (s *ArbeitnowSource) FetchJobs(ctx context.Context) ([]models.SourceJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow: request: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arbeitnow: status %d", resp.StatusCode)
	}

	var ar arbeitnowResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("arbeitnow: decode: %w", err)
	}

	now := time.Now().UTC()
	out := make([]models.SourceJob, 0, len(ar.Data))
	for idx, job := range ar.Data {
		id := job.Slug
		if id == "" {
			id = fmt.Sprintf("%d", idx)
		}

		desc := StripHTML(job.Description)

		// tags count toward internship detection here
		jobType := classifyType(job.Title, desc)
		if jobType != models.JobTypeInternship {
			for _, tag := range job.Tags {
				if internRe.MatchString(tag) {
					jobType = models.JobTypeInternship
					break
				}
			}
		}

		location := job.Location
		if location == "" {
			if job.Remote {
				location = "Remote"
			} else {
				location = "Not specified"
			}
		}

		published := now.Format(time.RFC3339)
		if job.CreatedAt > 0 {
			published = time.Unix(job.CreatedAt, 0).UTC().Format(time.RFC3339)
		}

		out = append(out, models.SourceJob{
			ID:            "arbeitnow-" + id,
			Title:         orDefault(job.Title, untitledPosition),
			Company:       orDefault(job.CompanyName, companyNotSpecified),
			Location:      location,
			Type:          jobType,
			Description:   orDefault(desc, noDescription),
			ApplyURL:      orDefault(job.URL, applyURLSentinel),
			SourceName:    s.Name(),
			PublishedDate: published,
		})
	}
	return out, nil
}
