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

const jsearchBase = "https://jsearch.p.rapidapi.com"

// JSearchSource is the key-gated third source (JSearch via RapidAPI).
// Without an API key it contributes an empty result, deliberately and
// silently: that is a valid configuration, not an error.
type JSearchSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewJSearchSource(apiKey string) *JSearchSource {
	return &JSearchSource{
		BaseURL: jsearchBase,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *JSearchSource) Name() string { return "JSearch" }

type jsearchResponse struct {
	Data []struct {
		JobID                  string `json:"job_id"`
		JobTitle               string `json:"job_title"`
		EmployerName           string `json:"employer_name"`
		JobCity                string `json:"job_city"`
		JobCountry             string `json:"job_country"`
		JobDescription         string `json:"job_description"`
		JobApplyLink           string `json:"job_apply_link"`
		JobPostedAtDatetimeUTC string `json:"job_posted_at_datetime_utc"`
	} `json:"data"`
}

func (s *JSearchSource) FetchJobs(ctx context.Context) ([]models.SourceJob, error) {
	if s.APIKey == "" {
		return nil, nil
	}

	u := s.BaseURL + "/search?query=developer%20OR%20designer%20OR%20marketer&page=1&num_pages=3&employment_types=FULLTIME%2CINTERN"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", s.APIKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch: status %d", resp.StatusCode)
	}

	var jr jsearchResponse
	if err := json.Unmarshal(body, &jr); err != nil {
		return nil, fmt.Errorf("jsearch: decode: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]models.SourceJob, 0, len(jr.Data))
	for _, job := range jr.Data {
		location := job.JobCity
		if location == "" {
			location = job.JobCountry
		}
		desc := StripHTML(job.JobDescription)
		out = append(out, models.SourceJob{
			ID:            "jsearch-" + job.JobID,
			Title:         orDefault(job.JobTitle, untitledPosition),
			Company:       orDefault(job.EmployerName, companyNotSpecified),
			Location:      orDefault(location, "Remote"),
			Type:          classifyType(job.JobTitle, desc),
			Description:   orDefault(desc, noDescription),
			ApplyURL:      orDefault(job.JobApplyLink, applyURLSentinel),
			SourceName:    s.Name(),
			PublishedDate: orDefault(job.JobPostedAtDatetimeUTC, now),
		})
	}
	return out, nil
}
