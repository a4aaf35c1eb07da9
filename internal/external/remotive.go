package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

const remotiveBase = "https://remotive.com/api"

// remotiveCategories widen result diversity; each one is a separate
// request against the same endpoint.
var remotiveCategories = []string{
	"software-dev", "design", "marketing", "sales", "product", "data", "business",
}

// RemotiveSource fetches remote job listings from the Remotive public API.
type RemotiveSource struct {
	BaseURL    string
	Client     *http.Client
	Categories []string
	Limit      int // items per category request
}

func NewRemotiveSource() *RemotiveSource {
	return &RemotiveSource{
		BaseURL:    remotiveBase,
		Client:     &http.Client{Timeout: 15 * time.Second},
		Categories: remotiveCategories,
		Limit:      50,
	}
}

func (s *RemotiveSource) Name() string { return "Remotive" }

type remotiveResponse struct {
	Jobs []struct {
		ID                        int64  `json:"id"`
		Title                     string `json:"title"`
		CompanyName               string `json:"company_name"`
		CandidateRequiredLocation string `json:"candidate_required_location"`
		Description               string `json:"description"`
		URL                       string `json:"url"`
		PublicationDate           string `json:"publication_date"`
	} `json:"jobs"`
}

// FetchJobs requests every category concurrently and merges the results,
// deduplicating by source-local id. A failing category is logged and
// contributes nothing; FetchJobs errors only when it could not produce
// any result at all.
func (s *RemotiveSource) FetchJobs(ctx context.Context) ([]models.SourceJob, error) {
	var (
		mu       sync.Mutex
		all      []models.SourceJob
		seen     = make(map[string]struct{})
		failures int
		wg       sync.WaitGroup
	)

	for _, category := range s.Categories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()

			jobs, err := s.fetchCategory(ctx, category)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[external] remotive category %s: %v", category, err)
				failures++
				return
			}
			for _, j := range jobs {
				if _, dup := seen[j.ID]; dup {
					continue
				}
				seen[j.ID] = struct{}{}
				all = append(all, j)
			}
		}(category)
	}
	wg.Wait()

	if failures == len(s.Categories) {
		return nil, fmt.Errorf("remotive: all %d category requests failed", failures)
	}
	return all, nil
}

func (s *RemotiveSource) fetchCategory(ctx context.Context, category string) ([]models.SourceJob, error) {
	u, err := url.Parse(s.BaseURL + "/remote-jobs")
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("limit", fmt.Sprintf("%d", s.Limit))
	q.Set("category", category)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var rr remotiveResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	out := make([]models.SourceJob, 0, len(rr.Jobs))
	for _, job := range rr.Jobs {
		desc := StripHTML(job.Description)
		out = append(out, models.SourceJob{
			ID:            fmt.Sprintf("remotive-%d", job.ID),
			Title:         orDefault(job.Title, untitledPosition),
			Company:       orDefault(job.CompanyName, companyNotSpecified),
			Location:      orDefault(job.CandidateRequiredLocation, "Remote"),
			Type:          classifyType(job.Title, desc),
			Description:   orDefault(desc, noDescription),
			ApplyURL:      orDefault(job.URL, applyURLSentinel),
			SourceName:    s.Name(),
			PublishedDate: orDefault(job.PublicationDate, now),
		})
	}
	return out, nil
}
