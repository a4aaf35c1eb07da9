package external

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRemotiveTestServer(t *testing.T, handler http.HandlerFunc) *RemotiveSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &RemotiveSource{
		BaseURL:    srv.URL,
		Client:     &http.Client{Timeout: 5 * time.Second},
		Categories: []string{"software-dev", "data"},
		Limit:      5,
	}
}

func TestRemotiveFetchJobs(t *testing.T) {
	src := newRemotiveTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/remote-jobs", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		switch r.URL.Query().Get("category") {
		case "software-dev":
			fmt.Fprint(w, `{"jobs":[
				{"id":101,"title":"Go Developer","company_name":"Acme",
				 "candidate_required_location":"India",
				 "description":"<p>Build <b>APIs</b></p>",
				 "url":"https://acme.example/jobs/101",
				 "publication_date":"2026-08-20T10:00:00Z"},
				{"id":102,"title":"Data Intern","company_name":"",
				 "candidate_required_location":"",
				 "description":"","url":"","publication_date":""}
			]}`)
		case "data":
			// id 101 repeats across categories and must be deduplicated
			fmt.Fprint(w, `{"jobs":[
				{"id":101,"title":"Go Developer","company_name":"Acme",
				 "candidate_required_location":"India",
				 "description":"dup","url":"https://acme.example/jobs/101",
				 "publication_date":"2026-08-20T10:00:00Z"}
			]}`)
		}
	})

	got, err := src.FetchJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]int{}
	for i, j := range got {
		byID[j.ID] = i
	}
	require.Contains(t, byID, "remotive-101")
	require.Contains(t, byID, "remotive-102")

	dev := got[byID["remotive-101"]]
	assert.Equal(t, "Go Developer", dev.Title)
	assert.Equal(t, "Build APIs", dev.Description)
	assert.Equal(t, "Job", dev.Type)
	assert.Equal(t, "India", dev.Location)
	assert.Equal(t, "Remotive", dev.SourceName)

	intern := got[byID["remotive-102"]]
	assert.Equal(t, "Internship", intern.Type)
	assert.Equal(t, "Company Not Specified", intern.Company)
	assert.Equal(t, "Remote", intern.Location)
	assert.Equal(t, "No description available", intern.Description)
	assert.Equal(t, "#", intern.ApplyURL)
	assert.NotEmpty(t, intern.PublishedDate)
}

func TestRemotiveToleratesFailingCategory(t *testing.T) {
	src := newRemotiveTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") == "data" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"jobs":[{"id":1,"title":"Dev","company_name":"Acme",
			"candidate_required_location":"India","description":"d",
			"url":"https://a.example/1","publication_date":"2026-08-20T10:00:00Z"}]}`)
	})

	got, err := src.FetchJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRemotiveErrorsWhenAllCategoriesFail(t *testing.T) {
	src := newRemotiveTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := src.FetchJobs(context.Background())
	assert.Error(t, err)
}
