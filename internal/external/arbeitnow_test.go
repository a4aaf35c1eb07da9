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

func newArbeitnowTestServer(t *testing.T, handler http.HandlerFunc) *ArbeitnowSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &ArbeitnowSource{
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestArbeitnowFetchJobs(t *testing.T) {
	src := newArbeitnowTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"slug":"go-dev-pune","title":"Go Developer","company_name":"Acme",
			 "location":"Pune, India","remote":false,"tags":["golang"],
			 "description":"<p>Ship services</p>",
			 "url":"https://arbeitnow.com/jobs/go-dev-pune",
			 "created_at":1756684800},
			{"slug":"","title":"Werkstudent","company_name":"Globex",
			 "location":"","remote":true,"tags":["Internship","student"],
			 "description":"part time","url":"","created_at":0}
		]}`)
	})

	got, err := src.FetchJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "arbeitnow-go-dev-pune", first.ID)
	assert.Equal(t, "Ship services", first.Description)
	assert.Equal(t, "Job", first.Type)
	assert.Equal(t, "Pune, India", first.Location)
	assert.Equal(t, "Arbeitnow", first.SourceName)
	published, perr := time.Parse(time.RFC3339, first.PublishedDate)
	require.NoError(t, perr)
	assert.Equal(t, int64(1756684800), published.Unix())

	second := got[1]
	assert.Equal(t, "arbeitnow-1", second.ID, "missing slug falls back to index")
	assert.Equal(t, "Internship", second.Type, "tags count toward internship detection")
	assert.Equal(t, "Remote", second.Location)
	assert.Equal(t, "#", second.ApplyURL)
	assert.NotEmpty(t, second.PublishedDate)
}

func TestArbeitnowNonOKStatus(t *testing.T) {
	src := newArbeitnowTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := src.FetchJobs(context.Background())
	assert.Error(t, err)
}
