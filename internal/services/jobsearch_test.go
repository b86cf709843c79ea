package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-job-matcher/internal/config"
	"resumatch/resume-job-matcher/internal/models"
)

func testClient(url string) JobSearchClient {
	return NewRapidAPIClient(config.JobSearchConfig{
		URL:     url,
		Host:    "jobs-search-api.p.rapidapi.com",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestSearch_ParsesJobs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"jobs": []map[string]string{
				{"title": "Go Developer", "company": "Acme", "location": "Berlin", "job_url": "https://acme.io/1"},
				{"title": "Backend Engineer"},
			},
		})
	}))
	defer server.Close()

	jobs, err := testClient(server.URL).Search(context.Background(), "go, backend", models.LocationRemote, models.JobTypeFullTime, 10)

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Go Developer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "", jobs[1].JobURL)
}

func TestSearch_BuildsExpectedPayload(t *testing.T) {
	var payload map[string]any
	var gotKey, gotHost, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"jobs":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "go, grpc", models.LocationRemote, models.JobTypeFullTime, 10)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "jobs-search-api.p.rapidapi.com", gotHost)
	assert.Equal(t, "application/json", gotContentType)

	assert.Equal(t, "go, grpc", payload["search_term"])
	assert.Equal(t, "Remote", payload["location"])
	assert.Equal(t, float64(10), payload["results_wanted"])
	assert.Equal(t, []any{"indeed", "linkedin", "zip_recruiter", "glassdoor"}, payload["site_name"])
	assert.Equal(t, float64(50), payload["distance"])
	assert.Equal(t, "fulltime", payload["job_type"])
	assert.Equal(t, true, payload["is_remote"])
	assert.Equal(t, false, payload["linkedin_fetch_description"])
	assert.Equal(t, float64(72), payload["hours_old"])
}

func TestSearch_IsRemoteMapping(t *testing.T) {
	tests := []struct {
		location models.Location
		want     bool
	}{
		{models.LocationRemote, true},
		{models.LocationHybrid, false},
		{models.LocationOnSite, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.location), func(t *testing.T) {
			var payload map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				w.Write([]byte(`{"jobs":[]}`))
			}))
			defer server.Close()

			_, err := testClient(server.URL).Search(context.Background(), "go", tt.location, models.JobTypeContract, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, payload["is_remote"])
		})
	}
}

func TestSearch_MissingJobsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	jobs, err := testClient(server.URL).Search(context.Background(), "go", models.LocationHybrid, models.JobTypeFullTime, 10)

	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestSearch_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	jobs, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 10)

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Empty(t, jobs)
}

func TestSearch_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 10)

		assert.ErrorIs(t, err, ErrUnauthorized)
		server.Close()
	}
}

func TestSearch_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 10)

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSearch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 10)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jobs": [`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 10)

	require.Error(t, err)
}

func TestSearch_DefaultResultsWanted(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"jobs":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "go", models.LocationRemote, models.JobTypeFullTime, 0)

	require.NoError(t, err)
	assert.Equal(t, float64(DefaultResultsWanted), payload["results_wanted"])
}
