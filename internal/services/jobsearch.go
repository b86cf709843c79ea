package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"resumatch/resume-job-matcher/internal/config"
	"resumatch/resume-job-matcher/internal/models"
)

// Classified job-search failures. The caller decides how to surface
// each class; zero matches is never an error.
var (
	ErrUnauthorized = errors.New("job search API rejected the credential")
	ErrRateLimited  = errors.New("job search API rate limit exceeded")
	ErrUpstream     = errors.New("job search API upstream failure")
)

const DefaultResultsWanted = 10

type JobSearchClient interface {
	Search(ctx context.Context, keywords string, location models.Location, jobType models.JobType, resultsWanted int) ([]models.JobRecord, error)
}

type searchPayload struct {
	SearchTerm               string   `json:"search_term"`
	Location                 string   `json:"location"`
	ResultsWanted            int      `json:"results_wanted"`
	SiteName                 []string `json:"site_name"`
	Distance                 int      `json:"distance"`
	JobType                  string   `json:"job_type"`
	IsRemote                 bool     `json:"is_remote"`
	LinkedinFetchDescription bool     `json:"linkedin_fetch_description"`
	HoursOld                 int      `json:"hours_old"`
}

var siteNames = []string{"indeed", "linkedin", "zip_recruiter", "glassdoor"}

type rapidAPIClient struct {
	cfg        config.JobSearchConfig
	httpClient *http.Client
}

// NewRapidAPIClient builds the jobs-search client. The API key comes
// from configuration sourced once at startup; passing a custom
// *http.Client allows tests to point at a fake endpoint.
func NewRapidAPIClient(cfg config.JobSearchConfig, httpClient *http.Client) JobSearchClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &rapidAPIClient{cfg: cfg, httpClient: httpClient}
}

func (c *rapidAPIClient) Search(ctx context.Context, keywords string, location models.Location, jobType models.JobType, resultsWanted int) ([]models.JobRecord, error) {
	if resultsWanted <= 0 {
		resultsWanted = DefaultResultsWanted
	}

	payload := searchPayload{
		SearchTerm:               keywords,
		Location:                 string(location),
		ResultsWanted:            resultsWanted,
		SiteName:                 siteNames,
		Distance:                 50,
		JobType:                  jobType.APIValue(),
		IsRemote:                 location.IsRemote(),
		LinkedinFetchDescription: false,
		HoursOld:                 72,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", c.cfg.Host)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("%w (status %d)", ErrUpstream, resp.StatusCode)
	}

	var parsed struct {
		Jobs []models.JobRecord `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode job search response: %w", err)
	}

	if parsed.Jobs == nil {
		return []models.JobRecord{}, nil
	}
	return parsed.Jobs, nil
}
