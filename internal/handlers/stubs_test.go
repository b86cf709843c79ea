package handlers

import (
	"context"
	"mime/multipart"

	"resumatch/resume-job-matcher/internal/models"
)

type stubStorage struct {
	path    string
	saveErr error
	removed []string
}

func (s *stubStorage) SaveTemp(file *multipart.FileHeader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	return s.path, nil
}

func (s *stubStorage) Remove(path string) error {
	s.removed = append(s.removed, path)
	return nil
}

func (s *stubStorage) EnsureTempDir() error { return nil }

type stubParser struct {
	text string
	err  error
}

func (p *stubParser) ExtractText(string) (string, error) { return p.text, p.err }

type stubExtractor struct {
	keywords []string
	err      error
}

func (e *stubExtractor) Extract(text string, topN int) ([]string, error) {
	return e.keywords, e.err
}

type stubSearchClient struct {
	jobs []models.JobRecord
	err  error

	gotKeywords string
	gotLocation models.Location
	gotJobType  models.JobType
	gotResults  int
}

func (c *stubSearchClient) Search(ctx context.Context, keywords string, location models.Location, jobType models.JobType, resultsWanted int) ([]models.JobRecord, error) {
	c.gotKeywords = keywords
	c.gotLocation = location
	c.gotJobType = jobType
	c.gotResults = resultsWanted
	if c.err != nil {
		return nil, c.err
	}
	return c.jobs, nil
}
