package models

type AnalyzeResponse struct {
	Accepted bool     `json:"accepted"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords,omitempty"`
	Warning  string   `json:"warning,omitempty"`
}

type KeywordsRequest struct {
	Keywords []string `json:"keywords"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Edited   bool     `json:"edited"`
}

type OptionsResponse struct {
	Locations []Location `json:"locations"`
	JobTypes  []JobType  `json:"job_types"`
}
