package models

// JobRecord is one posting as returned by the jobs-search API. Every
// field is optional upstream, so display accessors supply the
// placeholder text used when a field is missing.
type JobRecord struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	JobURL   string `json:"job_url,omitempty"`
}

func (j JobRecord) DisplayTitle() string {
	if j.Title == "" {
		return "No Title"
	}
	return j.Title
}

func (j JobRecord) DisplayCompany() string {
	if j.Company == "" {
		return "Unknown Company"
	}
	return j.Company
}

func (j JobRecord) DisplayLocation() string {
	if j.Location == "" {
		return "N/A"
	}
	return j.Location
}

func (j JobRecord) DisplayURL() string {
	if j.JobURL == "" {
		return "#"
	}
	return j.JobURL
}

type SearchRequest struct {
	Keywords      []string `json:"keywords,omitempty"`
	Location      string   `json:"location"`
	JobType       string   `json:"job_type"`
	ResultsWanted int      `json:"results_wanted,omitempty"`
}

type JobView struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	JobURL   string `json:"job_url"`
}

// View renders a record with all fallbacks applied.
func (j JobRecord) View() JobView {
	return JobView{
		Title:    j.DisplayTitle(),
		Company:  j.DisplayCompany(),
		Location: j.DisplayLocation(),
		JobURL:   j.DisplayURL(),
	}
}

type SearchResponse struct {
	Jobs  []JobView `json:"jobs"`
	Count int       `json:"count"`
}
