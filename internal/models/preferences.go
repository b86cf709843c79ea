package models

import "strings"

// Location is the user's workplace preference. The fixed set mirrors
// the choices offered by the UI.
type Location string

const (
	LocationRemote Location = "Remote"
	LocationHybrid Location = "Hybrid"
	LocationOnSite Location = "On-site"
)

var Locations = []Location{LocationRemote, LocationHybrid, LocationOnSite}

// ParseLocation matches case-insensitively so API clients are not
// forced to reproduce the display casing.
func ParseLocation(s string) (Location, bool) {
	for _, l := range Locations {
		if strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	return "", false
}

// IsRemote is true iff the preference is exactly the Remote option.
func (l Location) IsRemote() bool {
	return strings.EqualFold(string(l), string(LocationRemote))
}

// JobType is the user's employment-type preference.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeFreelance,
	JobTypeInternship,
}

var jobTypeAPIValues = map[JobType]string{
	JobTypeFullTime:   "fulltime",
	JobTypePartTime:   "parttime",
	JobTypeContract:   "contract",
	JobTypeFreelance:  "freelance",
	JobTypeInternship: "internship",
}

func ParseJobType(s string) (JobType, bool) {
	for _, jt := range JobTypes {
		if strings.EqualFold(s, string(jt)) {
			return jt, true
		}
	}
	return "", false
}

// APIValue returns the identifier the jobs-search API expects.
func (jt JobType) APIValue() string {
	if v, ok := jobTypeAPIValues[jt]; ok {
		return v
	}
	return "fulltime"
}
