package model

import "strings"

// PlatformType identifies the applicant tracking system hosting a form.
type PlatformType string

// Platform constants.
const (
	PlatformGreenhouse PlatformType = "greenhouse"
	PlatformLever      PlatformType = "lever"
	PlatformWorkday    PlatformType = "workday"
	PlatformICIMS      PlatformType = "icims"
	PlatformTaleo      PlatformType = "taleo"
	PlatformGeneric    PlatformType = "generic"
	PlatformUnknown    PlatformType = "unknown"
)

// Profile holds the candidate details used for prompt construction. Owned by
// the caller; the pipeline only reads it.
type Profile struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Experience string `json:"experience"`
}

// Context is a read-only bag describing the page and session a
// classification request belongs to.
type Context struct {
	Platform PlatformType `json:"platform"`
	URL      string       `json:"url"`
	Company  string       `json:"company"`
	Position string       `json:"position"`
	Profile  *Profile     `json:"profile,omitempty"`
}

// DetectPlatform maps a page URL onto a known platform. Unrecognized hosts
// report unknown so the rule stage is skipped rather than misapplied.
func DetectPlatform(url string) PlatformType {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(lower, "lever.co"):
		return PlatformLever
	case strings.Contains(lower, "myworkday"):
		return PlatformWorkday
	case strings.Contains(lower, "icims.com"):
		return PlatformICIMS
	case strings.Contains(lower, "taleo.net"):
		return PlatformTaleo
	case lower == "":
		return PlatformUnknown
	default:
		return PlatformGeneric
	}
}

// normalizeSearchText joins the given attribute values, lower-cased and
// space-separated, skipping empties.
func normalizeSearchText(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			joined = append(joined, strings.ToLower(p))
		}
	}
	return strings.Join(joined, " ")
}
