package services

import (
	"strings"

	"prepvault/resume-analyzer/internal/catalog"
)

// MissingKeywords returns the role's required keywords that do not occur in
// text, in catalogue order. Matching is verbatim lowercase substring
// containment: multi-word keywords must appear exactly as written, so
// paraphrased skills are not detected.
func MissingKeywords(text string, profile catalog.RoleProfile) []string {
	lowered := strings.ToLower(text)

	missing := []string{}
	for _, keyword := range profile.RequiredKeywords {
		if !strings.Contains(lowered, keyword) {
			missing = append(missing, keyword)
		}
	}
	return missing
}
