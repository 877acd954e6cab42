package filiere

import "strings"

const groupesSeparator = ", "

// ParseGroupes splits a comma-separated list into trimmed, non-empty entries.
// Order and duplicates are preserved. The result is never nil.
func ParseGroupes(s string) []string {
	groupes := []string{}
	for _, part := range strings.Split(s, ",") {
		if g := strings.TrimSpace(part); g != "" {
			groupes = append(groupes, g)
		}
	}
	return groupes
}

// JoinGroupes renders a list of groups in the form used by the text input.
func JoinGroupes(groupes []string) string {
	return strings.Join(groupes, groupesSeparator)
}
