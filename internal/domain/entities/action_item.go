package entities

import "strings"

// ActionItem is a task agreed on during the meeting
type ActionItem struct {
	ID       int      `json:"id"`
	Task     string   `json:"task"`
	Owner    []string `json:"owner"`
	Deadline *string  `json:"deadline"`
}

// Owners returns the owners joined for display
func (a ActionItem) Owners() string {
	return strings.Join(a.Owner, ", ")
}

// DeadlineOrNA returns the deadline or "N/A" when none was given
func (a ActionItem) DeadlineOrNA() string {
	if a.Deadline == nil || *a.Deadline == "" {
		return "N/A"
	}
	return *a.Deadline
}

// ParseOwners splits a comma separated owner list, trimming every segment.
// Segments that are blank after trimming are dropped.
func ParseOwners(csv string) []string {
	parts := strings.Split(csv, ",")
	owners := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			owners = append(owners, p)
		}
	}
	return owners
}
