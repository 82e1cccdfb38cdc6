package entities

// DiscussionPoint is one topic discussed during the meeting
type DiscussionPoint struct {
	ID      int    `json:"id"`
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}
