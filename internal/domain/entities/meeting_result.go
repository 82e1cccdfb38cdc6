package entities

// MeetingResult is the minutes produced by processing one recording.
// Field names follow the backend wire format.
type MeetingResult struct {
	DiscussionPoints []DiscussionPoint `json:"discussion_points"`
	ActionItems      []ActionItem      `json:"action_items"`
	OverallSentiment string            `json:"overall_sentiment"`
	Topics           []string          `json:"topics"`
	Transcript       string            `json:"transcript"`
}

// Minutes is the user-edited subset of a MeetingResult sent to the export endpoint
type Minutes struct {
	OverallSentiment string            `json:"overall_sentiment"`
	Topics           []string          `json:"topics"`
	DiscussionPoints []DiscussionPoint `json:"discussion_points"`
	ActionItems      []ActionItem      `json:"action_items"`
}

// HasTranscript reports whether a transcript is loaded
func (r MeetingResult) HasTranscript() bool {
	return r.Transcript != ""
}

// Minutes returns a copy of the editable part of the result
func (r MeetingResult) Minutes() Minutes {
	return Minutes{
		OverallSentiment: r.OverallSentiment,
		Topics:           append([]string{}, r.Topics...),
		DiscussionPoints: append([]DiscussionPoint{}, r.DiscussionPoints...),
		ActionItems:      cloneActionItems(r.ActionItems),
	}
}

func (r *MeetingResult) normalize() {
	if r.DiscussionPoints == nil {
		r.DiscussionPoints = []DiscussionPoint{}
	}
	if r.ActionItems == nil {
		r.ActionItems = []ActionItem{}
	}
	if r.Topics == nil {
		r.Topics = []string{}
	}
}

func cloneActionItems(items []ActionItem) []ActionItem {
	out := make([]ActionItem, len(items))
	for i, item := range items {
		item.Owner = append([]string{}, item.Owner...)
		out[i] = item
	}
	return out
}
