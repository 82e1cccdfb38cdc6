package workspace

import "time"

// WorkspaceResponse is the view model of one session, rendered by the page
// template and returned by the JSON snapshot
type WorkspaceResponse struct {
	SessionID  string        `json:"session_id"`
	Stage      string        `json:"stage"`
	File       *FileResponse `json:"file,omitempty"`
	HasResults bool          `json:"has_results"`

	Status       string `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
	ExportStatus string `json:"export_status,omitempty"`

	OverallSentiment string                    `json:"overall_sentiment"`
	Topics           []string                  `json:"topics"`
	DiscussionPoints []DiscussionPointResponse `json:"discussion_points"`
	ActionItems      []ActionItemResponse      `json:"action_items"`
	HasTranscript    bool                      `json:"has_transcript"`

	Chat []ChatMessageResponse `json:"chat"`

	OpenForm        string                    `json:"open_form,omitempty"`
	DiscussionDraft AddDiscussionPointRequest `json:"discussion_draft"`
	ActionDraft     AddActionItemRequest      `json:"action_draft"`

	Loading   bool `json:"loading"`
	Exporting bool `json:"exporting"`
	Chatting  bool `json:"chatting"`
	CanChat   bool `json:"can_chat"`

	Labels Labels `json:"labels"`
}

// FileResponse describes the selected recording
type FileResponse struct {
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DiscussionPointResponse represents one discussion point
type DiscussionPointResponse struct {
	ID      int    `json:"id"`
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

// ActionItemResponse represents one action item with its display values
type ActionItemResponse struct {
	ID              int      `json:"id"`
	Task            string   `json:"task"`
	Owner           []string `json:"owner"`
	Deadline        *string  `json:"deadline"`
	OwnersDisplay   string   `json:"owners_display"`
	DeadlineDisplay string   `json:"deadline_display"`
}

// ChatMessageResponse represents one chat entry
type ChatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Labels are the button captions, which change while a call is pending
type Labels struct {
	Process string `json:"process"`
	Export  string `json:"export"`
	Chat    string `json:"chat"`
}
