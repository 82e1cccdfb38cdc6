package workspace

// AddDiscussionPointRequest represents the manual discussion point form
type AddDiscussionPointRequest struct {
	Topic   string `form:"topic" json:"topic" validate:"notblank"`
	Summary string `form:"summary" json:"summary" validate:"notblank"`
}

// AddActionItemRequest represents the manual action item form.
// Owner is a comma separated list of names; Deadline is optional.
type AddActionItemRequest struct {
	Task     string `form:"task" json:"task" validate:"notblank"`
	Owner    string `form:"owner" json:"owner" validate:"notblank"`
	Deadline string `form:"deadline" json:"deadline"`
}

// ItemPathRequest identifies one list item in the URL
type ItemPathRequest struct {
	ID int `param:"id"`
}

// FormPathRequest identifies an add-form in the URL
type FormPathRequest struct {
	Kind string `param:"kind"`
}

// ChatRequest represents one question typed into the chat form
type ChatRequest struct {
	Question string `form:"question" json:"question" validate:"notblank"`
}
