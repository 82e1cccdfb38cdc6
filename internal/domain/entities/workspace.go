package entities

import (
	"strings"
	"time"
)

// ManualIDOffset is the first id handed out to manually added items.
// Backend ids are expected to stay below it.
const ManualIDOffset = 1000

// User-facing messages
const (
	MsgSelectFileFirst = "Please select a file first."
	MsgProcessing      = "Processing meeting..."
	MsgProcessed       = "Meeting processed successfully!"
	MsgProcessFailed   = "An error occurred. Check the backend console."
	MsgExporting       = "Exporting..."
	MsgExported        = "✅ Successfully exported!"
	MsgExportFailed    = "❌ Error exporting."
	MsgChatFailed      = "Sorry, I encountered an error."
)

// FormKind selects which manual add-form is open
type FormKind string

const (
	FormNone       FormKind = ""
	FormDiscussion FormKind = "discussion"
	FormAction     FormKind = "action"
)

// ParseFormKind converts a route parameter into a FormKind
func ParseFormKind(s string) (FormKind, error) {
	switch FormKind(s) {
	case FormDiscussion, FormAction:
		return FormKind(s), nil
	}
	return FormNone, ErrInvalidFormKind
}

// ItemKind selects one of the two editable lists
type ItemKind string

const (
	ItemDiscussion ItemKind = "discussion"
	ItemAction     ItemKind = "action"
)

// Stage is the session level state of a workspace
type Stage string

const (
	StageNoFile       Stage = "no_file"
	StageFileSelected Stage = "file_selected"
	StageProcessing   Stage = "processing"
	StageResults      Stage = "results"
)

// DiscussionDraft holds the values typed into the discussion form
type DiscussionDraft struct {
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

// ActionDraft holds the values typed into the action item form
type ActionDraft struct {
	Task     string `json:"task"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
}

// Workspace is the whole state of one browser session.
// Everything except ID, NextID and the busy flags is scoped to the selected file.
type Workspace struct {
	ID         string        `json:"id"`
	Generation int           `json:"generation"`
	File       *UploadedFile `json:"file,omitempty"`
	Result     MeetingResult `json:"result"`
	Processed  bool          `json:"processed"`
	Chat       []ChatMessage `json:"chat"`

	Status       string `json:"status"`
	Error        string `json:"error"`
	ExportStatus string `json:"export_status"`

	OpenForm        FormKind        `json:"open_form"`
	DiscussionDraft DiscussionDraft `json:"discussion_draft"`
	ActionDraft     ActionDraft     `json:"action_draft"`
	NextID          int             `json:"next_id"`

	Loading   bool `json:"loading"`
	Exporting bool `json:"exporting"`
	Chatting  bool `json:"chatting"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcessTicket carries what a processing call needs outside the session lock
type ProcessTicket struct {
	Generation int
	File       UploadedFile
}

// ExportTicket carries the minutes to export
type ExportTicket struct {
	Generation int
	Minutes    Minutes
}

// ChatTicket carries one question to the chat endpoint
type ChatTicket struct {
	Generation int
	Question   string
	Transcript string
}

// NewWorkspace creates an empty workspace
func NewWorkspace(id string) *Workspace {
	now := time.Now()
	w := &Workspace{
		ID:        id,
		NextID:    ManualIDOffset,
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.Result.normalize()
	w.Chat = []ChatMessage{}
	return w
}

// Stage derives the session state from the workspace fields
func (w *Workspace) Stage() Stage {
	switch {
	case w.File == nil:
		return StageNoFile
	case w.Processed:
		return StageResults
	case w.Loading:
		return StageProcessing
	default:
		return StageFileSelected
	}
}

// HasResults reports whether the results view should be shown
func (w *Workspace) HasResults() bool {
	return w.Processed
}

// CanChat reports whether the chat input is enabled
func (w *Workspace) CanChat() bool {
	return w.Result.HasTranscript() && !w.Chatting
}

// SelectFile stores the newly selected file and resets all state derived from
// the previous one. It returns the previously selected file, if any.
func (w *Workspace) SelectFile(file UploadedFile) *UploadedFile {
	previous := w.File
	w.File = &file
	w.Generation++

	w.Result = MeetingResult{}
	w.Result.normalize()
	w.Processed = false
	w.Chat = []ChatMessage{}
	w.Status = ""
	w.Error = ""
	w.ExportStatus = ""
	w.OpenForm = FormNone
	w.DiscussionDraft = DiscussionDraft{}
	w.ActionDraft = ActionDraft{}
	w.NextID = ManualIDOffset
	w.touch()

	return previous
}

// BeginProcessing marks the workspace as loading and returns what the
// processing call needs. Without a selected file it records the user-facing
// error and returns ErrNoFileSelected.
func (w *Workspace) BeginProcessing() (ProcessTicket, error) {
	if w.File == nil {
		w.Error = MsgSelectFileFirst
		w.touch()
		return ProcessTicket{}, ErrNoFileSelected
	}
	if w.Loading {
		return ProcessTicket{}, ErrOperationInProgress
	}

	w.Loading = true
	w.Error = ""
	w.Status = MsgProcessing
	w.touch()

	return ProcessTicket{Generation: w.Generation, File: *w.File}, nil
}

// CompleteProcessing applies a processing response. It returns false when the
// response belongs to a file that is no longer selected.
func (w *Workspace) CompleteProcessing(generation int, result MeetingResult) bool {
	w.Loading = false
	w.touch()
	if generation != w.Generation {
		return false
	}

	result.normalize()
	w.Result = result
	w.Processed = true
	w.Status = MsgProcessed
	w.Error = ""
	return true
}

// FailProcessing records a failed processing call. Result fields are left untouched.
func (w *Workspace) FailProcessing(generation int) bool {
	w.Loading = false
	w.touch()
	if generation != w.Generation {
		return false
	}

	w.Error = MsgProcessFailed
	w.Status = ""
	return true
}

// OpenAddForm opens one add-form, closing any other
func (w *Workspace) OpenAddForm(kind FormKind) {
	w.OpenForm = kind
	w.touch()
}

// CloseAddForm closes whichever add-form is open. Drafts are kept.
func (w *Workspace) CloseAddForm() {
	w.OpenForm = FormNone
	w.touch()
}

// AddDiscussionPoint appends a manual discussion point. Blank input leaves the
// list unchanged and keeps the draft.
func (w *Workspace) AddDiscussionPoint(topic, summary string) (DiscussionPoint, bool) {
	if strings.TrimSpace(topic) == "" || strings.TrimSpace(summary) == "" {
		w.DiscussionDraft = DiscussionDraft{Topic: topic, Summary: summary}
		w.touch()
		return DiscussionPoint{}, false
	}

	point := DiscussionPoint{ID: w.allocateID(), Topic: topic, Summary: summary}
	w.Result.DiscussionPoints = append(w.Result.DiscussionPoints, point)
	w.DiscussionDraft = DiscussionDraft{}
	w.OpenForm = FormNone
	w.touch()
	return point, true
}

// AddActionItem appends a manual action item. Owners are parsed from a comma
// separated list; an empty deadline is stored as undefined.
func (w *Workspace) AddActionItem(task, ownerCSV, deadline string) (ActionItem, bool) {
	owners := ParseOwners(ownerCSV)
	if strings.TrimSpace(task) == "" || len(owners) == 0 {
		w.ActionDraft = ActionDraft{Task: task, Owner: ownerCSV, Deadline: deadline}
		w.touch()
		return ActionItem{}, false
	}

	item := ActionItem{ID: w.allocateID(), Task: task, Owner: owners}
	if deadline != "" {
		d := deadline
		item.Deadline = &d
	}
	w.Result.ActionItems = append(w.Result.ActionItems, item)
	w.ActionDraft = ActionDraft{}
	w.OpenForm = FormNone
	w.touch()
	return item, true
}

// DeleteItem removes the item with the given id from one list. Deleting an
// absent id is a no-op. It reports whether anything was removed.
func (w *Workspace) DeleteItem(kind ItemKind, id int) (bool, error) {
	var removed bool
	switch kind {
	case ItemDiscussion:
		kept := w.Result.DiscussionPoints[:0:0]
		for _, p := range w.Result.DiscussionPoints {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		removed = len(kept) != len(w.Result.DiscussionPoints)
		w.Result.DiscussionPoints = kept
	case ItemAction:
		kept := w.Result.ActionItems[:0:0]
		for _, a := range w.Result.ActionItems {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		removed = len(kept) != len(w.Result.ActionItems)
		w.Result.ActionItems = kept
	default:
		return false, ErrInvalidItemKind
	}
	w.touch()
	return removed, nil
}

// BeginExport marks the workspace as exporting and snapshots the current minutes
func (w *Workspace) BeginExport() (ExportTicket, error) {
	if w.Exporting {
		return ExportTicket{}, ErrOperationInProgress
	}
	w.Exporting = true
	w.ExportStatus = MsgExporting
	w.touch()
	return ExportTicket{Generation: w.Generation, Minutes: w.Result.Minutes()}, nil
}

// FinishExport records the outcome of an export call
func (w *Workspace) FinishExport(generation int, err error) bool {
	w.Exporting = false
	w.touch()
	if generation != w.Generation {
		return false
	}
	if err != nil {
		w.ExportStatus = MsgExportFailed
	} else {
		w.ExportStatus = MsgExported
	}
	return true
}

// BeginChat appends the user's question to the history and returns what the
// chat call needs. Blank questions, a missing transcript or a pending answer
// leave the history unchanged.
func (w *Workspace) BeginChat(question string) (ChatTicket, error) {
	if strings.TrimSpace(question) == "" {
		return ChatTicket{}, ErrEmptyQuestion
	}
	if !w.Result.HasTranscript() {
		return ChatTicket{}, ErrNoTranscript
	}
	if w.Chatting {
		return ChatTicket{}, ErrOperationInProgress
	}

	w.Chat = append(w.Chat, ChatMessage{Role: ChatRoleUser, Content: question})
	w.Chatting = true
	w.touch()
	return ChatTicket{
		Generation: w.Generation,
		Question:   question,
		Transcript: w.Result.Transcript,
	}, nil
}

// FinishChat appends the bot answer, or the apology when the call failed
func (w *Workspace) FinishChat(generation int, answer string, err error) bool {
	w.Chatting = false
	w.touch()
	if generation != w.Generation {
		return false
	}
	content := answer
	if err != nil {
		content = MsgChatFailed
	}
	w.Chat = append(w.Chat, ChatMessage{Role: ChatRoleBot, Content: content})
	return true
}

func (w *Workspace) allocateID() int {
	if w.NextID < ManualIDOffset {
		w.NextID = ManualIDOffset
	}
	id := w.NextID
	w.NextID++
	return id
}

func (w *Workspace) touch() {
	w.UpdatedAt = time.Now()
}
