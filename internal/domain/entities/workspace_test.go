package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() MeetingResult {
	return MeetingResult{
		DiscussionPoints: []DiscussionPoint{{ID: 1, Topic: "Budget", Summary: "Discussed Q3 budget"}},
		ActionItems:      []ActionItem{},
		OverallSentiment: "positive",
		Topics:           []string{"budget"},
		Transcript:       "we talked about the budget",
	}
}

func processed(t *testing.T) *Workspace {
	t.Helper()
	w := NewWorkspace("s1")
	w.SelectFile(UploadedFile{Name: "meeting.mp3"})
	ticket, err := w.BeginProcessing()
	require.NoError(t, err)
	require.True(t, w.CompleteProcessing(ticket.Generation, sampleResult()))
	return w
}

func TestWorkspace_StageTransitions(t *testing.T) {
	w := NewWorkspace("s1")
	assert.Equal(t, StageNoFile, w.Stage())

	w.SelectFile(UploadedFile{Name: "meeting.mp3"})
	assert.Equal(t, StageFileSelected, w.Stage())

	ticket, err := w.BeginProcessing()
	require.NoError(t, err)
	assert.Equal(t, StageProcessing, w.Stage())
	assert.Equal(t, MsgProcessing, w.Status)

	w.FailProcessing(ticket.Generation)
	assert.Equal(t, StageFileSelected, w.Stage())

	ticket, err = w.BeginProcessing()
	require.NoError(t, err)
	w.CompleteProcessing(ticket.Generation, sampleResult())
	assert.Equal(t, StageResults, w.Stage())

	w.SelectFile(UploadedFile{Name: "other.wav"})
	assert.Equal(t, StageFileSelected, w.Stage())
}

func TestWorkspace_SelectFileResetsDerivedState(t *testing.T) {
	w := processed(t)
	w.AddActionItem("Fix pipeline", "Dana", "")
	_, err := w.BeginChat("what was decided?")
	require.NoError(t, err)
	w.FinishChat(w.Generation, "nothing", nil)
	w.ExportStatus = MsgExported
	w.Error = "old"
	w.OpenAddForm(FormDiscussion)
	w.DiscussionDraft = DiscussionDraft{Topic: "half typed"}

	previous := w.SelectFile(UploadedFile{Name: "next.mp4", ObjectKey: "k2"})

	require.NotNil(t, previous)
	assert.Equal(t, "meeting.mp3", previous.Name)
	assert.Empty(t, w.Result.DiscussionPoints)
	assert.Empty(t, w.Result.ActionItems)
	assert.Empty(t, w.Result.OverallSentiment)
	assert.Empty(t, w.Result.Topics)
	assert.Empty(t, w.Result.Transcript)
	assert.Empty(t, w.Chat)
	assert.Empty(t, w.Status)
	assert.Empty(t, w.Error)
	assert.Empty(t, w.ExportStatus)
	assert.Equal(t, FormNone, w.OpenForm)
	assert.Equal(t, DiscussionDraft{}, w.DiscussionDraft)
	assert.False(t, w.HasResults())
	assert.Equal(t, "next.mp4", w.File.Name)
}

func TestWorkspace_BeginProcessingWithoutFile(t *testing.T) {
	w := NewWorkspace("s1")

	_, err := w.BeginProcessing()

	assert.ErrorIs(t, err, ErrNoFileSelected)
	assert.Equal(t, MsgSelectFileFirst, w.Error)
	assert.False(t, w.Loading)
}

func TestWorkspace_BeginProcessingTwice(t *testing.T) {
	w := NewWorkspace("s1")
	w.SelectFile(UploadedFile{Name: "meeting.mp3"})

	_, err := w.BeginProcessing()
	require.NoError(t, err)
	_, err = w.BeginProcessing()

	assert.ErrorIs(t, err, ErrOperationInProgress)
}

func TestWorkspace_CompleteProcessingMatchesPayload(t *testing.T) {
	w := processed(t)

	assert.Equal(t, sampleResult(), w.Result)
	assert.Equal(t, MsgProcessed, w.Status)
	assert.False(t, w.Loading)
	assert.True(t, w.HasResults())
}

func TestWorkspace_FailProcessingKeepsResult(t *testing.T) {
	w := NewWorkspace("s1")
	w.SelectFile(UploadedFile{Name: "meeting.mp3"})
	before := w.Result

	ticket, err := w.BeginProcessing()
	require.NoError(t, err)
	w.FailProcessing(ticket.Generation)

	assert.Equal(t, before, w.Result)
	assert.Equal(t, MsgProcessFailed, w.Error)
	assert.Empty(t, w.Status)
	assert.False(t, w.Loading)
}

func TestWorkspace_StaleProcessingIsDiscarded(t *testing.T) {
	w := NewWorkspace("s1")
	w.SelectFile(UploadedFile{Name: "first.mp3"})
	ticket, err := w.BeginProcessing()
	require.NoError(t, err)

	w.SelectFile(UploadedFile{Name: "second.mp3"})
	applied := w.CompleteProcessing(ticket.Generation, sampleResult())

	assert.False(t, applied)
	assert.False(t, w.Loading)
	assert.False(t, w.HasResults())
	assert.Empty(t, w.Result.DiscussionPoints)
}

func TestWorkspace_AddDiscussionPoint(t *testing.T) {
	w := processed(t)
	w.OpenAddForm(FormDiscussion)

	_, ok := w.AddDiscussionPoint("", "summary")
	assert.False(t, ok)
	_, ok = w.AddDiscussionPoint("Topic", "   ")
	assert.False(t, ok)
	assert.Len(t, w.Result.DiscussionPoints, 1)
	assert.Equal(t, FormDiscussion, w.OpenForm)
	assert.Equal(t, "Topic", w.DiscussionDraft.Topic)

	point, ok := w.AddDiscussionPoint("Hiring", "Two roles open")
	require.True(t, ok)
	assert.Equal(t, ManualIDOffset, point.ID)
	assert.Len(t, w.Result.DiscussionPoints, 2)
	assert.Equal(t, FormNone, w.OpenForm)
	assert.Equal(t, DiscussionDraft{}, w.DiscussionDraft)

	next, ok := w.AddDiscussionPoint("Roadmap", "Q4 plan")
	require.True(t, ok)
	assert.Equal(t, ManualIDOffset+1, next.ID)
}

func TestWorkspace_AddActionItem(t *testing.T) {
	w := processed(t)

	item, ok := w.AddActionItem("Ship release", "Alice, Bob", "2024-07-01")
	require.True(t, ok)
	assert.Equal(t, []string{"Alice", "Bob"}, item.Owner)
	require.NotNil(t, item.Deadline)
	assert.Equal(t, "2024-07-01", *item.Deadline)

	_, ok = w.AddActionItem("", "Alice", "")
	assert.False(t, ok)
	_, ok = w.AddActionItem("Task", "", "")
	assert.False(t, ok)
	assert.Len(t, w.Result.ActionItems, 1)
}

func TestWorkspace_AddActionItemScenario(t *testing.T) {
	w := processed(t)
	w.OpenAddForm(FormAction)

	item, ok := w.AddActionItem("Fix pipeline", "Dana", "")

	require.True(t, ok)
	require.Len(t, w.Result.ActionItems, 1)
	assert.Equal(t, "Fix pipeline", w.Result.ActionItems[0].Task)
	assert.Equal(t, []string{"Dana"}, item.Owner)
	assert.Nil(t, item.Deadline)
	assert.Equal(t, "N/A", item.DeadlineOrNA())
	assert.Equal(t, FormNone, w.OpenForm)
}

func TestWorkspace_OneFormAtATime(t *testing.T) {
	w := processed(t)

	w.OpenAddForm(FormDiscussion)
	w.OpenAddForm(FormAction)
	assert.Equal(t, FormAction, w.OpenForm)

	w.CloseAddForm()
	assert.Equal(t, FormNone, w.OpenForm)
}

func TestWorkspace_DeleteItem(t *testing.T) {
	w := processed(t)
	w.AddDiscussionPoint("Hiring", "Two roles open")

	removed, err := w.DeleteItem(ItemDiscussion, 42)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, w.Result.DiscussionPoints, 2)

	removed, err = w.DeleteItem(ItemDiscussion, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, w.Result.DiscussionPoints, 1)
	assert.Equal(t, "Hiring", w.Result.DiscussionPoints[0].Topic)

	removed, err = w.DeleteItem(ItemDiscussion, 1)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = w.DeleteItem(ItemKind("other"), 1)
	assert.ErrorIs(t, err, ErrInvalidItemKind)
}

func TestWorkspace_ProcessThenDeleteScenario(t *testing.T) {
	w := processed(t)
	require.Len(t, w.Result.DiscussionPoints, 1)
	assert.Equal(t, "Budget", w.Result.DiscussionPoints[0].Topic)
	assert.Equal(t, "positive", w.Result.OverallSentiment)

	_, err := w.DeleteItem(ItemDiscussion, w.Result.DiscussionPoints[0].ID)
	require.NoError(t, err)

	assert.Empty(t, w.Result.DiscussionPoints)
	assert.True(t, w.HasResults())
}

func TestWorkspace_Export(t *testing.T) {
	w := processed(t)
	w.AddActionItem("Fix pipeline", "Dana", "")

	ticket, err := w.BeginExport()
	require.NoError(t, err)
	assert.Equal(t, MsgExporting, w.ExportStatus)
	assert.Len(t, ticket.Minutes.ActionItems, 1)

	_, err = w.BeginExport()
	assert.ErrorIs(t, err, ErrOperationInProgress)

	w.FinishExport(ticket.Generation, nil)
	assert.Equal(t, MsgExported, w.ExportStatus)
	assert.False(t, w.Exporting)

	ticket, err = w.BeginExport()
	require.NoError(t, err)
	w.FinishExport(ticket.Generation, assert.AnError)
	assert.Equal(t, MsgExportFailed, w.ExportStatus)
}

func TestWorkspace_ExportSnapshotIsIndependent(t *testing.T) {
	w := processed(t)
	w.AddActionItem("Fix pipeline", "Dana", "")

	ticket, err := w.BeginExport()
	require.NoError(t, err)
	w.Result.ActionItems[0].Owner[0] = "Eve"

	assert.Equal(t, "Dana", ticket.Minutes.ActionItems[0].Owner[0])
}

func TestWorkspace_Chat(t *testing.T) {
	w := processed(t)

	_, err := w.BeginChat("   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, w.Chat)

	ticket, err := w.BeginChat("What about the budget?")
	require.NoError(t, err)
	assert.Equal(t, "we talked about the budget", ticket.Transcript)
	require.Len(t, w.Chat, 1)
	assert.True(t, w.Chatting)
	assert.False(t, w.CanChat())

	w.FinishChat(ticket.Generation, "It was approved.", nil)
	require.Len(t, w.Chat, 2)
	assert.Equal(t, ChatMessage{Role: ChatRoleBot, Content: "It was approved."}, w.Chat[1])
	assert.True(t, w.CanChat())
}

func TestWorkspace_ChatFailureKeepsQuestion(t *testing.T) {
	w := processed(t)

	ticket, err := w.BeginChat("Who owns the pipeline?")
	require.NoError(t, err)
	w.FinishChat(ticket.Generation, "", assert.AnError)

	require.Len(t, w.Chat, 2)
	assert.Equal(t, ChatMessage{Role: ChatRoleUser, Content: "Who owns the pipeline?"}, w.Chat[0])
	assert.Equal(t, ChatMessage{Role: ChatRoleBot, Content: MsgChatFailed}, w.Chat[1])

	_, err = w.BeginChat("Try again?")
	assert.NoError(t, err)
}

func TestWorkspace_ChatWithoutTranscript(t *testing.T) {
	w := NewWorkspace("s1")
	w.SelectFile(UploadedFile{Name: "meeting.mp3"})

	_, err := w.BeginChat("anything?")

	assert.ErrorIs(t, err, ErrNoTranscript)
	assert.Empty(t, w.Chat)
	assert.False(t, w.CanChat())
}

func TestParseOwners(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob"}, ParseOwners("Alice, Bob"))
	assert.Equal(t, []string{"Dana"}, ParseOwners(" Dana "))
	assert.Equal(t, []string{"A", "B"}, ParseOwners("A,,B"))
	assert.Empty(t, ParseOwners(" , "))
}

func TestParseFormKind(t *testing.T) {
	kind, err := ParseFormKind("action")
	require.NoError(t, err)
	assert.Equal(t, FormAction, kind)

	_, err = ParseFormKind("calendar")
	assert.ErrorIs(t, err, ErrInvalidFormKind)
}
