package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
)

func TestToWorkspaceResponse_Empty(t *testing.T) {
	resp := ToWorkspaceResponse(entities.NewWorkspace("s1"))

	require.NotNil(t, resp)
	assert.Equal(t, "no_file", resp.Stage)
	assert.Nil(t, resp.File)
	assert.False(t, resp.HasResults)
	assert.NotNil(t, resp.DiscussionPoints)
	assert.NotNil(t, resp.ActionItems)
	assert.NotNil(t, resp.Chat)
	assert.Equal(t, LabelProcess, resp.Labels.Process)
	assert.Equal(t, LabelExport, resp.Labels.Export)
	assert.Equal(t, LabelSend, resp.Labels.Chat)
}

func TestToWorkspaceResponse_ActionItemDisplay(t *testing.T) {
	w := entities.NewWorkspace("s1")
	w.SelectFile(entities.UploadedFile{Name: "meeting.mp3"})
	ticket, err := w.BeginProcessing()
	require.NoError(t, err)
	deadline := "2024-07-01"
	w.CompleteProcessing(ticket.Generation, entities.MeetingResult{
		ActionItems: []entities.ActionItem{
			{ID: 1, Task: "Send deck", Owner: []string{"Alice", "Bob"}, Deadline: &deadline},
			{ID: 2, Task: "Book room", Owner: []string{"Carol"}},
		},
		Transcript: "...",
	})

	resp := ToWorkspaceResponse(w)

	require.Len(t, resp.ActionItems, 2)
	assert.Equal(t, "Alice, Bob", resp.ActionItems[0].OwnersDisplay)
	assert.Equal(t, "2024-07-01", resp.ActionItems[0].DeadlineDisplay)
	assert.Equal(t, "N/A", resp.ActionItems[1].DeadlineDisplay)
	assert.True(t, resp.HasResults)
	assert.True(t, resp.CanChat)
	assert.Equal(t, "meeting.mp3", resp.File.Name)
}

func TestToWorkspaceResponse_BusyLabels(t *testing.T) {
	w := entities.NewWorkspace("s1")
	w.Loading = true
	w.Exporting = true
	w.Chatting = true

	resp := ToWorkspaceResponse(w)

	assert.Equal(t, LabelProcessing, resp.Labels.Process)
	assert.Equal(t, LabelExporting, resp.Labels.Export)
	assert.Equal(t, LabelThinking, resp.Labels.Chat)
}
