package presenter

import (
	workspaceDTO "github.com/johnquangdev/meeting-workspace/internal/adapter/dto/workspace"
	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
)

// Button captions
const (
	LabelProcess    = "Generate Minutes"
	LabelProcessing = "Processing..."
	LabelExport     = "Confirm & Export to Notion"
	LabelExporting  = "Exporting..."
	LabelSend       = "Send"
	LabelThinking   = "Thinking..."
)

// ToWorkspaceResponse converts a Workspace entity to the page view model
func ToWorkspaceResponse(w *entities.Workspace) *workspaceDTO.WorkspaceResponse {
	if w == nil {
		return nil
	}

	response := &workspaceDTO.WorkspaceResponse{
		SessionID:        w.ID,
		Stage:            string(w.Stage()),
		HasResults:       w.HasResults(),
		Status:           w.Status,
		Error:            w.Error,
		ExportStatus:     w.ExportStatus,
		OverallSentiment: w.Result.OverallSentiment,
		Topics:           append([]string{}, w.Result.Topics...),
		DiscussionPoints: make([]workspaceDTO.DiscussionPointResponse, 0, len(w.Result.DiscussionPoints)),
		ActionItems:      make([]workspaceDTO.ActionItemResponse, 0, len(w.Result.ActionItems)),
		HasTranscript:    w.Result.HasTranscript(),
		Chat:             make([]workspaceDTO.ChatMessageResponse, 0, len(w.Chat)),
		OpenForm:         string(w.OpenForm),
		DiscussionDraft: workspaceDTO.AddDiscussionPointRequest{
			Topic:   w.DiscussionDraft.Topic,
			Summary: w.DiscussionDraft.Summary,
		},
		ActionDraft: workspaceDTO.AddActionItemRequest{
			Task:     w.ActionDraft.Task,
			Owner:    w.ActionDraft.Owner,
			Deadline: w.ActionDraft.Deadline,
		},
		Loading:   w.Loading,
		Exporting: w.Exporting,
		Chatting:  w.Chatting,
		CanChat:   w.CanChat(),
		Labels:    toLabels(w),
	}

	if w.File != nil {
		response.File = &workspaceDTO.FileResponse{
			Name:        w.File.Name,
			ContentType: w.File.ContentType,
			Size:        w.File.Size,
			UploadedAt:  w.File.UploadedAt,
		}
	}

	for _, p := range w.Result.DiscussionPoints {
		response.DiscussionPoints = append(response.DiscussionPoints, workspaceDTO.DiscussionPointResponse{
			ID:      p.ID,
			Topic:   p.Topic,
			Summary: p.Summary,
		})
	}

	for _, a := range w.Result.ActionItems {
		response.ActionItems = append(response.ActionItems, workspaceDTO.ActionItemResponse{
			ID:              a.ID,
			Task:            a.Task,
			Owner:           append([]string{}, a.Owner...),
			Deadline:        a.Deadline,
			OwnersDisplay:   a.Owners(),
			DeadlineDisplay: a.DeadlineOrNA(),
		})
	}

	for _, m := range w.Chat {
		response.Chat = append(response.Chat, workspaceDTO.ChatMessageResponse{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	return response
}

func toLabels(w *entities.Workspace) workspaceDTO.Labels {
	labels := workspaceDTO.Labels{Process: LabelProcess, Export: LabelExport, Chat: LabelSend}
	if w.Loading {
		labels.Process = LabelProcessing
	}
	if w.Exporting {
		labels.Export = LabelExporting
	}
	if w.Chatting {
		labels.Chat = LabelThinking
	}
	return labels
}
