package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-workspace/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-workspace/internal/adapter/repository"
	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/storage"
	workspaceUsecase "github.com/johnquangdev/meeting-workspace/internal/usecase/workspace"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

type processOptions struct {
	export    bool
	questions []string
	json      bool
}

func newProcessCommand(deps *Deps, load func() (*config.Config, error)) *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process a meeting recording and print the minutes",
		Long: `Upload a local audio or video file to the backend and print the minutes.

Examples:
  minutes process standup.m4a
  minutes process standup.m4a --ask "Who owns the pipeline fix?"
  minutes process standup.m4a --export`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runProcess(cmd.Context(), deps, cfg, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.export, "export", false, "Export the minutes to Notion after processing")
	cmd.Flags().StringArrayVar(&opts.questions, "ask", nil, "Ask a question about the transcript (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the workspace as JSON")

	return cmd
}

func runProcess(ctx context.Context, deps *Deps, cfg *config.Config, path string, opts *processOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat recording: %w", err)
	}

	store := cache.NewMemoryStore()
	defer store.Close()

	svc := workspaceUsecase.NewWorkspaceService(
		repository.NewSessionRepository(store),
		storage.NewMemoryStorage(),
		deps.NewBackend(&cfg.Backend, deps.Logger),
		workspaceUsecase.Options{
			SessionTTL:     cfg.Session.TTL,
			ProcessTimeout: cfg.Backend.ProcessTimeout,
			ExportTimeout:  cfg.Backend.ExportTimeout,
			ChatTimeout:    cfg.Backend.ChatTimeout,
		},
		deps.Logger,
	)

	sessionID := uuid.NewString()
	if _, err := svc.SelectFile(ctx, sessionID, workspaceUsecase.Upload{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        info.Size(),
		Body:        f,
	}); err != nil {
		return err
	}

	w, err := svc.ProcessMeeting(ctx, sessionID)
	if err != nil {
		return err
	}
	if w.Error != "" {
		return fmt.Errorf("%s", w.Error)
	}

	for _, q := range opts.questions {
		if w, err = svc.AskQuestion(ctx, sessionID, q); err != nil {
			return err
		}
	}

	if opts.export {
		if w, err = svc.ExportToWorkspace(ctx, sessionID); err != nil {
			return err
		}
	}

	if opts.json {
		enc := json.NewEncoder(deps.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(presenter.ToWorkspaceResponse(w))
	}

	printMinutes(deps.Out, w)
	if opts.export {
		fmt.Fprintf(deps.Out, "\n%s\n", w.ExportStatus)
	}
	if opts.export && w.ExportStatus == entities.MsgExportFailed {
		return fmt.Errorf("export failed")
	}
	return nil
}

func printMinutes(out io.Writer, w *entities.Workspace) {
	fmt.Fprintf(out, "Overall Sentiment: %s\n", w.Result.OverallSentiment)
	fmt.Fprintf(out, "Topics: %s\n", strings.Join(w.Result.Topics, ", "))

	fmt.Fprintln(out, "\nDiscussion Points")
	for _, p := range w.Result.DiscussionPoints {
		fmt.Fprintf(out, "  [%d] %s\n      %s\n", p.ID, p.Topic, p.Summary)
	}

	fmt.Fprintln(out, "\nAction Items")
	for _, a := range w.Result.ActionItems {
		fmt.Fprintf(out, "  [%d] Task: %s\n      Owner: %s\n      Deadline: %s\n", a.ID, a.Task, a.Owners(), a.DeadlineOrNA())
	}

	if len(w.Chat) > 0 {
		fmt.Fprintln(out, "\nChat")
		for _, m := range w.Chat {
			fmt.Fprintf(out, "  %s: %s\n", m.Role, m.Content)
		}
	}
}
