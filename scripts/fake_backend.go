package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
)

// Serves canned minutes on the backend routes so the workspace can be run
// locally without the transcription service.
//
//	go run ./scripts -addr :8000
func main() {
	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, pkgai.HealthStatus{Status: "ok", Message: "Momentum AI Backend is running."})
	})

	e.POST("/process-meeting", func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "file is required")
		}
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "An internal error occurred during processing.")
		}
		defer src.Close()
		n, _ := io.Copy(io.Discard, src)

		deadline := "2024-07-01"
		return c.JSON(http.StatusOK, entities.MeetingResult{
			DiscussionPoints: []entities.DiscussionPoint{
				{ID: 1, Topic: "Budget", Summary: "Discussed Q3 budget"},
				{ID: 2, Topic: "Hiring", Summary: fmt.Sprintf("Reviewed open roles (recording %s, %d bytes)", fh.Filename, n)},
			},
			ActionItems: []entities.ActionItem{
				{ID: 3, Task: "Send budget deck", Owner: []string{"Alice", "Bob"}, Deadline: &deadline},
				{ID: 4, Task: "Post job ads", Owner: []string{"Carol"}},
			},
			OverallSentiment: "positive",
			Topics:           []string{"budget", "hiring"},
			Transcript:       "Alice: let's approve the Q3 budget. Bob: agreed, I'll send the deck by July first.",
		})
	})

	e.POST("/export-to-notion", func(c echo.Context) error {
		var minutes entities.Minutes
		if err := c.Bind(&minutes); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export to Notion.")
		}
		log.Printf("export: %d discussion points, %d action items", len(minutes.DiscussionPoints), len(minutes.ActionItems))
		return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "Successfully exported to Notion!"})
	})

	e.POST("/chat", func(c echo.Context) error {
		var req pkgai.ChatRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get an answer from the AI.")
		}
		return c.JSON(http.StatusOK, pkgai.ChatResponse{
			Answer: fmt.Sprintf("The transcript has %d characters. You asked: %s", len(req.Transcript), req.Question),
		})
	})

	log.Fatal(e.Start(*addr))
}
