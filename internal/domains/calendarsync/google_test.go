package calendarsync

import (
	"testing"
	"time"

	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/task"
)

func TestTaskEventInputUsesDueDate(t *testing.T) {
	due := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	item := task.NewTask(task.CreateTaskRequest{Title: "請求書を送る", Description: "4月分", DueDate: &due})

	input := taskEventInput(item, now)
	if input.Summary != "請求書を送る" {
		t.Errorf("Expected title as summary, got %q", input.Summary)
	}
	if !input.Start.Equal(due) || !input.End.Equal(due) {
		t.Errorf("Expected start and end at the due date, got %v to %v", input.Start, input.End)
	}
	if input.AllDay {
		t.Error("Expected task entries to be timed")
	}
}

func TestTaskEventInputFallsBackToNow(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	item := task.NewTask(task.CreateTaskRequest{Title: "期限なし"})

	input := taskEventInput(item, now)
	if !input.Start.Equal(now) {
		t.Errorf("Expected start at now, got %v", input.Start)
	}
	if input.End.Sub(input.Start) != time.Hour {
		t.Errorf("Expected a one hour window, got %v", input.End.Sub(input.Start))
	}
}

func TestEventInputKeepsAllDayFlag(t *testing.T) {
	start := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	item := event.NewImported("g-x", "休暇", "", start, end, true)

	input := eventInput(item)
	if !input.AllDay {
		t.Error("Expected all-day flag to carry over")
	}
	if !input.Start.Equal(start) || !input.End.Equal(end) {
		t.Errorf("Expected dates to carry over, got %v to %v", input.Start, input.End)
	}
}
