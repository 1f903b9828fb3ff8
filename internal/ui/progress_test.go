package ui

import (
	"strings"
	"testing"

	"fsdc/internal/driver"
)

func TestApplyEventCountsFinishedFiles(t *testing.T) {
	m := NewProgressModel("checking", []string{"a.fsd", "b.fsd"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.fsd", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "a.fsd", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "a.fsd", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.fsd", Stage: driver.StageLoad, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.fsd", Stage: driver.StageParse, Status: driver.StatusDone})

	if m.finished != 2 || m.failed != 1 {
		t.Fatalf("finished %d, failed %d", m.finished, m.failed)
	}
	if m.items[0].status != "done" || m.items[1].status != "error" {
		t.Fatalf("statuses: %+v", m.items)
	}
	view := m.View()
	if !strings.Contains(view, "checking 2/2, 1 with errors") {
		t.Errorf("header missing from view:\n%s", view)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		stage  driver.Stage
		status driver.Status
		want   string
	}{
		{driver.StageLoad, driver.StatusQueued, "queued"},
		{driver.StageLoad, driver.StatusWorking, "loading"},
		{driver.StageParse, driver.StatusWorking, "parsing"},
		{driver.StageParse, driver.StatusError, "error"},
		{driver.StageParse, driver.Status("odd"), ""},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.stage, tt.status); got != tt.want {
			t.Errorf("statusLabel(%s, %s) = %q, want %q", tt.stage, tt.status, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("definitions/api.fsd", 10); got != "defi..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}
