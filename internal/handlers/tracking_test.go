package handlers

import (
	"testing"
	"time"

	"backend/internal/models"
)

func logAt(eventType string, minute int) models.TrackingLog {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return models.TrackingLog{Type: eventType, CreatedAt: base.Add(time.Duration(minute) * time.Minute)}
}

func TestActiveDayWindowPicksLatestStart(t *testing.T) {
	logs := []models.TrackingLog{
		logAt(models.TrackingEventDayStart, 0),
		logAt(models.TrackingEventDayEnd, 60),
		logAt(models.TrackingEventDayStart, 120),
		logAt(models.TrackingEventGPSPing, 130),
	}

	start, end := activeDayWindow(logs)
	if start == nil {
		t.Fatal("expected a start")
	}
	if start.CreatedAt != logs[2].CreatedAt {
		t.Fatalf("start = %v, want the later DAY_START", start.CreatedAt)
	}
	if end != nil {
		t.Fatalf("day still open, got end %v", end.CreatedAt)
	}
}

func TestActiveDayWindowPicksEarliestEndAfterStart(t *testing.T) {
	logs := []models.TrackingLog{
		logAt(models.TrackingEventDayEnd, 10), // stale end from a previous day
		logAt(models.TrackingEventDayStart, 20),
		logAt(models.TrackingEventDayEnd, 80),
		logAt(models.TrackingEventDayEnd, 90),
	}

	start, end := activeDayWindow(logs)
	if start == nil || end == nil {
		t.Fatal("expected a closed window")
	}
	if end.CreatedAt != logs[2].CreatedAt {
		t.Fatalf("end = %v, want the earliest DAY_END after start", end.CreatedAt)
	}
}

func TestActiveDayWindowNoStart(t *testing.T) {
	logs := []models.TrackingLog{
		logAt(models.TrackingEventGPSPing, 5),
		logAt(models.TrackingEventDayEnd, 10),
	}
	if start, _ := activeDayWindow(logs); start != nil {
		t.Fatal("no DAY_START means no active day")
	}
}

func TestWindowRouteBracketsPings(t *testing.T) {
	logs := []models.TrackingLog{
		logAt(models.TrackingEventGPSPing, 0), // before the window
		logAt(models.TrackingEventDayStart, 10),
		logAt(models.TrackingEventGPSPing, 20),
		logAt(models.TrackingEventVisitEnd, 30),
		logAt(models.TrackingEventDayEnd, 40),
		logAt(models.TrackingEventGPSPing, 50), // after the window
	}

	start, end := activeDayWindow(logs)
	route := windowRoute(logs, start, end)
	if len(route) != 2 {
		t.Fatalf("route has %d entries, want 2: %v", len(route), route)
	}
	if route[0].Type != models.TrackingEventGPSPing || route[1].Type != models.TrackingEventVisitEnd {
		t.Fatalf("unexpected route order: %v", route)
	}
}

func TestValidTrackingEvent(t *testing.T) {
	for _, eventType := range []string{"DAY_START", "GPS_PING", "VISIT_END", "DAY_END"} {
		if !validTrackingEvent(eventType) {
			t.Fatalf("expected %s to be valid", eventType)
		}
	}
	if validTrackingEvent("LUNCH_BREAK") {
		t.Fatal("unknown event type accepted")
	}
}
