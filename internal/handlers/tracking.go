package handlers

import "backend/internal/models"

// activeDayWindow reconstructs the current working window from an append-only
// event log: the latest DAY_START, then the earliest DAY_END after it. A
// missing end means the day is still open.
func activeDayWindow(logs []models.TrackingLog) (start *models.TrackingLog, end *models.TrackingLog) {
	for i := range logs {
		entry := &logs[i]
		if entry.Type != models.TrackingEventDayStart {
			continue
		}
		if start == nil || entry.CreatedAt.After(start.CreatedAt) {
			start = entry
		}
	}
	if start == nil {
		return nil, nil
	}

	for i := range logs {
		entry := &logs[i]
		if entry.Type != models.TrackingEventDayEnd {
			continue
		}
		if !entry.CreatedAt.After(start.CreatedAt) {
			continue
		}
		if end == nil || entry.CreatedAt.Before(end.CreatedAt) {
			end = entry
		}
	}
	return start, end
}

// windowRoute returns the pings and visit marks bracketed by the window.
func windowRoute(logs []models.TrackingLog, start, end *models.TrackingLog) []models.TrackingLog {
	route := make([]models.TrackingLog, 0, len(logs))
	if start == nil {
		return route
	}
	for _, entry := range logs {
		if entry.Type != models.TrackingEventGPSPing && entry.Type != models.TrackingEventVisitEnd {
			continue
		}
		if entry.CreatedAt.Before(start.CreatedAt) {
			continue
		}
		if end != nil && entry.CreatedAt.After(end.CreatedAt) {
			continue
		}
		route = append(route, entry)
	}
	return route
}

func validTrackingEvent(eventType string) bool {
	switch eventType {
	case models.TrackingEventDayStart,
		models.TrackingEventGPSPing,
		models.TrackingEventVisitEnd,
		models.TrackingEventDayEnd:
		return true
	}
	return false
}
