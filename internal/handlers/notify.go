package handlers

import (
	"context"
	"log"
)

// Notifier is the contract to the external notification delivery service.
// Every call site is best-effort: failures are logged and never propagated
// into the transition that triggered them.
type Notifier interface {
	NotifyOrderStatus(ctx context.Context, orderID, status string, recipients []string) error
	NotifyDispatchCode(ctx context.Context, orderItemID, code, customerID string) error
	NotifyComplaintUpdate(ctx context.Context, complaintID, status string, recipients []string) error
}

// LogNotifier writes notifications to the service log. Stands in for the
// push/email delivery collaborator.
type LogNotifier struct{}

func (LogNotifier) NotifyOrderStatus(_ context.Context, orderID, status string, recipients []string) error {
	log.Printf("[NOTIFY] [INFO] order %s status %s -> %d recipients", orderID, status, len(recipients))
	return nil
}

func (LogNotifier) NotifyDispatchCode(_ context.Context, orderItemID, code, customerID string) error {
	log.Printf("[NOTIFY] [INFO] dispatch code for item %s sent to customer %s", orderItemID, customerID)
	_ = code // never logged, it doubles as the delivery confirmation secret
	return nil
}

func (LogNotifier) NotifyComplaintUpdate(_ context.Context, complaintID, status string, recipients []string) error {
	log.Printf("[NOTIFY] [INFO] complaint %s status %s -> %d recipients", complaintID, status, len(recipients))
	return nil
}

// notifyBestEffort runs a notification call and swallows its error.
func notifyBestEffort(route string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("[%s] notification failed (ignored): %v", route, err)
	}
}
