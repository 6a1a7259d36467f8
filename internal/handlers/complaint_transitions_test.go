package handlers

import (
	"testing"

	"backend/internal/models"
)

// The vendor and admin complaint-to-item mappings have always disagreed.
// These tests pin each one independently so any attempt to unify them shows
// up as a diff here first.

func TestVendorComplaintItemMapping(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{VendorComplaintActionInReview, models.ItemStatusComplaintReview},
		{VendorComplaintActionResolved, models.ItemStatusComplaintResolved},
		{VendorComplaintActionRejectOrder, models.ItemStatusRejected},
	}
	for _, tt := range tests {
		if got := vendorComplaintItemStatus[tt.action]; got != tt.want {
			t.Fatalf("vendor map[%s] = %q, want %q", tt.action, got, tt.want)
		}
	}
	if len(vendorComplaintItemStatus) != 3 {
		t.Fatalf("vendor map has %d entries, want 3", len(vendorComplaintItemStatus))
	}
}

func TestAdminComplaintItemMapping(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{models.ComplaintStatusResolved, models.ItemStatusComplaintResolved},
		{models.ComplaintStatusInReview, models.ItemStatusComplaintReview},
		{models.ComplaintStatusOpen, models.ItemStatusComplaint},
	}
	for _, tt := range tests {
		if got := adminComplaintItemStatus[tt.status]; got != tt.want {
			t.Fatalf("admin map[%s] = %q, want %q", tt.status, got, tt.want)
		}
	}
	if len(adminComplaintItemStatus) != 3 {
		t.Fatalf("admin map has %d entries, want 3", len(adminComplaintItemStatus))
	}
	if _, ok := adminComplaintItemStatus[models.ComplaintStatusOrderRejected]; ok {
		t.Fatal("admin map must not handle ORDER_REJECTED; that is vendor-path behavior")
	}
}

func TestVendorActionComplaintStatus(t *testing.T) {
	if vendorActionComplaintStatus[VendorComplaintActionRejectOrder] != models.ComplaintStatusOrderRejected {
		t.Fatal("REJECT_ORDER must map to ORDER_REJECTED")
	}
	if _, ok := vendorActionComplaintStatus["CLOSE"]; ok {
		t.Fatal("vendors cannot close complaints directly")
	}
}

func TestCanRequestClosure(t *testing.T) {
	open := []string{models.ComplaintStatusOpen, models.ComplaintStatusInReview, "open"}
	for _, status := range open {
		if !canRequestClosure(status) {
			t.Fatalf("expected closure allowed from %s", status)
		}
	}
	closed := []string{
		models.ComplaintStatusClosureRequested,
		models.ComplaintStatusResolved,
		models.ComplaintStatusClosed,
		models.ComplaintStatusRejected,
	}
	for _, status := range closed {
		if canRequestClosure(status) {
			t.Fatalf("expected closure denied from %s", status)
		}
	}
}

func TestMergeComplaintImages(t *testing.T) {
	images := mergeComplaintImages(" legacy.jpg ", []string{"a.jpg", "", "b.jpg"})
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %v", images)
	}
	if images[2] != "legacy.jpg" {
		t.Fatalf("legacy scalar should append last, got %v", images)
	}

	if got := mergeComplaintImages("", nil); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
