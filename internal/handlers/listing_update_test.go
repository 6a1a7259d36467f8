package handlers

import (
	"testing"

	"backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestResolveListingUpdatePriceChangeResetsApprovedListing(t *testing.T) {
	existing := models.Product{Price: 100, Quantity: 5, Status: models.ProductStatusApproved, IsPublished: true}

	result, err := resolveListingUpdate(existing, listingUpdateInput{Price: floatPtr(120)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ResetForReview {
		t.Fatal("price change on approved listing must fire the re-review gate")
	}
	if result.Price != 120 {
		t.Fatalf("price = %v, want 120", result.Price)
	}
}

func TestResolveListingUpdateQuantityOnlyDoesNotReset(t *testing.T) {
	existing := models.Product{Price: 100, Quantity: 5, Status: models.ProductStatusApproved}

	result, err := resolveListingUpdate(existing, listingUpdateInput{Quantity: intPtr(50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ResetForReview {
		t.Fatal("quantity-only edit must not fire the re-review gate")
	}
	if result.Quantity != 50 {
		t.Fatalf("quantity = %v, want 50", result.Quantity)
	}
}

func TestResolveListingUpdateSamePriceDoesNotReset(t *testing.T) {
	existing := models.Product{Price: 100, Status: models.ProductStatusApproved}

	result, err := resolveListingUpdate(existing, listingUpdateInput{Price: floatPtr(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ResetForReview {
		t.Fatal("writing the unchanged price must not fire the re-review gate")
	}
}

func TestResolveListingUpdatePendingListingNeverResets(t *testing.T) {
	existing := models.Product{Price: 100, Status: models.ProductStatusPending}

	result, err := resolveListingUpdate(existing, listingUpdateInput{Price: floatPtr(90)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ResetForReview {
		t.Fatal("pending listing is already awaiting review")
	}
}

func TestResolveListingUpdateValidation(t *testing.T) {
	existing := models.Product{Price: 100, Quantity: 5}

	if _, err := resolveListingUpdate(existing, listingUpdateInput{Price: floatPtr(0)}); err == nil {
		t.Fatal("expected error for zero price")
	}
	if _, err := resolveListingUpdate(existing, listingUpdateInput{Quantity: intPtr(-1)}); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}
