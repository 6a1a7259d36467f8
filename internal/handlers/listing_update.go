package handlers

import (
	"fmt"

	"backend/internal/models"
)

type listingUpdateInput struct {
	Price    *float64
	Quantity *int
	SKU      *string
}

type listingUpdateResult struct {
	Price          float64
	Quantity       int
	SKU            string
	ResetForReview bool
}

// resolveListingUpdate merges a partial update onto a listing and decides
// whether the re-review gate fires. A price change on an APPROVED listing
// resets it to PENDING/unpublished; quantity or SKU changes alone do not.
func resolveListingUpdate(existing models.Product, input listingUpdateInput) (listingUpdateResult, error) {
	result := listingUpdateResult{
		Price:    existing.Price,
		Quantity: existing.Quantity,
		SKU:      existing.SKU,
	}

	if input.Price != nil {
		if *input.Price <= 0 {
			return listingUpdateResult{}, fmt.Errorf("price must be greater than 0")
		}
		if *input.Price != existing.Price &&
			models.NormalizeStatus(existing.Status) == models.ProductStatusApproved {
			result.ResetForReview = true
		}
		result.Price = *input.Price
	}

	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return listingUpdateResult{}, fmt.Errorf("quantity cannot be negative")
		}
		result.Quantity = *input.Quantity
	}

	if input.SKU != nil {
		result.SKU = *input.SKU
	}

	return result, nil
}
