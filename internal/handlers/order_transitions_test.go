package handlers

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/models"
)

func item(id, vendorID, status string) models.OrderItem {
	return models.OrderItem{ID: id, VendorID: vendorID, Status: status}
}

func TestPlanVendorTransitionAccept(t *testing.T) {
	items := []models.OrderItem{
		item("a", "v1", models.ItemStatusPending),
		item("b", "v1", models.ItemStatusPending),
		item("c", "v2", models.ItemStatusPending),
	}

	plan, err := planVendorTransition(items, "v1", VendorActionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusProcessing, plan.NextStatus)
	assert.ElementsMatch(t, []string{"a", "b"}, plan.ItemIDs)
}

func TestPlanVendorTransitionRejectSkipsImmutableItems(t *testing.T) {
	items := []models.OrderItem{
		item("a", "v1", models.ItemStatusShipped),
		item("b", "v1", models.ItemStatusDelivered),
		item("c", "v1", models.ItemStatusPending),
	}

	plan, err := planVendorTransition(items, "v1", VendorActionReject)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusRejected, plan.NextStatus)
	assert.Equal(t, []string{"c"}, plan.ItemIDs)
}

func TestPlanVendorTransitionNoVendorItems(t *testing.T) {
	items := []models.OrderItem{item("a", "v2", models.ItemStatusPending)}

	_, err := planVendorTransition(items, "v1", VendorActionAccept)
	var notFound NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError, got %v", err)
}

func TestPlanVendorTransitionAllImmutable(t *testing.T) {
	items := []models.OrderItem{
		item("a", "v1", models.ItemStatusShipped),
		item("b", "v1", models.ItemStatusDelivered),
	}

	_, err := planVendorTransition(items, "v1", VendorActionAccept)
	var conflict ConflictError
	require.True(t, errors.As(err, &conflict), "expected ConflictError, got %v", err)
}

func TestPlanVendorTransitionInvalidAction(t *testing.T) {
	items := []models.OrderItem{item("a", "v1", models.ItemStatusPending)}

	_, err := planVendorTransition(items, "v1", "SHIP")
	var validation ValidationError
	require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
}

func TestCanIssueDispatchCode(t *testing.T) {
	allowed := []string{models.ItemStatusProcessing, models.ItemStatusShipped, models.ItemStatusReady}
	for _, status := range allowed {
		if !canIssueDispatchCode(status) {
			t.Fatalf("expected dispatch allowed for %s", status)
		}
	}
	denied := []string{models.ItemStatusPending, models.ItemStatusDelivered, models.ItemStatusRejected, models.ItemStatusComplaint}
	for _, status := range denied {
		if canIssueDispatchCode(status) {
			t.Fatalf("expected dispatch denied for %s", status)
		}
	}
}

func TestResolveDispatchCodeIsIdempotent(t *testing.T) {
	existing := "123456"
	for i := 0; i < 10; i++ {
		assert.Equal(t, "123456", resolveDispatchCode(&existing))
	}
}

func TestResolveDispatchCodeGeneratesWhenAbsent(t *testing.T) {
	empty := ""
	for _, existing := range []*string{nil, &empty} {
		code := resolveDispatchCode(existing)
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
	}
}

func TestNewDispatchCodeShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := newDispatchCode()
		require.Len(t, code, 6)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
