package handlers

import (
	"context"
	"testing"

	"backend/internal/models"
)

func TestGSTVerdict(t *testing.T) {
	status, legalName := gstVerdict(GSTResult{Valid: true, LegalName: "ACME BEARINGS PVT LTD"})
	if status != models.GSTStatusVerified || legalName != "ACME BEARINGS PVT LTD" {
		t.Fatalf("valid result: got %s %q", status, legalName)
	}

	status, legalName = gstVerdict(GSTResult{Valid: false, LegalName: "LEFTOVER NAME"})
	if status != models.GSTStatusFailed {
		t.Fatalf("invalid result: got %s", status)
	}
	if legalName != "" {
		t.Fatalf("failed verdict must clear the legal name, got %q", legalName)
	}

	if status == models.GSTStatusPending {
		t.Fatal("a registry verdict must never leave the profile pending")
	}
}

func TestStubGSTVerifierChecksLength(t *testing.T) {
	stub := StubGSTVerifier{}

	result, err := stub.Verify(context.Background(), "29ABCDE1234F1Z5")
	if err != nil || !result.Valid {
		t.Fatalf("well-formed gstin rejected: %+v err=%v", result, err)
	}

	result, err = stub.Verify(context.Background(), "TOO-SHORT")
	if err != nil {
		t.Fatalf("malformed gstin must be a Valid=false result, not an error: %v", err)
	}
	if result.Valid {
		t.Fatal("malformed gstin accepted")
	}
}
