package models

import (
	"encoding/json"
	"testing"
)

func TestProductSpecsUnmarshalKeepsUnknownKeys(t *testing.T) {
	raw := `{"commissionPercent":12.5,"model":"BRG-6204","voltage":"220V","certifications":["ISI"]}`

	var specs ProductSpecs
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if specs.CommissionPercent != 12.5 {
		t.Fatalf("commissionPercent = %v, want 12.5", specs.CommissionPercent)
	}
	if specs.Model != "BRG-6204" {
		t.Fatalf("model = %q", specs.Model)
	}
	if specs.Extra["voltage"] != "220V" {
		t.Fatalf("voltage not preserved: %v", specs.Extra)
	}
	if _, ok := specs.Extra["commissionPercent"]; ok {
		t.Fatal("known key leaked into the remainder bucket")
	}
}

func TestProductSpecsRoundTrip(t *testing.T) {
	original := ProductSpecs{
		CommissionPercent: 5,
		Features:          "sealed, pre-greased",
		Extra:             map[string]interface{}{"weightKg": 0.12},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded ProductSpecs
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.CommissionPercent != 5 || decoded.Features != original.Features {
		t.Fatalf("typed fields lost: %+v", decoded)
	}
	if decoded.Extra["weightKg"] != 0.12 {
		t.Fatalf("remainder lost: %v", decoded.Extra)
	}
}

func TestProductSpecsScanNull(t *testing.T) {
	var specs ProductSpecs
	if err := specs.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if specs.CommissionPercent != 0 {
		t.Fatalf("expected zero specs, got %+v", specs)
	}
}
