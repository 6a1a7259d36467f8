package config

import "testing"

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "Ops@Example.com, second@example.com ,,")
	Load()

	if !AppEnv.IsAdminEmail("ops@example.com") {
		t.Fatal("allow-list match should be case-insensitive")
	}
	if !AppEnv.IsAdminEmail(" SECOND@EXAMPLE.COM ") {
		t.Fatal("allow-list match should trim whitespace")
	}
	if AppEnv.IsAdminEmail("intruder@example.com") {
		t.Fatal("unlisted email accepted")
	}
	if AppEnv.IsAdminEmail("") {
		t.Fatal("empty email accepted")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRACKING_DB_NAME", "")
	t.Setenv("DEFAULT_PAGE_SIZE", "not-a-number")
	Load()

	if AppEnv.TrackingDBName != "partsmarket_tracking" {
		t.Fatalf("tracking db default = %q", AppEnv.TrackingDBName)
	}
	if AppEnv.DefaultPageSize != 20 {
		t.Fatalf("page size default = %d", AppEnv.DefaultPageSize)
	}
}
