package logger

import "testing"

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", 7, "cron_secret", "s3cr3t", "Authorization", "Bearer x", "dangling"})

	if len(out) != 7 {
		t.Fatalf("Expected 7 values, got %d", len(out))
	}
	if out[1] != 7 {
		t.Errorf("Expected user_id to pass through, got %v", out[1])
	}
	if out[3] != "[REDACTED]" {
		t.Errorf("Expected cron_secret to be redacted, got %v", out[3])
	}
	if out[5] != "[REDACTED]" {
		t.Errorf("Expected Authorization to be redacted, got %v", out[5])
	}
	if out[6] != "dangling" {
		t.Errorf("Expected dangling key to be kept, got %v", out[6])
	}
}
