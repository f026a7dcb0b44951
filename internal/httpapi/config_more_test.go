package httpapi

import (
	"testing"

	"notifyd/internal/config"
)

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != config.DefaultMaxBodyBytes {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != config.DefaultMaxBodyBytes {
		t.Fatalf("expected default 1MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetMaxBodyBytes_PositiveSetsValue(t *testing.T) {
	SetMaxBodyBytes(1234)
	defer SetMaxBodyBytes(0)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
}

func TestSetCORSOptions_CopiesSlices(t *testing.T) {
	origins := []string{"http://a"}
	SetCORSOptions(true, origins, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)
	origins[0] = "http://changed"
	if !corsEnabled || corsAllowedOrigins[0] != "http://a" {
		t.Fatalf("unexpected cors state: %v %v", corsEnabled, corsAllowedOrigins)
	}
}

func TestCORSOptions_ReflectsSettings(t *testing.T) {
	SetCORSOptions(true, []string{"http://dash"}, []string{"POST"}, []string{"Content-Type"})
	defer SetCORSOptions(false, nil, nil, nil)
	o := corsOptions()
	if len(o.AllowedOrigins) != 1 || o.AllowedOrigins[0] != "http://dash" { t.Fatalf("origins=%v", o.AllowedOrigins) }
	if len(o.AllowedMethods) != 1 || o.AllowedMethods[0] != "POST" { t.Fatalf("methods=%v", o.AllowedMethods) }
	if o.MaxAge != 300 { t.Fatalf("max age=%d", o.MaxAge) }
}
