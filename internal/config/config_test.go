package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PENDING_STATUS_ID", "7")
	t.Setenv("RANKING_TOP_N", "3")
	t.Setenv("TIMEZONE", "UTC")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PendingStatusID != 7 {
		t.Fatalf("expected pending status 7, got %d", cfg.PendingStatusID)
	}
	if cfg.RankingTopN != 3 {
		t.Fatalf("expected top 3, got %d", cfg.RankingTopN)
	}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC location")
	}
}

func TestLocationFallback(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC fallback")
	}
}

func TestUnknownTimezone(t *testing.T) {
	cases := map[string]bool{
		"":                 false,
		"UTC":              false,
		"America/Santiago": false,
		"Not/AZone":        true,
	}
	for tz, want := range cases {
		if got := (Config{Timezone: tz}).UnknownTimezone(); got != want {
			t.Fatalf("%q: expected %v, got %v", tz, want, got)
		}
	}
}
