package timezone_test

import (
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/shared/timezone"
)

func TestSetupFallsBackToUTC(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Not/AZone"

	timezone.Setup(cfg)

	if timezone.GetLocation() != time.UTC {
		t.Errorf("expected UTC fallback, got %s", timezone.GetLocation())
	}
}

func TestSetupLoadsLocation(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Asia/Yangon"

	timezone.Setup(cfg)
	defer timezone.Setup(&config.Config{})

	if timezone.GetLocation().String() != "Asia/Yangon" {
		t.Errorf("expected Asia/Yangon, got %s", timezone.GetLocation())
	}

	if timezone.Now().Location().String() != "Asia/Yangon" {
		t.Error("expected Now() in configured location")
	}
}

func TestFormatAndParse(t *testing.T) {
	timezone.Setup(&config.Config{})

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := timezone.Format(testTime, "2006-01-02 15:04"); got != "2024-01-01 12:00" {
		t.Errorf("unexpected format %q", got)
	}

	if got := timezone.Format(time.Time{}, time.RFC3339); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !parsed.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected parse result %s", parsed)
	}
}
