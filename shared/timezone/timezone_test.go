package timezone_test

import (
	"hotelos/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	late := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)

	got := timezone.DateOf(late)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := timezone.ParseDate("2024-06-05")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if !got.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate() = %v", got)
	}

	if _, err := timezone.ParseDate("05/06/2024"); err == nil {
		t.Error("ParseDate() accepted a non ISO date")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Location() != time.UTC {
		t.Errorf("Today() is not a UTC midnight: %v", today)
	}
}
