package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2024, time.March, 5, 17, 42, 0, 0, time.UTC))
	if got != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got: %s", got)
	}
}

func TestMonthKey(t *testing.T) {
	cases := map[time.Month]string{
		time.January:  "01",
		time.October:  "10",
		time.December: "12",
	}

	for month, want := range cases {
		got := MonthKey(time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC))
		if got != want {
			t.Errorf("expected %s for %s, got: %s", want, month, got)
		}
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got: %v", want, got)
	}

	if _, err := ParseDay("29/02/2024"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	keys := []string{"2023-01-01", "2023-06-15", "2023-12-31"}

	for _, key := range keys {
		d, err := ParseDay(key)
		if err != nil {
			t.Fatal(err)
		}

		if got := DayKey(d); got != key {
			t.Errorf("expected %s after round trip, got: %s", key, got)
		}
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, time.July, 9, 13, 37, 21, 500, time.UTC)

	start := RoundToStart(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("expected start of day, got: %v", start)
	}

	end := RoundToEnd(ts)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("expected end of day, got: %v", end)
	}

	if start.Day() != 9 || end.Day() != 9 {
		t.Error("expected the calendar day to be preserved")
	}
}

func TestDaysInYear(t *testing.T) {
	cases := map[int]int{
		2023: 365,
		2024: 366,
		2000: 366,
		1900: 365,
	}

	for year, want := range cases {
		if got := DaysInYear(year); got != want {
			t.Errorf("expected %d days in %d, got: %d", want, year, got)
		}
	}
}
