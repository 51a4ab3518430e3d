package timeutil

import (
	"strings"
	"testing"
	"time"
)

func makeTime(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

// withNow pins the package clock for the duration of a test.
func withNow(t *testing.T, fixed time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })
}

func TestStartAndEndOfDay(t *testing.T) {
	in := makeTime(2024, time.March, 10, 14, 30, 45)

	start := StartOfDay(in)
	if !start.Equal(makeTime(2024, time.March, 10, 0, 0, 0)) {
		t.Errorf("StartOfDay() = %v", start)
	}
	end := EndOfDay(in)
	expected := makeTime(2024, time.March, 11, 0, 0, 0).Add(-time.Nanosecond)
	if !end.Equal(expected) {
		t.Errorf("EndOfDay() = %v, expected %v", end, expected)
	}
}

func TestIsInRange(t *testing.T) {
	start := makeTime(2024, time.January, 10, 0, 0, 0)
	end := EndOfDay(makeTime(2024, time.January, 12, 0, 0, 0))

	tests := []struct {
		name     string
		t        time.Time
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"inside", makeTime(2024, time.January, 11, 9, 0, 0), start, end, true},
		{"at start", start, start, end, true},
		{"at end", end, start, end, true},
		{"before", makeTime(2024, time.January, 9, 23, 59, 59), start, end, false},
		{"after", makeTime(2024, time.January, 13, 0, 0, 0), start, end, false},
		{"open start", makeTime(2020, time.January, 1, 0, 0, 0), time.Time{}, end, true},
		{"open end", makeTime(2030, time.January, 1, 0, 0, 0), start, time.Time{}, true},
		{"fully open", makeTime(2030, time.January, 1, 0, 0, 0), time.Time{}, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInRange(tt.t, tt.start, tt.end); got != tt.expected {
				t.Errorf("IsInRange() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	withNow(t, makeTime(2024, time.March, 1, 15, 0, 0))

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"iso", "2024-01-15", makeTime(2024, time.January, 15, 0, 0, 0)},
		{"leap day", "2024-02-29", makeTime(2024, time.February, 29, 0, 0, 0)},
		{"european", "15/01/2024", makeTime(2024, time.January, 15, 0, 0, 0)},
		{"today", "today", makeTime(2024, time.March, 1, 0, 0, 0)},
		{"today uppercase", "Today", makeTime(2024, time.March, 1, 0, 0, 0)},
		{"yesterday across month", "yesterday", makeTime(2024, time.February, 29, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDate_Errors(t *testing.T) {
	tests := []struct {
		input       string
		errContains string
	}{
		{"", "cannot be empty"},
		{"2024", "missing month and day"},
		{"2024-01", "missing day"},
		{"01-15", "missing year"},
		{"15/01", "missing year"},
		{"2024-01-15-01", "too many date parts"},
		{"2024-02-30", "invalid date format"},
		{"tomorrow", "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if err == nil {
				t.Fatalf("ParseDate(%q) expected error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestParseDateRangeFlags(t *testing.T) {
	withNow(t, makeTime(2024, time.January, 20, 10, 0, 0))

	tests := []struct {
		name          string
		from, to      string
		last          int
		expectedStart time.Time
		expectedEnd   time.Time
		errContains   string
	}{
		{
			name: "no flags",
		},
		{
			name:          "last 7 days",
			last:          7,
			expectedStart: makeTime(2024, time.January, 14, 0, 0, 0),
			expectedEnd:   EndOfDay(makeTime(2024, time.January, 20, 0, 0, 0)),
		},
		{
			name:          "from only",
			from:          "2024-01-10",
			expectedStart: makeTime(2024, time.January, 10, 0, 0, 0),
		},
		{
			name:          "from and to",
			from:          "2024-01-10",
			to:            "12/01/2024",
			expectedStart: makeTime(2024, time.January, 10, 0, 0, 0),
			expectedEnd:   EndOfDay(makeTime(2024, time.January, 12, 0, 0, 0)),
		},
		{
			name:        "last with from",
			from:        "2024-01-10",
			last:        3,
			errContains: "cannot use --last",
		},
		{
			name:        "negative last",
			last:        -1,
			errContains: "must be positive",
		},
		{
			name:        "bad from",
			from:        "nope",
			errContains: "invalid --from date",
		},
		{
			name:        "bad to",
			to:          "2024-13-01",
			errContains: "invalid --to date",
		},
		{
			name:        "reversed",
			from:        "2024-01-12",
			to:          "2024-01-10",
			errContains: "is after --to date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDateRangeFlags(tt.from, tt.to, tt.last)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.expectedStart) {
				t.Errorf("start = %v, expected %v", start, tt.expectedStart)
			}
			if !end.Equal(tt.expectedEnd) {
				t.Errorf("end = %v, expected %v", end, tt.expectedEnd)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	morning := makeTime(2024, time.January, 15, 9, 5, 0)
	evening := makeTime(2024, time.January, 15, 21, 30, 0)

	if got := FormatEntryTime(morning); got != "9:05 AM" {
		t.Errorf("FormatEntryTime(morning) = %q", got)
	}
	if got := FormatEntryTime(evening); got != "9:30 PM" {
		t.Errorf("FormatEntryTime(evening) = %q", got)
	}
	if got := FormatEntryTime(makeTime(2024, time.January, 15, 12, 0, 0)); got != "12:00 PM" {
		t.Errorf("FormatEntryTime(noon) = %q", got)
	}
	if got := FormatDayHeading(morning); got != "Monday, January 15, 2024" {
		t.Errorf("FormatDayHeading() = %q", got)
	}
	if got := FormatShortDate(makeTime(2024, time.March, 5, 0, 0, 0)); got != "Mar 05, 2024" {
		t.Errorf("FormatShortDate() = %q", got)
	}
}
