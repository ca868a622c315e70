package locale

import "testing"

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		name string
		tz   string
		want string
	}{
		{name: "india", tz: "Asia/Kolkata", want: "IN"},
		{name: "legacy india alias", tz: "Asia/Calcutta", want: "IN"},
		{name: "case insensitive", tz: "asia/dubai", want: "AE"},
		{name: "uk", tz: "Europe/London", want: "GB"},
		{name: "us pacific", tz: "America/Los_Angeles", want: "US"},
		{name: "unknown zone", tz: "Antarctica/Troll", want: DefaultRegion},
		{name: "empty", tz: "", want: DefaultRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectRegion(tt.tz); got != tt.want {
				t.Errorf("DetectRegion(%q) = %q, want %q", tt.tz, got, tt.want)
			}
		})
	}
}

func TestCountriesAreConsistent(t *testing.T) {
	for code, c := range Countries {
		if c.Code != code {
			t.Errorf("country %q has Code %q", code, c.Code)
		}
		if c.CallingCode == "" {
			t.Errorf("country %q has no calling code", code)
		}
		if DetectRegion(c.DefaultTimezone) != code {
			t.Errorf("default timezone %q of %q does not map back", c.DefaultTimezone, code)
		}
	}
}
