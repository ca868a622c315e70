package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{
			name:   "national mobile number",
			input:  "9999999999",
			region: "IN",
			want:   "+919999999999",
		},
		{
			name:   "with spaces",
			input:  "98765 43210",
			region: "IN",
			want:   "+919876543210",
		},
		{
			name:   "with dashes",
			input:  "98765-43210",
			region: "IN",
			want:   "+919876543210",
		},
		{
			name:   "already international",
			input:  "+91 98765 43210",
			region: "IN",
			want:   "+919876543210",
		},
		{
			name:   "foreign number keeps its own country code",
			input:  "+1 (212) 555-1234",
			region: "IN",
			want:   "+12125551234",
		},
		{
			name:   "lower case region",
			input:  "9876543210",
			region: "in",
			want:   "+919876543210",
		},
		{
			name:   "empty string",
			input:  "",
			region: "IN",
			want:   "",
		},
		{
			name:   "only whitespace",
			input:  "   ",
			region: "IN",
			want:   "",
		},
		{
			name:   "letters only",
			input:  "call me",
			region: "IN",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, tt.region)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}

func TestWhatsAppDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "parseable national number",
			input: "9999999999",
			want:  "919999999999",
		},
		{
			name:  "parseable international number",
			input: "+91 98765 43210",
			want:  "919876543210",
		},
		{
			name:  "unparseable falls back to calling code plus digits",
			input: "ph: x",
			want:  "91",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WhatsAppDigits(tt.input, "IN")
			if got != tt.want {
				t.Errorf("WhatsAppDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
