package whatsapp

import "testing"

func TestLink(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		text   string
		want   string
	}{
		{"no text", "919876543210", "", "https://wa.me/919876543210"},
		{"spaces", "919999999999", "Hi Asha, confirming", "https://wa.me/919999999999?text=Hi%20Asha%2C%20confirming"},
		{"ampersand and plus", "91", "A & B + C", "https://wa.me/91?text=A%20%26%20B%20%2B%20C"},
		{"rupee sign", "91", "₹5", "https://wa.me/91?text=%E2%82%B95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Link(tt.digits, tt.text); got != tt.want {
				t.Errorf("Link() = %q, want %q", got, tt.want)
			}
		})
	}
}
