// Package whatsapp builds click-to-chat links.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link returns https://wa.me/<digits>?text=<text>. Spaces are encoded as
// %20 because some WhatsApp clients show '+' literally.
func Link(digits, text string) string {
	link := baseURL + digits
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
