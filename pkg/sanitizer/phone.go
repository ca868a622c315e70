package sanitizer

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone returns the E.164 form of phone, reading national numbers
// in the given region. Unparseable input yields "".
func NormalizePhone(phone, region string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, strings.ToUpper(region))
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.E164)
}

// WhatsAppDigits returns the number as wa.me expects it: country code and
// subscriber number, digits only. When the phone cannot be parsed the
// region's calling code is prefixed to whatever digits it contains.
func WhatsAppDigits(phone, region string) string {
	if e164 := NormalizePhone(phone, region); e164 != "" {
		return strings.TrimPrefix(e164, "+")
	}
	digits := Digits(phone)
	if code := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(region)); code != 0 {
		return strconv.Itoa(code) + digits
	}
	return digits
}
