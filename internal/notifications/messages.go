package notifications

import (
	"fmt"
	"time"

	"studio/pkg/currency"
	"studio/pkg/model"
)

// Studio is what messages say about the sender.
type Studio struct {
	Name          string
	Phone         string
	PublicBaseURL string
}

func displayDate(date string) string {
	t, err := time.Parse(model.EventDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("2 Jan 2006")
}

func confirmationMessage(s Studio, name, packageName, eventDate, bookingID string, advance int64, status model.BookingStatus) string {
	payment := fmt.Sprintf("Advance received: %s.", currency.FormatINR(advance))
	if status == model.StatusPending {
		payment = fmt.Sprintf("Your booking is held until the advance of %s is received.", currency.FormatINR(advance))
	}
	return fmt.Sprintf("Hi %s, thank you for booking the %s with %s for %s. %s Invoice: %s/invoice/%s",
		name, packageName, s.Name, displayDate(eventDate), payment, s.PublicBaseURL, bookingID)
}

func paymentReceivedMessage(s Studio, name, eventDate string, advance int64) string {
	return fmt.Sprintf("Hi %s, we have received your advance of %s for %s. - %s",
		name, currency.FormatINR(advance), displayDate(eventDate), s.Name)
}

func confirmedMessage(s Studio, name, packageName, eventDate string) string {
	return fmt.Sprintf("Hi %s, your %s booking for %s is confirmed. See you there! - %s",
		name, packageName, displayDate(eventDate), s.Name)
}

func cancelledMessage(s Studio, name, packageName, eventDate string) string {
	return fmt.Sprintf("Hi %s, your %s booking for %s has been cancelled. Call us on %s with any questions. - %s",
		name, packageName, displayDate(eventDate), s.Phone, s.Name)
}

func reminderMessage(s Studio, name, packageName, eventDate string) string {
	return fmt.Sprintf("Hi %s, a reminder that your %s shoot with %s is tomorrow, %s.",
		name, packageName, s.Name, displayDate(eventDate))
}
