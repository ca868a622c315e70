package model

const CurrencyINR = "INR"

type Invoice struct {
	Number     string        `json:"number"`
	BookingID  string        `json:"booking_id"`
	IssuedOn   string        `json:"issued_on"`
	EventDate  string        `json:"event_date"`
	BilledTo   InvoiceParty  `json:"billed_to"`
	Issuer     InvoiceIssuer `json:"issuer"`
	Status     BookingStatus `json:"status"`
	Paid       bool          `json:"paid"`
	Currency   string        `json:"currency"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   int64         `json:"subtotal"`
	Discount   int64         `json:"discount"`
	Total      int64         `json:"total"`
	BalanceDue int64         `json:"balance_due"`
	Notes      []string      `json:"notes"`
}

type InvoiceItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type InvoiceParty struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type InvoiceIssuer struct {
	Name    string   `json:"name"`
	Address []string `json:"address"`
	Phone   string   `json:"phone"`
}
