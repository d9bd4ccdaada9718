package dto

// QuoteForm describes the fuel quote form payload. Client-supplied price or
// total fields are deliberately absent; pricing is server side only.
type QuoteForm struct {
	GallonsRequested float64 `form:"gallonsRequested"`
	DeliveryDate     string  `form:"deliveryDate"`
}

// QuotePrefill describes the pre-filled quote form.
type QuotePrefill struct {
	DeliveryAddress string  `json:"deliveryAddress"`
	PricePerGallon  float64 `json:"pricePerGallon"`
	Flash           string  `json:"flash,omitempty"`
}

// QuoteResponse describes one quote history entry.
type QuoteResponse struct {
	GallonsRequested float64 `json:"gallonsRequested"`
	DeliveryAddress  string  `json:"deliveryAddress"`
	DeliveryDate     string  `json:"deliveryDate"`
	PricePerGallon   float64 `json:"pricePerGallon"`
	TotalDue         float64 `json:"totalAmountDue"`
}
