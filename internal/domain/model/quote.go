package model

import "time"

// DateLayout is the calendar date format accepted for delivery dates.
const DateLayout = "2006-01-02"

// Quote is an immutable record of a fuel price calculation for one delivery
// request. The total is always computed server side from price and gallons.
type Quote struct {
	ID               int64
	UserID           int64
	GallonsRequested float64
	DeliveryAddress  string
	DeliveryDate     time.Time
	PricePerGallon   float64
	TotalDue         float64
	CreatedAt        time.Time
}
