package model

import "time"

// Profile stores delivery/contact information for one user. A user has at
// most one profile; submissions after the first update it in place.
type Profile struct {
	UserID    int64
	FullName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Zipcode   string
	UpdatedAt time.Time
}

// DeliveryAddress renders the street address used on quotes.
func (p *Profile) DeliveryAddress() string {
	if p.Address2 == "" {
		return p.Address1
	}
	return p.Address1 + ", " + p.Address2
}
