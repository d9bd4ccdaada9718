package dto

// ProfileForm describes the profile form payload. Field names follow the
// original form inputs.
type ProfileForm struct {
	FullName string `form:"fullName"`
	Address1 string `form:"address1"`
	Address2 string `form:"address2"`
	City     string `form:"city"`
	State    string `form:"state"`
	Zipcode  string `form:"zipcode"`
}

// ProfileResponse describes stored delivery information.
type ProfileResponse struct {
	FullName string `json:"fullName"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode"`
}

// ProfileDataResponse carries the delivery address prefill.
type ProfileDataResponse struct {
	DeliveryAddress string `json:"deliveryAddress"`
}
