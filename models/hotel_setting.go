package models

// HotelProfile carries the branding printed on screens and receipts.
type HotelProfile struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Handle   string `json:"handle"`
	Currency string `json:"currency"`
}
