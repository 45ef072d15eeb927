package models

import (
	"strings"
	"time"
)

// GuestRecord is one guest's registration card. It travels through the
// wizard steps while in progress and is stored as-is in the local record
// store once signed.
type GuestRecord struct {
	// assigned on first persist; absent while in progress
	ID string `json:"id,omitempty"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Cellphone   string `json:"cellphone"`
	Nationality string `json:"nationality"`
	Birthday    string `json:"birthday"`

	TravelingFrom string `json:"travelingFrom"`
	TravelingNext string `json:"travelingNext"`

	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`

	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	Signature  string     `json:"signature,omitempty"`

	// data URL of the photographed ID document, if capture succeeded
	IDPhoto string `json:"idPhoto,omitempty"`
}

// FullName is "first last" with surrounding blanks trimmed.
func (g GuestRecord) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(g.FirstName) + " " + strings.TrimSpace(g.LastName))
}

// IsSigned reports whether the record carries both halves of a signature.
func (g GuestRecord) IsSigned() bool {
	return g.AcceptedAt != nil && g.Signature != ""
}

// IsPersisted reports whether the record has been written to the store.
func (g GuestRecord) IsPersisted() bool {
	return g.ID != ""
}

// Sign sets signature and acceptance time together.
func (g *GuestRecord) Sign(signature string, at time.Time) {
	t := at
	g.Signature = signature
	g.AcceptedAt = &t
}

// Folio is the short registration number printed on receipts.
func (g GuestRecord) Folio() string {
	id := g.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// Clone returns a copy that shares no pointers with g.
func (g GuestRecord) Clone() GuestRecord {
	out := g
	if g.AcceptedAt != nil {
		t := *g.AcceptedAt
		out.AcceptedAt = &t
	}
	return out
}

// GuestPatch is a partial update of the editable text/date fields. Nil
// pointers leave the field untouched.
type GuestPatch struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Cellphone     *string `json:"cellphone,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Birthday      *string `json:"birthday,omitempty"`
	TravelingFrom *string `json:"travelingFrom,omitempty"`
	TravelingNext *string `json:"travelingNext,omitempty"`
	CheckInDate   *string `json:"checkInDate,omitempty"`
	CheckOutDate  *string `json:"checkOutDate,omitempty"`
}

// Apply copies every set field of p onto g.
func (p GuestPatch) Apply(g *GuestRecord) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&g.FirstName, p.FirstName)
	set(&g.LastName, p.LastName)
	set(&g.Email, p.Email)
	set(&g.Cellphone, p.Cellphone)
	set(&g.Nationality, p.Nationality)
	set(&g.Birthday, p.Birthday)
	set(&g.TravelingFrom, p.TravelingFrom)
	set(&g.TravelingNext, p.TravelingNext)
	set(&g.CheckInDate, p.CheckInDate)
	set(&g.CheckOutDate, p.CheckOutDate)
}

// IsEmpty reports whether the patch sets nothing.
func (p GuestPatch) IsEmpty() bool {
	return p == GuestPatch{}
}
