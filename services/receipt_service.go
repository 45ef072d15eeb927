package services

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"hotel-checkin/i18n"
	"hotel-checkin/models"
	"hotel-checkin/utils"
)

// AcceptedAtLayout is how the signing time is printed.
const AcceptedAtLayout = "2006-01-02 15:04"

type ReceiptField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReceiptView is everything the receipt page shows, already resolved to
// one language.
type ReceiptView struct {
	Lang       string              `json:"lang"`
	Hotel      models.HotelProfile `json:"hotel"`
	ID         string              `json:"id"`
	Folio      string              `json:"folio"`
	GuestName  string              `json:"guestName"`
	AcceptedAt string              `json:"acceptedAt"`

	Guest []ReceiptField `json:"guest"`
	Stay  []ReceiptField `json:"stay"`

	IDPhoto   string `json:"idPhoto,omitempty"`
	Signature string `json:"signature,omitempty"`

	Rules     []models.Rule     `json:"rules"`
	Penalties []models.Penalty  `json:"penalties"`
	Labels    map[string]string `json:"labels"`
}

// BuildReceipt is a pure function of its arguments: the same record and
// language always give the same view.
func BuildReceipt(rec models.GuestRecord, lang string, hotel models.HotelProfile, loc *time.Location) ReceiptView {
	lang = i18n.Normalize(lang, "")
	if loc == nil {
		loc = time.UTC
	}

	field := func(key, value string) ReceiptField {
		return ReceiptField{Key: key, Label: i18n.Label(lang, key), Value: value}
	}

	view := ReceiptView{
		Lang:      lang,
		Hotel:     hotel,
		ID:        rec.ID,
		Folio:     rec.Folio(),
		GuestName: rec.FullName(),
		Guest: []ReceiptField{
			field(i18n.FirstName, rec.FirstName),
			field(i18n.LastName, rec.LastName),
			field(i18n.Nationality, rec.Nationality),
			field(i18n.Cellphone, rec.Cellphone),
			field(i18n.Email, rec.Email),
			field(i18n.Birthday, rec.Birthday),
			field(i18n.TravelingFrom, rec.TravelingFrom),
			field(i18n.TravelingNext, rec.TravelingNext),
		},
		Stay: []ReceiptField{
			field(i18n.CheckIn, rec.CheckInDate),
			field(i18n.CheckOut, rec.CheckOutDate),
		},
		IDPhoto:   rec.IDPhoto,
		Signature: rec.Signature,
		Rules:     Rules(lang),
		Penalties: Penalties(lang, hotel.Currency),
		Labels:    i18n.Labels(lang),
	}
	if rec.AcceptedAt != nil {
		view.AcceptedAt = rec.AcceptedAt.In(loc).Format(AcceptedAtLayout)
	}
	return view
}

// ReceiptService renders receipts and the links that share them.
type ReceiptService struct {
	Store    *RecordStore
	Hotel    models.HotelProfile
	Location *time.Location
	BaseURL  string
	pages    *template.Template
}

func NewReceiptService(store *RecordStore, hotel models.HotelProfile, loc *time.Location, baseURL string, pages *template.Template) *ReceiptService {
	return &ReceiptService{Store: store, Hotel: hotel, Location: loc, BaseURL: baseURL, pages: pages}
}

// Build looks id up and builds its receipt view.
func (s *ReceiptService) Build(id, lang string) (ReceiptView, error) {
	rec, err := s.Store.Get(id)
	if err != nil {
		return ReceiptView{}, err
	}
	return s.BuildFor(rec, lang), nil
}

// BuildFor builds the view of a record already at hand.
func (s *ReceiptService) BuildFor(rec models.GuestRecord, lang string) ReceiptView {
	return BuildReceipt(rec, lang, s.Hotel, s.Location)
}

// Render writes the standalone receipt page.
func (s *ReceiptService) Render(w io.Writer, view ReceiptView) error {
	if s.pages == nil {
		return fmt.Errorf("receipt templates not loaded")
	}
	return s.pages.ExecuteTemplate(w, "receipt.html", view)
}

// RenderHTML is Render into a byte slice.
func (s *ReceiptService) RenderHTML(view ReceiptView) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ShareLinks are the outbound links for one receipt.
type ShareLinks struct {
	Receipt  string `json:"receipt"`
	Mailto   string `json:"mailto"`
	WhatsApp string `json:"whatsapp"`
	QR       string `json:"qr"`
}

// Links builds the receipt URL plus pre-filled mail and WhatsApp links.
func (s *ReceiptService) Links(rec models.GuestRecord, lang string) ShareLinks {
	lang = i18n.Normalize(lang, "")
	receipt := utils.BuildReceiptLink(s.BaseURL, rec.ID, lang)
	subject := fmt.Sprintf("%s · %s #%s", s.Hotel.Name, i18n.Label(lang, i18n.ShareSubject), rec.Folio())
	body := fmt.Sprintf(i18n.Label(lang, i18n.ShareBody), rec.FullName(), s.Hotel.Name, receipt)

	return ShareLinks{
		Receipt:  receipt,
		Mailto:   utils.MailtoLink(rec.Email, subject, body),
		WhatsApp: utils.WhatsAppLink(body),
		QR:       fmt.Sprintf("%s/api/history/%s/qr.png?lang=%s", trimBase(s.BaseURL), rec.ID, lang),
	}
}

// QRCode is a PNG QR code of the receipt link.
func (s *ReceiptService) QRCode(rec models.GuestRecord, lang string, size int) ([]byte, error) {
	return utils.QRCodePNG(utils.BuildReceiptLink(s.BaseURL, rec.ID, i18n.Normalize(lang, "")), size)
}

func trimBase(base string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base
}
