package services

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"hotel-checkin/models"
)

// DateLayout is the calendar-date format used for every date field.
const DateLayout = "2006-01-02"

var ErrIncompleteRegistration = errors.New("registration is incomplete")

// EmailParts is the three-box email input: user @ domain . ext
type EmailParts struct {
	User   string `json:"user"`
	Domain string `json:"domain"`
	Ext    string `json:"ext"`
}

// Assemble joins the parts as user@domain.ext. ok is false until all three
// parts are present.
func (p EmailParts) Assemble() (string, bool) {
	user := SanitizeEmailPart(p.User)
	domain := SanitizeEmailPart(p.Domain)
	ext := strings.TrimPrefix(SanitizeEmailPart(p.Ext), ".")
	if user == "" || domain == "" || ext == "" {
		return "", false
	}
	return user + "@" + domain + "." + ext, true
}

// SplitEmail breaks a stored email back into its boxes. Everything after the
// last dot of the domain is the extension.
func SplitEmail(email string) EmailParts {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return EmailParts{User: email}
	}
	parts := EmailParts{User: email[:at]}
	host := email[at+1:]
	if dot := strings.LastIndex(host, "."); dot >= 0 {
		parts.Domain = host[:dot]
		parts.Ext = host[dot+1:]
	} else {
		parts.Domain = host
	}
	return parts
}

// PhoneParts is the country code plus local number input.
type PhoneParts struct {
	CountryCode string `json:"countryCode"`
	Number      string `json:"number"`
}

// Assemble renders "+code number". ok is false until both parts are present.
func (p PhoneParts) Assemble() (string, bool) {
	code := strings.TrimPrefix(SanitizeCountryCode(p.CountryCode), "+")
	number := SanitizeDigits(p.Number)
	if code == "" || number == "" {
		return "", false
	}
	return "+" + code + " " + number, true
}

// SplitPhone is the inverse of PhoneParts.Assemble.
func SplitPhone(phone string) PhoneParts {
	phone = strings.TrimSpace(phone)
	code, number, found := strings.Cut(phone, " ")
	if !found || !strings.HasPrefix(code, "+") {
		return PhoneParts{Number: SanitizeDigits(phone)}
	}
	return PhoneParts{CountryCode: code, Number: SanitizeDigits(number)}
}

// SanitizeEmailPart keeps only characters that can appear in an email box.
func SanitizeEmailPart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case strings.ContainsRune("._%+-", r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeDigits drops every non-digit.
func SanitizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeCountryCode keeps a leading "+" and up to four digits.
func SanitizeCountryCode(s string) string {
	digits := SanitizeDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if digits == "" {
		return ""
	}
	return "+" + digits
}

// ApplyComposite writes the assembled email and phone onto rec, but only
// when complete; partial input leaves the previous value alone.
func ApplyComposite(rec *models.GuestRecord, email *EmailParts, phone *PhoneParts) {
	if email != nil {
		if v, ok := email.Assemble(); ok {
			rec.Email = v
		}
	}
	if phone != nil {
		if v, ok := phone.Assemble(); ok {
			rec.Cellphone = v
		}
	}
}

// FieldError names one problem with the registration form.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

const (
	ProblemRequired  = "required"
	ProblemBadDate   = "invalid_date"
	ProblemDateOrder = "checkout_before_checkin"
)

// ValidateRegistration lists every field blocking the "next" action. An
// empty result means the form is complete.
func ValidateRegistration(rec models.GuestRecord) []FieldError {
	var problems []FieldError

	required := []struct {
		name  string
		value string
	}{
		{"firstName", rec.FirstName},
		{"lastName", rec.LastName},
		{"email", rec.Email},
		{"cellphone", rec.Cellphone},
		{"nationality", rec.Nationality},
		{"birthday", rec.Birthday},
		{"travelingFrom", rec.TravelingFrom},
		{"travelingNext", rec.TravelingNext},
		{"checkInDate", rec.CheckInDate},
		{"checkOutDate", rec.CheckOutDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, FieldError{Field: f.name, Problem: ProblemRequired})
		}
	}

	dates := map[string]string{
		"birthday":     rec.Birthday,
		"checkInDate":  rec.CheckInDate,
		"checkOutDate": rec.CheckOutDate,
	}
	parsed := map[string]time.Time{}
	for _, name := range []string{"birthday", "checkInDate", "checkOutDate"} {
		v := strings.TrimSpace(dates[name])
		if v == "" {
			continue
		}
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			problems = append(problems, FieldError{Field: name, Problem: ProblemBadDate})
			continue
		}
		parsed[name] = t
	}

	in, okIn := parsed["checkInDate"]
	out, okOut := parsed["checkOutDate"]
	if okIn && okOut && out.Before(in) {
		problems = append(problems, FieldError{Field: "checkOutDate", Problem: ProblemDateOrder})
	}
	return problems
}

// RegistrationComplete reports whether the record may leave the form.
func RegistrationComplete(rec models.GuestRecord) bool {
	return len(ValidateRegistration(rec)) == 0
}
