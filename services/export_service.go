package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"hotel-checkin/models"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const (
	exportSheet = "Registros"
	utf8BOM     = "\ufeff"
)

// ExportHeader is the fixed first row of every export.
var ExportHeader = []string{
	"Nombre", "Apellido", "Email", "Celular", "Nacionalidad",
	"Check-In", "Check-Out", "Fecha Registro",
}

var ErrBadExportRange = errors.New("invalid export range")

// ExportRange bounds records by the calendar date of acceptedAt. Zero
// bounds are open.
type ExportRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether no bound is set.
func (r ExportRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// ParseExportRange reads optional YYYY-MM-DD bounds.
func ParseExportRange(from, to string, loc *time.Location) (ExportRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	var r ExportRange
	parse := func(raw string) (time.Time, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return time.Time{}, nil
		}
		t, err := time.ParseInLocation(DateLayout, raw, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadExportRange, raw)
		}
		return t, nil
	}
	var err error
	if r.From, err = parse(from); err != nil {
		return ExportRange{}, err
	}
	if r.To, err = parse(to); err != nil {
		return ExportRange{}, err
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return ExportRange{}, fmt.Errorf("%w: %s after %s", ErrBadExportRange, from, to)
	}
	return r, nil
}

// Contains reports whether acceptedAt falls inside r. Unsigned records are
// only inside an open range.
func (r ExportRange) Contains(acceptedAt *time.Time, loc *time.Location) bool {
	if r.IsZero() {
		return true
	}
	if acceptedAt == nil {
		return false
	}
	y, m, d := acceptedAt.In(loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}

// Export is a finished file ready to be downloaded.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

type ExportService struct {
	Store    *RecordStore
	Location *time.Location
	Now      func() time.Time
}

func NewExportService(store *RecordStore, loc *time.Location) *ExportService {
	if loc == nil {
		loc = time.Local
	}
	return &ExportService{Store: store, Location: loc, Now: time.Now}
}

// Rows returns the header-less export rows for the records inside r, in
// store order.
func (s *ExportService) Rows(r ExportRange) [][]string {
	records := s.Store.List()
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if !r.Contains(rec.AcceptedAt, s.Location) {
			continue
		}
		rows = append(rows, exportRow(rec, s.Location))
	}
	return rows
}

func exportRow(rec models.GuestRecord, loc *time.Location) []string {
	registered := ""
	if rec.AcceptedAt != nil {
		registered = rec.AcceptedAt.In(loc).Format(AcceptedAtLayout)
	}
	return []string{
		rec.FirstName, rec.LastName, rec.Email, rec.Cellphone, rec.Nationality,
		rec.CheckInDate, rec.CheckOutDate, registered,
	}
}

// Build renders the export in format ("csv" when empty).
func (s *ExportService) Build(format string, r ExportRange) (Export, error) {
	log.Printf("➡️ ExportService.Build format=%q from=%v to=%v", format, r.From, r.To)
	rows := s.Rows(r)
	stamp := s.Now().In(s.Location).Format(DateLayout)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return Export{
			Filename:    fmt.Sprintf("registros_hotel_%s.csv", stamp),
			ContentType: "text/csv; charset=utf-8",
			Body:        EncodeCSV(rows),
			Rows:        len(rows),
		}, nil
	case FormatXLSX:
		body, err := EncodeXLSX(rows)
		if err != nil {
			log.Printf("⚠️ ExportService.Build xlsx: %v", err)
			return Export{}, err
		}
		return Export{
			Filename:    fmt.Sprintf("registros_hotel_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Body:        body,
			Rows:        len(rows),
		}, nil
	default:
		return Export{}, fmt.Errorf("unsupported export format %q", format)
	}
}

// EncodeCSV writes a BOM, the header and rows with every field quoted and
// CRLF line ends.
func EncodeCSV(rows [][]string) []byte {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	writeCSVLine(&buf, ExportHeader)
	for _, row := range rows {
		writeCSVLine(&buf, row)
	}
	return buf.Bytes()
}

func writeCSVLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}

// EncodeXLSX writes the same header and rows into a single-sheet workbook.
func EncodeXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("⚠️ close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	put := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		vals := make([]interface{}, len(values))
		for i, v := range values {
			vals[i] = v
		}
		return f.SetSheetRow(exportSheet, cell, &vals)
	}

	if err := put(1, ExportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := put(i+2, row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
