package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aviodata/traffic-api/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"
)

// Upstream column headers of the ASP_CIE CSV files
const (
	colPeriod      = "ANMOIS"
	colCarrier     = "CIE"
	colCarrierName = "CIE_NOM"
	colNationality = "CIE_NAT"
	colCountry     = "CIE_PAYS"
	colPax         = "CIE_PAX"
	colFreight     = "CIE_FRP"
	colPeq         = "CIE_PEQ"
	colPaxKM       = "CIE_PKT"
	colTonKM       = "CIE_TKT"
	colPeqKM       = "CIE_PEQKT"
	colFlights     = "CIE_VOL"
)

// ParseResult is the outcome of parsing one dataset archive
type ParseResult struct {
	Records     []domain.TrafficRecord
	RowsSkipped int64
	FilesParsed int
}

// ParseArchive extracts every CSV file from the ZIP archive and parses
// them concurrently. A file that cannot be decoded at all is an error; a
// row with an unparseable period is counted in RowsSkipped and dropped.
func ParseArchive(data []byte) (*ParseResult, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	var members []*zip.File
	for _, f := range zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			members = append(members, f)
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("archive contains no CSV files")
	}

	var (
		mu     sync.Mutex
		result ParseResult
	)

	var g errgroup.Group
	for _, member := range members {
		member := member
		g.Go(func() error {
			rc, err := member.Open()
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", member.Name, err)
			}
			raw, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", member.Name, err)
			}

			records, skipped, err := parseCSV(raw)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", member.Name, err)
			}

			mu.Lock()
			result.Records = append(result.Records, records...)
			result.RowsSkipped += skipped
			result.FilesParsed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &result, nil
}

// parseCSV parses one semicolon-separated CSV file into traffic records
func parseCSV(raw []byte) ([]domain.TrafficRecord, int64, error) {
	text, err := decodeText(raw)
	if err != nil {
		return nil, 0, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colPeriod]; !ok {
		return nil, 0, fmt.Errorf("missing %s column", colPeriod)
	}

	now := time.Now().UTC()
	var records []domain.TrafficRecord
	var skipped int64

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed line, drop it
			skipped++
			continue
		}

		period, ok := parsePeriod(field(row, cols, colPeriod))
		if !ok {
			skipped++
			continue
		}

		rec := domain.TrafficRecord{
			Period:          period,
			Year:            period / 100,
			Month:           period % 100,
			CarrierCode:     field(row, cols, colCarrier),
			CarrierName:     field(row, cols, colCarrierName),
			Nationality:     domain.CarrierNationality(field(row, cols, colNationality)),
			Country:         field(row, cols, colCountry),
			Passengers:      int64(parseNumber(field(row, cols, colPax))),
			FreightTons:     parseNumber(field(row, cols, colFreight)),
			EquivalentPax:   parseNumber(field(row, cols, colPeq)),
			PaxKM:           parseNumber(field(row, cols, colPaxKM)),
			TonKM:           parseNumber(field(row, cols, colTonKM)),
			EquivalentPaxKM: parseNumber(field(row, cols, colPeqKM)),
			Flights:         int64(parseNumber(field(row, cols, colFlights))),
			CreatedAt:       now,
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// decodeText returns the file contents as UTF-8. The upstream files are
// published in a mix of UTF-8 and Latin-1/Windows-1252.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode as Windows-1252: %w", err)
	}
	return string(decoded), nil
}

// field returns the trimmed value of a named column, or "" if absent
func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parsePeriod parses a yyyymm value and validates the month part
func parsePeriod(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	year, month := v/100, v%100
	if year < 1900 || year > 2200 || month < 1 || month > 12 {
		return 0, false
	}
	return v, true
}

// parseNumber coerces French number formatting: NBSP and spaces as
// thousands separators, comma as decimal separator. Empty or unparseable
// values become 0, matching how the dashboard treated missing volumes.
func parseNumber(s string) float64 {
	s = strings.NewReplacer(" ", "", " ", "", " ", "").Replace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
