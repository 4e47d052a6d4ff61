package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// Supported file encodings
const (
	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"
)

var (
	// ErrMissingColumn is returned when the header lacks a required column
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedValue is returned for cells that cannot be parsed
	ErrMalformedValue = errors.New("malformed value")
)

// CSVSource reads records from a CSV file following the accident column contract
type CSVSource struct {
	Path     string
	Encoding string // utf-8 (default) or euc-kr
}

// NewCSVSource creates a CSV source for path
func NewCSVSource(path, enc string) *CSVSource {
	return &CSVSource{Path: path, Encoding: enc}
}

// LoadRecords opens the file and parses every row
func (s *CSVSource) LoadRecords(ctx context.Context) ([]models.AccidentRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ReadCSV(ctx, f, s.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", s.Path, err)
	}
	return records, nil
}

func decoderFor(enc string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case EncodingEUCKR, "cp949", "euckr":
		return korean.EUCKR.NewDecoder(), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", enc)
}

// ReadCSV parses accident records from r. The header must contain every
// column in models.RequiredColumns; extra columns are ignored.
func ReadCSV(ctx context.Context, r io.Reader, enc string) ([]models.AccidentRecord, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, dec))
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.AccidentRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		rec, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return index, nil
}

func parseRow(row []string, index map[string]int) (models.AccidentRecord, error) {
	rec := models.AccidentRecord{
		DistrictName: strings.TrimSpace(row[index[models.ColumnDistrictName]]),
	}

	var err error
	if rec.Longitude, err = parseCoordinate(row, index, models.ColumnLongitude); err != nil {
		return rec, err
	}
	if rec.Latitude, err = parseCoordinate(row, index, models.ColumnLatitude); err != nil {
		return rec, err
	}

	counts := []struct {
		column string
		dst    *int64
	}{
		{models.ColumnAccidentCount, &rec.AccidentCount},
		{models.ColumnCasualtyCount, &rec.CasualtyCount},
		{models.ColumnSeriousCount, &rec.SeriousInjuryCount},
		{models.ColumnMinorCount, &rec.MinorInjuryCount},
		{models.ColumnDeathCount, &rec.DeathCount},
	}
	for _, c := range counts {
		if *c.dst, err = parseCount(row[index[c.column]]); err != nil {
			return rec, fmt.Errorf("%s: %w", c.column, err)
		}
	}

	return rec, nil
}

func parseCoordinate(row []string, index map[string]int, column string) (float64, error) {
	raw := strings.TrimSpace(row[index[column]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %w: %q", column, ErrMalformedValue, raw)
	}
	return v, nil
}

// parseCount reads a non-negative count. Blank cells count as zero and
// integral decimals such as "3.0" are accepted.
func parseCount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", ErrMalformedValue, raw)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which no longer fits
		if f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: count out of range %q", ErrMalformedValue, raw)
		}
		if f < 0 {
			return 0, fmt.Errorf("%w: negative count %q", ErrMalformedValue, raw)
		}
		v = int64(f)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative count %q", ErrMalformedValue, raw)
	}
	return v, nil
}
