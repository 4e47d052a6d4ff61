package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"
)

const sampleCSV = `SIGNGU_NM,FCLTY_NM,FCLTY_LO,FCLTY_LA,ACDNT_CAS_CO,CASLT_CO,SWPSN_CO,SINJPSN_CO,DEATH_CO
서울특별시 강남구 역삼동,역삼초,127.03,37.50,2,1,0,1,0
서울특별시 서초구,반포초,126.99,37.50,5,,1,2.0,1
부산광역시 해운대구,해운대초,129.16,35.16,1,1,1,0,0
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV), EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.DistrictName != "서울특별시 강남구 역삼동" || first.Longitude != 127.03 || first.Latitude != 37.50 {
		t.Fatalf("unexpected first record %+v", first)
	}
	if first.AccidentCount != 2 || first.CasualtyCount != 1 || first.MinorInjuryCount != 1 {
		t.Fatalf("unexpected counts %+v", first)
	}

	second := records[1]
	if second.CasualtyCount != 0 {
		t.Fatalf("blank casualty cell = %d, want 0", second.CasualtyCount)
	}
	if second.MinorInjuryCount != 2 {
		t.Fatalf("integral decimal = %d, want 2", second.MinorInjuryCount)
	}
}

func TestReadCSVStripsBOM(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader("\ufeff"+sampleCSV), "")
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestReadCSVEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String(sampleCSV)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	records, err := ReadCSV(context.Background(), strings.NewReader(encoded), EncodingEUCKR)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if records[2].DistrictName != "부산광역시 해운대구" {
		t.Fatalf("decoded district = %q", records[2].DistrictName)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		enc     string
		wantErr error
	}{
		{
			name:    "missing column",
			input:   "SIGNGU_NM,FCLTY_LO,FCLTY_LA\nA B,1,2\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "bad count",
			input:   strings.Replace(sampleCSV, ",5,", ",five,", 1),
			wantErr: ErrMalformedValue,
		},
		{
			name:    "negative count",
			input:   strings.Replace(sampleCSV, ",5,", ",-5,", 1),
			wantErr: ErrMalformedValue,
		},
		{
			name:    "count beyond int64",
			input:   strings.Replace(sampleCSV, ",5,", ",1e19,", 1),
			wantErr: ErrMalformedValue,
		},
		{
			name:    "bad coordinate",
			input:   strings.Replace(sampleCSV, "129.16", "east", 1),
			wantErr: ErrMalformedValue,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrEmptyDataset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(tt.input), tt.enc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadCSVUnsupportedEncoding(t *testing.T) {
	if _, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV), "latin-9"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accidents.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ds, err := Load(context.Background(), NewCSVSource(path, EncodingUTF8))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ds.Len())
	}
	regions := ds.Regions()
	if len(regions) != 2 || regions[0] != "서울특별시" || regions[1] != "부산광역시" {
		t.Fatalf("Regions = %v", regions)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), ""))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr string
	}{
		{raw: "", want: 0},
		{raw: " 7 ", want: 7},
		{raw: "2.0", want: 2},
		{raw: "1e3", want: 1000},
		{raw: "2.5", wantErr: "malformed value"},
		{raw: "-3", wantErr: "negative count"},
		{raw: "-1e19", wantErr: "negative count"},
		{raw: "1e19", wantErr: "out of range"},
		{raw: "9223372036854775808", wantErr: "out of range"},
	}

	for _, tt := range tests {
		got, err := parseCount(tt.raw)
		if tt.wantErr != "" {
			if !errors.Is(err, ErrMalformedValue) || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("parseCount(%q) error = %v, want %q", tt.raw, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseCount(%q) = %d, %v, want %d", tt.raw, got, err, tt.want)
		}
	}
}

func TestReadCSVTrimsDistrictName(t *testing.T) {
	input := strings.Replace(sampleCSV, "부산광역시 해운대구,", " 부산광역시 해운대구 ,", 1)
	records, err := ReadCSV(context.Background(), strings.NewReader(input), EncodingUTF8)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got := records[2].DistrictName; got != "부산광역시 해운대구" {
		t.Fatalf("DistrictName = %q", got)
	}
}
