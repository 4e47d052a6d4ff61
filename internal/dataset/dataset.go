package dataset

import (
	"context"
	"errors"

	"github.com/jengzang/accident-dashboard-go/internal/analysis"
	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// ErrEmptyDataset is returned when a source yields no records
var ErrEmptyDataset = errors.New("dataset has no records")

// Source produces the raw records of a dataset
type Source interface {
	LoadRecords(ctx context.Context) ([]models.AccidentRecord, error)
}

// Dataset is an immutable, loaded-once set of accident records.
// Accessors return copies so callers cannot alter shared state.
type Dataset struct {
	records []models.AccidentRecord
	regions []string
	defects int
}

// New builds a dataset from records. The slice is copied.
func New(records []models.AccidentRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	owned := make([]models.AccidentRecord, len(records))
	copy(owned, records)

	defects := 0
	for _, r := range owned {
		if analysis.ExtractSubregion(r.DistrictName) == "" {
			defects++
		}
	}

	return &Dataset{
		records: owned,
		regions: analysis.DistinctRegions(owned),
		defects: defects,
	}, nil
}

// Load reads every record from src and freezes them into a Dataset
func Load(ctx context.Context, src Source) (*Dataset, error) {
	records, err := src.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// Records returns a copy of all records in load order
func (d *Dataset) Records() []models.AccidentRecord {
	out := make([]models.AccidentRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Regions returns the distinct region tokens in first-appearance order
func (d *Dataset) Regions() []string {
	out := make([]string, len(d.regions))
	copy(out, d.regions)
	return out
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Defects counts records whose district name lacks a subregion token
func (d *Dataset) Defects() int {
	return d.defects
}

// Run executes the aggregation pipeline against the dataset
func (d *Dataset) Run(region string, metric models.Metric, opts analysis.Options) analysis.Result {
	return analysis.Run(d.records, region, metric, opts)
}
