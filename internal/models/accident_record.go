package models

// AccidentRecord represents one facility row of the accident dataset
type AccidentRecord struct {
	ID int64 `json:"id,omitempty" db:"id"`

	// Location
	DistrictName string  `json:"district_name" db:"district_name"` // "<region> <subregion> ..."
	Longitude    float64 `json:"longitude" db:"longitude"`
	Latitude     float64 `json:"latitude" db:"latitude"`

	// Counts
	AccidentCount      int64 `json:"accident_count" db:"accident_count"`
	CasualtyCount      int64 `json:"casualty_count" db:"casualty_count"`
	SeriousInjuryCount int64 `json:"serious_injury_count" db:"serious_injury_count"`
	MinorInjuryCount   int64 `json:"minor_injury_count" db:"minor_injury_count"`
	DeathCount         int64 `json:"death_count" db:"death_count"`
}

// Value returns the count of the given single metric. Composite yields the
// sum of all five counts.
func (r AccidentRecord) Value(m Metric) int64 {
	switch m {
	case MetricAccident:
		return r.AccidentCount
	case MetricCasualty:
		return r.CasualtyCount
	case MetricSerious:
		return r.SeriousInjuryCount
	case MetricMinor:
		return r.MinorInjuryCount
	case MetricDeath:
		return r.DeathCount
	case MetricComposite:
		return r.AccidentCount + r.CasualtyCount + r.SeriousInjuryCount + r.MinorInjuryCount + r.DeathCount
	}
	return 0
}

// CSV column names of the input file contract
const (
	ColumnDistrictName  = "SIGNGU_NM"
	ColumnLongitude     = "FCLTY_LO"
	ColumnLatitude      = "FCLTY_LA"
	ColumnAccidentCount = "ACDNT_CAS_CO"
	ColumnCasualtyCount = "CASLT_CO"
	ColumnSeriousCount  = "SWPSN_CO"
	ColumnMinorCount    = "SINJPSN_CO"
	ColumnDeathCount    = "DEATH_CO"
)

// RequiredColumns lists every column the loader insists on
var RequiredColumns = []string{
	ColumnDistrictName,
	ColumnLongitude,
	ColumnLatitude,
	ColumnAccidentCount,
	ColumnCasualtyCount,
	ColumnSeriousCount,
	ColumnMinorCount,
	ColumnDeathCount,
}
