package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/accident-dashboard-go/internal/database"
	"github.com/jengzang/accident-dashboard-go/internal/models"
)

// AccidentRepository handles the SQLite snapshot of the accident dataset
type AccidentRepository struct {
	db *sql.DB
}

// NewAccidentRepository creates a new accident repository
func NewAccidentRepository(db *sql.DB) *AccidentRepository {
	return &AccidentRepository{db: db}
}

// ReplaceAll swaps the stored snapshot for records in a single transaction
func (r *AccidentRepository) ReplaceAll(ctx context.Context, records []models.AccidentRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM accident_records"); err != nil {
			return fmt.Errorf("failed to clear accident records: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO accident_records (
			district_name, longitude, latitude,
			accident_count, casualty_count, serious_injury_count, minor_injury_count, death_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			_, err := stmt.ExecContext(ctx,
				rec.DistrictName, rec.Longitude, rec.Latitude,
				rec.AccidentCount, rec.CasualtyCount, rec.SeriousInjuryCount, rec.MinorInjuryCount, rec.DeathCount,
			)
			if err != nil {
				return fmt.Errorf("failed to insert record %d: %w", i, err)
			}
		}
		return nil
	})
}

// LoadRecords returns every stored record in insertion order
func (r *AccidentRepository) LoadRecords(ctx context.Context) ([]models.AccidentRecord, error) {
	query := `SELECT id, district_name, longitude, latitude,
		accident_count, casualty_count, serious_injury_count, minor_injury_count, death_count
		FROM accident_records
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accident records: %w", err)
	}
	defer rows.Close()

	var records []models.AccidentRecord
	for rows.Next() {
		var rec models.AccidentRecord
		err := rows.Scan(
			&rec.ID, &rec.DistrictName, &rec.Longitude, &rec.Latitude,
			&rec.AccidentCount, &rec.CasualtyCount, &rec.SeriousInjuryCount, &rec.MinorInjuryCount, &rec.DeathCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accident record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accident records: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records
func (r *AccidentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accident_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accident records: %w", err)
	}
	return count, nil
}
