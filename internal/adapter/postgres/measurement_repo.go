package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"healthchat/internal/domain"
)

// Append inserts a measurement at the end of the user's sequence.
//
// Value is JSON-encoded into a text column so numeric and composite string
// readings round-trip without a schema per metric kind.
func (d *DB) Append(ctx context.Context, userKey string, rec domain.MeasurementRecord) error {
	value, err := json.Marshal(rec.Value)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO measurements(record_id, user_key, metric, value, unit, ts, notes) VALUES($1, $2, $3, $4, $5, $6, $7);",
		rec.ID, userKey, string(rec.Type), string(value), rec.Unit, rec.Timestamp.UTC(), rec.Notes,
	)
	return err
}

// ListAll returns the user's full history ordered by insertion sequence.
func (d *DB) ListAll(ctx context.Context, userKey string) ([]domain.MeasurementRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT record_id, metric, value, unit, ts, notes FROM measurements WHERE user_key=$1 ORDER BY seq;", userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MeasurementRecord{}
	for rows.Next() {
		var (
			rec    domain.MeasurementRecord
			metric string
			value  string
		)
		if err := rows.Scan(&rec.ID, &metric, &value, &rec.Unit, &rec.Timestamp, &rec.Notes); err != nil {
			return nil, err
		}
		rec.Type = domain.MetricType(metric)
		if err := json.Unmarshal([]byte(value), &rec.Value); err != nil {
			return nil, fmt.Errorf("decode value: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
