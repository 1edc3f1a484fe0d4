package store

import (
	"context"
	"fmt"

	emergencymodels "io.resqforce.server/internal/models/emergency"
)

// CreateEmergency inserts an accepted emergency report and returns the row
// id. CreatedAt is the coordinator's capture time, not the insert time.
func (s *Store) CreateEmergency(ctx context.Context, e emergencymodels.Emergency) (string, error) {
	query := `
		INSERT INTO emergencies (latitude, longitude, description, tag, severity, status, reported_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err := s.pool.QueryRow(ctx, query,
		e.Coord.Latitude,
		e.Coord.Longitude,
		e.Description,
		e.Tag,
		e.Severity,
		e.Status,
		e.ReportedBy,
		e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert emergency: %w", err)
	}
	return id, nil
}

// ListPendingEmergencies returns pending emergencies, newest first.
func (s *Store) ListPendingEmergencies(ctx context.Context) ([]emergencymodels.Emergency, error) {
	query := `
		SELECT id, latitude, longitude, description, tag, severity, status, reported_by, created_at
		FROM emergencies
		WHERE status = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, emergencymodels.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending emergencies: %w", err)
	}
	defer rows.Close()

	var emergencies []emergencymodels.Emergency
	for rows.Next() {
		var e emergencymodels.Emergency
		if err := rows.Scan(
			&e.ID, &e.Coord.Latitude, &e.Coord.Longitude,
			&e.Description, &e.Tag, &e.Severity, &e.Status,
			&e.ReportedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan emergency: %w", err)
		}
		emergencies = append(emergencies, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending emergencies: %w", err)
	}
	return emergencies, nil
}

// DeleteEmergency removes one emergency. The bool result reports whether a
// row was actually deleted.
func (s *Store) DeleteEmergency(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM emergencies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete emergency: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteAllEmergencies clears the emergency table and returns how many rows
// were removed.
func (s *Store) DeleteAllEmergencies(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM emergencies`)
	if err != nil {
		return 0, fmt.Errorf("delete all emergencies: %w", err)
	}
	return tag.RowsAffected(), nil
}
