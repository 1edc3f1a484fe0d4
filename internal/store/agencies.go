package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
)

const agencyColumns = `id, name, email, expertise, role, latitude, longitude, verified, agency_type, last_updated`

// NewAgency holds the registration fields for an agency row.
type NewAgency struct {
	Name             string
	Email            string
	PasswordHash     string
	Expertise        string
	HashedRescuingID string
}

// CreateAgency inserts a freshly registered agency. New agencies start at
// the fallback coordinates with the default role until they update their
// own location.
func (s *Store) CreateAgency(ctx context.Context, a NewAgency) (agencymodels.Agency, error) {
	query := `
		INSERT INTO agencies (name, email, password_hash, expertise, rescuing_id, role, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err := s.pool.QueryRow(ctx, query,
		a.Name,
		a.Email,
		a.PasswordHash,
		a.Expertise,
		a.HashedRescuingID,
		agencymodels.RoleAgency,
		agencymodels.FallbackLatitude,
		agencymodels.FallbackLongitude,
	).Scan(&id)
	if err != nil {
		return agencymodels.Agency{}, fmt.Errorf("insert agency: %w", err)
	}

	return agencymodels.Agency{
		ID:         id,
		Name:       a.Name,
		Email:      a.Email,
		Expertise:  a.Expertise,
		Role:       agencymodels.RoleAgency,
		Coord:      geo.NewCoordinate(agencymodels.FallbackLatitude, agencymodels.FallbackLongitude),
		AgencyType: "local",
	}, nil
}

// GetAgencyByEmail returns the agency registered under email together with
// its password digest, or nil when no such agency exists.
func (s *Store) GetAgencyByEmail(ctx context.Context, email string) (*agencymodels.Agency, string, error) {
	query := `SELECT ` + agencyColumns + `, password_hash FROM agencies WHERE email = $1`

	var (
		a            agencymodels.Agency
		passwordHash string
	)
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.Expertise, &a.Role,
		&a.Coord.Latitude, &a.Coord.Longitude,
		&a.Verified, &a.AgencyType, &a.LastUpdated,
		&passwordHash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("select agency by email: %w", err)
	}
	return &a, passwordHash, nil
}

// GetAgencyByID returns the agency with the given id, or nil when absent.
func (s *Store) GetAgencyByID(ctx context.Context, id string) (*agencymodels.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	var a agencymodels.Agency
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Expertise, &a.Role,
		&a.Coord.Latitude, &a.Coord.Longitude,
		&a.Verified, &a.AgencyType, &a.LastUpdated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select agency by id: %w", err)
	}
	return &a, nil
}

// RescuingIDExists reports whether the hashed rescuing ID is already taken.
func (s *Store) RescuingIDExists(ctx context.Context, hashedRescuingID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM agencies WHERE rescuing_id = $1)`,
		hashedRescuingID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check rescuing id: %w", err)
	}
	return exists, nil
}

// ListAgencies returns the full roster snapshot.
func (s *Store) ListAgencies(ctx context.Context) ([]agencymodels.Agency, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+agencyColumns+` FROM agencies ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []agencymodels.Agency
	for rows.Next() {
		var a agencymodels.Agency
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Expertise, &a.Role,
			&a.Coord.Latitude, &a.Coord.Longitude,
			&a.Verified, &a.AgencyType, &a.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan agency: %w", err)
		}
		agencies = append(agencies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	return agencies, nil
}

// UpdateAgencyLocation sets the agency's own coordinates and stamps the
// update time.
func (s *Store) UpdateAgencyLocation(ctx context.Context, id string, lat, lng float64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE agencies SET latitude = $1, longitude = $2, last_updated = $3 WHERE id = $4`,
		lat, lng, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update agency location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
