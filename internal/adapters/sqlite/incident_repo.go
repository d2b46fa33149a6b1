package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/segura/internal/ports/secondary"
)

// IncidentRepository implements secondary.IncidentRepository with SQLite.
type IncidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new SQLite incident repository.
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

const incidentColumns = "id, property_id, description, occurred_on, amount, kind, created_at, updated_at"

// Create persists a new incident and returns its assigned id.
func (r *IncidentRepository) Create(ctx context.Context, incident *secondary.IncidentRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO incidents (property_id, description, occurred_on, amount, kind) VALUES (?, ?, ?, ?, ?)",
		incident.PropertyID, incident.Description, incident.OccurredOn, incident.Amount, nullable(incident.Kind),
	)
	if err != nil {
		return 0, mapConstraintErr("incident.create", "incident", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "incident.create", Err: err}
	}
	return id, nil
}

// GetByID retrieves an incident by its id.
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*secondary.IncidentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+incidentColumns+" FROM incidents WHERE id = ?", id)
	return scanIncident(row)
}

// List retrieves all incidents ordered by id.
func (r *IncidentRepository) List(ctx context.Context) ([]*secondary.IncidentRecord, error) {
	return r.queryIncidents(ctx,
		"SELECT "+incidentColumns+" FROM incidents ORDER BY id ASC")
}

// ListByProperty retrieves the incidents against one property.
func (r *IncidentRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*secondary.IncidentRecord, error) {
	return r.queryIncidents(ctx,
		"SELECT "+incidentColumns+" FROM incidents WHERE property_id = ? ORDER BY id ASC", propertyID)
}

// ListByClientNationalID retrieves the incidents reachable from a client
// national ID through the full client -> policy -> property chain.
func (r *IncidentRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.IncidentRecord, error) {
	return r.queryIncidents(ctx,
		`SELECT i.id, i.property_id, i.description, i.occurred_on, i.amount, i.kind, i.created_at, i.updated_at
		FROM incidents i
		JOIN properties pr ON pr.id = i.property_id
		JOIN policies p ON p.id = pr.policy_id
		JOIN clients c ON c.id = p.client_id
		WHERE c.national_id = ?
		ORDER BY i.id ASC`, nationalID)
}

// Update updates an incident's fields.
func (r *IncidentRepository) Update(ctx context.Context, incident *secondary.IncidentRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE incidents SET description = ?, occurred_on = ?, amount = ?, kind = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		incident.Description, incident.OccurredOn, incident.Amount, nullable(incident.Kind), incident.ID,
	)
	if err != nil {
		return mapConstraintErr("incident.update", "incident", err)
	}
	return requireAffected("incident.update", res)
}

// Delete removes an incident. Incidents are leaf records with no dependents,
// so the delete is unconditional.
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM incidents WHERE id = ?", id)
	if err != nil {
		return mapConstraintErr("incident.delete", "incident", err)
	}
	return requireAffected("incident.delete", res)
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args ...any) ([]*secondary.IncidentRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &secondary.StorageError{Op: "incident.list", Err: err}
	}
	defer rows.Close()

	var incidents []*secondary.IncidentRecord
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, i)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "incident.list", Err: err}
	}
	return incidents, nil
}

func scanIncident(row rowScanner) (*secondary.IncidentRecord, error) {
	var (
		occurredOn time.Time
		kind       sql.NullString
		createdAt  time.Time
		updatedAt  time.Time
	)

	record := &secondary.IncidentRecord{}
	err := row.Scan(&record.ID, &record.PropertyID, &record.Description, &occurredOn, &record.Amount, &kind, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("incident.get", err)
	}

	record.OccurredOn = occurredOn.Format("2006-01-02")
	record.Kind = kind.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

var _ secondary.IncidentRepository = (*IncidentRepository)(nil)
