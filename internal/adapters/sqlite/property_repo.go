package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/segura/internal/ports/secondary"
)

// PropertyRepository implements secondary.PropertyRepository with SQLite.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new SQLite property repository.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = "id, policy_id, address, floor, kind, unit, created_at, updated_at"

// Create persists a new property and returns its assigned id.
// The UNIQUE constraint on policy_id enforces the one-property-per-policy
// invariant at the storage boundary.
func (r *PropertyRepository) Create(ctx context.Context, property *secondary.PropertyRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO properties (policy_id, address, floor, kind, unit) VALUES (?, ?, ?, ?, ?)",
		property.PolicyID, property.Address, property.Floor, property.Kind, property.Unit,
	)
	if err != nil {
		return 0, mapConstraintErr("property.create", "property", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "property.create", Err: err}
	}
	return id, nil
}

// GetByID retrieves a property by its id.
func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*secondary.PropertyRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id = ?", id)
	return scanProperty(row)
}

// List retrieves all properties ordered by id.
func (r *PropertyRepository) List(ctx context.Context) ([]*secondary.PropertyRecord, error) {
	return r.queryProperties(ctx,
		"SELECT "+propertyColumns+" FROM properties ORDER BY id ASC")
}

// GetByPolicy retrieves the property attached to a policy, if any.
func (r *PropertyRepository) GetByPolicy(ctx context.Context, policyID int64) (*secondary.PropertyRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE policy_id = ?", policyID)
	return scanProperty(row)
}

// ListByClientNationalID retrieves the properties reachable from a client
// national ID through the policy chain.
func (r *PropertyRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.PropertyRecord, error) {
	return r.queryProperties(ctx,
		`SELECT pr.id, pr.policy_id, pr.address, pr.floor, pr.kind, pr.unit, pr.created_at, pr.updated_at
		FROM properties pr
		JOIN policies p ON p.id = pr.policy_id
		JOIN clients c ON c.id = p.client_id
		WHERE c.national_id = ?
		ORDER BY pr.id ASC`, nationalID)
}

// Update updates a property's fields.
func (r *PropertyRepository) Update(ctx context.Context, property *secondary.PropertyRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE properties SET address = ?, floor = ?, kind = ?, unit = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		property.Address, property.Floor, property.Kind, property.Unit, property.ID,
	)
	if err != nil {
		return mapConstraintErr("property.update", "property", err)
	}
	return requireAffected("property.update", res)
}

// Delete removes a property. The dependent-incident check and the delete run
// in one transaction; the RESTRICT foreign key backs the pre-check.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &secondary.StorageError{Op: "property.delete", Err: err}
	}
	defer tx.Rollback()

	var dependents int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM incidents WHERE property_id = ?", id).Scan(&dependents); err != nil {
		return &secondary.StorageError{Op: "property.delete", Err: err}
	}
	if dependents > 0 {
		return &secondary.ReferentialBlockError{Entity: "property", ID: id, Dependents: "incident", Count: dependents}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return mapConstraintErr("property.delete", "property", err)
	}
	if err := requireAffected("property.delete", res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &secondary.StorageError{Op: "property.delete", Err: err}
	}
	return nil
}

// Exists reports whether a property row exists.
func (r *PropertyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM properties WHERE id = ?", id).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "property.exists", Err: err}
	}
	return count > 0, nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]*secondary.PropertyRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &secondary.StorageError{Op: "property.list", Err: err}
	}
	defer rows.Close()

	var properties []*secondary.PropertyRecord
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "property.list", Err: err}
	}
	return properties, nil
}

func scanProperty(row rowScanner) (*secondary.PropertyRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.PropertyRecord{}
	err := row.Scan(&record.ID, &record.PolicyID, &record.Address, &record.Floor, &record.Kind, &record.Unit, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("property.get", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

var _ secondary.PropertyRepository = (*PropertyRepository)(nil)
