package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/segura/internal/ports/secondary"
)

// PolicyRepository implements secondary.PolicyRepository with SQLite.
type PolicyRepository struct {
	db *sql.DB
}

// NewPolicyRepository creates a new SQLite policy repository.
func NewPolicyRepository(db *sql.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const policyColumns = "id, client_id, contract_date, contact, signature, created_at, updated_at"

// Create persists a new policy and returns its assigned id.
func (r *PolicyRepository) Create(ctx context.Context, policy *secondary.PolicyRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO policies (client_id, contract_date, contact, signature) VALUES (?, ?, ?, ?)",
		policy.ClientID, policy.ContractDate, nullable(policy.Contact), nullable(policy.Signature),
	)
	if err != nil {
		return 0, mapConstraintErr("policy.create", "policy", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "policy.create", Err: err}
	}
	return id, nil
}

// GetByID retrieves a policy by its id.
func (r *PolicyRepository) GetByID(ctx context.Context, id int64) (*secondary.PolicyRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+policyColumns+" FROM policies WHERE id = ?", id)
	return scanPolicy(row)
}

// List retrieves all policies ordered by id.
func (r *PolicyRepository) List(ctx context.Context) ([]*secondary.PolicyRecord, error) {
	return r.queryPolicies(ctx,
		"SELECT "+policyColumns+" FROM policies ORDER BY id ASC")
}

// ListByClient retrieves the policies owned by one client row.
func (r *PolicyRepository) ListByClient(ctx context.Context, clientID int64) ([]*secondary.PolicyRecord, error) {
	return r.queryPolicies(ctx,
		"SELECT "+policyColumns+" FROM policies WHERE client_id = ? ORDER BY id ASC", clientID)
}

// ListByClientNationalID retrieves the policies reachable from a client
// national ID.
func (r *PolicyRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.PolicyRecord, error) {
	return r.queryPolicies(ctx,
		`SELECT p.id, p.client_id, p.contract_date, p.contact, p.signature, p.created_at, p.updated_at
		FROM policies p
		JOIN clients c ON c.id = p.client_id
		WHERE c.national_id = ?
		ORDER BY p.id ASC`, nationalID)
}

// Update updates a policy's fields.
func (r *PolicyRepository) Update(ctx context.Context, policy *secondary.PolicyRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE policies SET contract_date = ?, contact = ?, signature = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		policy.ContractDate, nullable(policy.Contact), nullable(policy.Signature), policy.ID,
	)
	if err != nil {
		return mapConstraintErr("policy.update", "policy", err)
	}
	return requireAffected("policy.update", res)
}

// Delete removes a policy. The dependent-property check and the delete run
// in one transaction; the RESTRICT foreign key backs the pre-check.
func (r *PolicyRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &secondary.StorageError{Op: "policy.delete", Err: err}
	}
	defer tx.Rollback()

	var dependents int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM properties WHERE policy_id = ?", id).Scan(&dependents); err != nil {
		return &secondary.StorageError{Op: "policy.delete", Err: err}
	}
	if dependents > 0 {
		return &secondary.ReferentialBlockError{Entity: "policy", ID: id, Dependents: "property", Count: dependents}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM policies WHERE id = ?", id)
	if err != nil {
		return mapConstraintErr("policy.delete", "policy", err)
	}
	if err := requireAffected("policy.delete", res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &secondary.StorageError{Op: "policy.delete", Err: err}
	}
	return nil
}

// Exists reports whether a policy row exists.
func (r *PolicyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM policies WHERE id = ?", id).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "policy.exists", Err: err}
	}
	return count > 0, nil
}

// HasProperty reports whether a property is already attached to the policy.
func (r *PolicyRepository) HasProperty(ctx context.Context, policyID int64) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM properties WHERE policy_id = ?", policyID).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "policy.hasproperty", Err: err}
	}
	return count > 0, nil
}

func (r *PolicyRepository) queryPolicies(ctx context.Context, query string, args ...any) ([]*secondary.PolicyRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &secondary.StorageError{Op: "policy.list", Err: err}
	}
	defer rows.Close()

	var policies []*secondary.PolicyRecord
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "policy.list", Err: err}
	}
	return policies, nil
}

func scanPolicy(row rowScanner) (*secondary.PolicyRecord, error) {
	var (
		contractDate time.Time
		contact      sql.NullString
		signature    sql.NullString
		createdAt    time.Time
		updatedAt    time.Time
	)

	record := &secondary.PolicyRecord{}
	err := row.Scan(&record.ID, &record.ClientID, &contractDate, &contact, &signature, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("policy.get", err)
	}

	record.ContractDate = contractDate.Format("2006-01-02")
	record.Contact = contact.String
	record.Signature = signature.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

var _ secondary.PolicyRepository = (*PolicyRepository)(nil)
