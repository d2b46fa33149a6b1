package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/segura/internal/ports/secondary"
)

// ClientRepository implements secondary.ClientRepository with SQLite.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new SQLite client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = "id, national_id, name, address, phone, email, password_hash, created_at, updated_at"

// Create persists a new client and returns its assigned id.
func (r *ClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (national_id, name, address, phone, email, password_hash) VALUES (?, ?, ?, ?, ?, ?)",
		client.NationalID, client.Name, nullable(client.Address), nullable(client.Phone), nullable(client.Email), client.PasswordHash,
	)
	if err != nil {
		return 0, mapConstraintErr("client.create", "client", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "client.create", Err: err}
	}
	return id, nil
}

// GetByID retrieves a client by its id.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	return scanClient(row)
}

// GetByNationalID retrieves a client by national ID.
func (r *ClientRepository) GetByNationalID(ctx context.Context, nationalID string) (*secondary.ClientRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE national_id = ?", nationalID)
	return scanClient(row)
}

// List retrieves all clients ordered by id.
func (r *ClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY id ASC")
	if err != nil {
		return nil, &secondary.StorageError{Op: "client.list", Err: err}
	}
	defer rows.Close()

	var clients []*secondary.ClientRecord
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "client.list", Err: err}
	}
	return clients, nil
}

// Update updates a client's profile fields.
func (r *ClientRepository) Update(ctx context.Context, client *secondary.ClientRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE clients SET name = ?, address = ?, phone = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		client.Name, nullable(client.Address), nullable(client.Phone), nullable(client.Email), client.ID,
	)
	if err != nil {
		return mapConstraintErr("client.update", "client", err)
	}
	return requireAffected("client.update", res)
}

// Delete removes a client. The dependent-policy check and the delete run in
// one transaction; the RESTRICT foreign key backs the pre-check.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &secondary.StorageError{Op: "client.delete", Err: err}
	}
	defer tx.Rollback()

	var dependents int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM policies WHERE client_id = ?", id).Scan(&dependents); err != nil {
		return &secondary.StorageError{Op: "client.delete", Err: err}
	}
	if dependents > 0 {
		return &secondary.ReferentialBlockError{Entity: "client", ID: id, Dependents: "policy", Count: dependents}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return mapConstraintErr("client.delete", "client", err)
	}
	if err := requireAffected("client.delete", res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &secondary.StorageError{Op: "client.delete", Err: err}
	}
	return nil
}

// Exists reports whether a client row exists.
func (r *ClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ?", id).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "client.exists", Err: err}
	}
	return count > 0, nil
}

// NationalIDExists reports whether the national ID is already taken.
func (r *ClientRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE national_id = ?", nationalID).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "client.exists", Err: err}
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*secondary.ClientRecord, error) {
	var (
		address   sql.NullString
		phone     sql.NullString
		email     sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ClientRecord{}
	err := row.Scan(&record.ID, &record.NationalID, &record.Name, &address, &phone, &email,
		&record.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("client.get", err)
	}

	record.Address = address.String
	record.Phone = phone.String
	record.Email = email.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// nullable converts an empty string into a SQL NULL.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// requireAffected maps a zero-row mutation to ErrNotFound.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &secondary.StorageError{Op: op, Err: err}
	}
	if n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

var _ secondary.ClientRepository = (*ClientRepository)(nil)
