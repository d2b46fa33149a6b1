package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/segura/internal/ports/secondary"
)

// StaffRepository implements secondary.StaffRepository with SQLite.
type StaffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new SQLite staff repository.
func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = "id, national_id, name, job_title, department, hired_on, salary, password_hash, created_at, updated_at"

// Create persists a new staff member and returns its assigned id.
func (r *StaffRepository) Create(ctx context.Context, staff *secondary.StaffRecord) (int64, error) {
	var hiredOn any
	if staff.HiredOn != "" {
		hiredOn = staff.HiredOn
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO staff (national_id, name, job_title, department, hired_on, salary, password_hash) VALUES (?, ?, ?, ?, ?, ?, ?)",
		staff.NationalID, staff.Name, nullable(staff.JobTitle), nullable(staff.Department), hiredOn, staff.Salary, staff.PasswordHash,
	)
	if err != nil {
		return 0, mapConstraintErr("staff.create", "staff", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &secondary.StorageError{Op: "staff.create", Err: err}
	}
	return id, nil
}

// GetByID retrieves a staff member by its id.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*secondary.StaffRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM staff WHERE id = ?", id)
	return scanStaff(row)
}

// GetByNationalID retrieves a staff member by national ID.
func (r *StaffRepository) GetByNationalID(ctx context.Context, nationalID string) (*secondary.StaffRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM staff WHERE national_id = ?", nationalID)
	return scanStaff(row)
}

// List retrieves all staff members ordered by id.
func (r *StaffRepository) List(ctx context.Context) ([]*secondary.StaffRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+staffColumns+" FROM staff ORDER BY id ASC")
	if err != nil {
		return nil, &secondary.StorageError{Op: "staff.list", Err: err}
	}
	defer rows.Close()

	var members []*secondary.StaffRecord
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StorageError{Op: "staff.list", Err: err}
	}
	return members, nil
}

// Update updates a staff member's profile fields.
func (r *StaffRepository) Update(ctx context.Context, staff *secondary.StaffRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE staff SET name = ?, job_title = ?, department = ?, salary = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		staff.Name, nullable(staff.JobTitle), nullable(staff.Department), staff.Salary, staff.ID,
	)
	if err != nil {
		return mapConstraintErr("staff.update", "staff", err)
	}
	return requireAffected("staff.update", res)
}

// Delete removes a staff member. Staff rows have no dependents.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM staff WHERE id = ?", id)
	if err != nil {
		return mapConstraintErr("staff.delete", "staff", err)
	}
	return requireAffected("staff.delete", res)
}

// NationalIDExists reports whether the national ID is already taken.
func (r *StaffRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM staff WHERE national_id = ?", nationalID).Scan(&count); err != nil {
		return false, &secondary.StorageError{Op: "staff.exists", Err: err}
	}
	return count > 0, nil
}

func scanStaff(row rowScanner) (*secondary.StaffRecord, error) {
	var (
		jobTitle   sql.NullString
		department sql.NullString
		hiredOn    sql.NullTime
		salary     sql.NullFloat64
		createdAt  time.Time
		updatedAt  time.Time
	)

	record := &secondary.StaffRecord{}
	err := row.Scan(&record.ID, &record.NationalID, &record.Name, &jobTitle, &department,
		&hiredOn, &salary, &record.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		return nil, notFoundOr("staff.get", err)
	}

	record.JobTitle = jobTitle.String
	record.Department = department.String
	if hiredOn.Valid {
		record.HiredOn = hiredOn.Time.Format("2006-01-02")
	}
	record.Salary = salary.Float64
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

var _ secondary.StaffRepository = (*StaffRepository)(nil)
