package primary

import "context"

// StaffService defines the primary port for staff record operations.
// Staff records are outside the policy chain; every operation, reads
// included, is staff-only.
type StaffService interface {
	// GetStaff retrieves a staff member by id.
	GetStaff(ctx context.Context, staffID int64) (*Staff, error)

	// ListStaff lists all staff members.
	ListStaff(ctx context.Context) ([]*Staff, error)

	// UpdateStaff updates a staff member's profile fields.
	UpdateStaff(ctx context.Context, req UpdateStaffRequest) (*Staff, error)

	// DeleteStaff removes a staff member.
	DeleteStaff(ctx context.Context, staffID int64) error
}

// Staff represents a staff member at the port boundary.
// HiredOn is an ISO calendar date (YYYY-MM-DD).
type Staff struct {
	ID         int64
	NationalID string
	Name       string
	JobTitle   string
	Department string
	HiredOn    string
	Salary     float64
	CreatedAt  string
}

// UpdateStaffRequest contains parameters for updating a staff member.
// Zero-valued fields are left unchanged.
type UpdateStaffRequest struct {
	StaffID    int64
	Name       string
	JobTitle   string
	Department string
	Salary     string
}
