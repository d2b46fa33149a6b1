package app

import (
	"context"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

// StaffServiceImpl implements the StaffService interface. Staff records are
// outside the policy chain, so every operation including reads is
// staff-only.
type StaffServiceImpl struct {
	staffRepo secondary.StaffRepository
}

// NewStaffService creates a new StaffService with injected dependencies.
func NewStaffService(staffRepo secondary.StaffRepository) *StaffServiceImpl {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

// requireStaffScope rejects callers whose scope over staff records is empty.
func requireStaffScope(ctx context.Context) error {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if access.ScopeFor(role, nationalID, access.EntityStaff).None() {
		return &primary.AuthorizationDeniedError{Reason: "staff records are not visible to clients"}
	}
	return nil
}

// GetStaff retrieves a staff member by id.
func (s *StaffServiceImpl) GetStaff(ctx context.Context, staffID int64) (*primary.Staff, error) {
	if err := requireStaffScope(ctx); err != nil {
		return nil, err
	}
	record, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return staffRecordToPort(record), nil
}

// ListStaff lists all staff members.
func (s *StaffServiceImpl) ListStaff(ctx context.Context) ([]*primary.Staff, error) {
	if err := requireStaffScope(ctx); err != nil {
		return nil, err
	}
	records, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	members := make([]*primary.Staff, len(records))
	for i, r := range records {
		members[i] = staffRecordToPort(r)
	}
	return members, nil
}

// UpdateStaff updates a staff member's profile fields.
func (s *StaffServiceImpl) UpdateStaff(ctx context.Context, req primary.UpdateStaffRequest) (*primary.Staff, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityStaff,
		Op:     access.OpUpdate,
	}); err != nil {
		return nil, err
	}

	record, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.JobTitle != "" {
		record.JobTitle = req.JobTitle
	}
	if req.Department != "" {
		record.Department = req.Department
	}
	if req.Salary != "" {
		salary, err := validate.Money(req.Salary)
		if err != nil {
			return nil, &primary.ValidationError{Field: "salary", Reason: err.Error()}
		}
		record.Salary = salary
	}

	if err := s.staffRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	updated, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated staff: %w", err)
	}
	return staffRecordToPort(updated), nil
}

// DeleteStaff removes a staff member.
func (s *StaffServiceImpl) DeleteStaff(ctx context.Context, staffID int64) error {
	role, _, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityStaff,
		Op:     access.OpDelete,
	}); err != nil {
		return err
	}

	return s.staffRepo.Delete(ctx, staffID)
}

func staffRecordToPort(r *secondary.StaffRecord) *primary.Staff {
	return &primary.Staff{
		ID:         r.ID,
		NationalID: r.NationalID,
		Name:       r.Name,
		JobTitle:   r.JobTitle,
		Department: r.Department,
		HiredOn:    r.HiredOn,
		Salary:     r.Salary,
		CreatedAt:  r.CreatedAt,
	}
}

var _ primary.StaffService = (*StaffServiceImpl)(nil)
