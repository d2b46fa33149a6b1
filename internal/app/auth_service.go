package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
	"github.com/example/segura/internal/security/password"
)

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	clientRepo secondary.ClientRepository
	staffRepo  secondary.StaffRepository
	hashParams password.Params
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(
	clientRepo secondary.ClientRepository,
	staffRepo secondary.StaffRepository,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientRepo: clientRepo,
		staffRepo:  staffRepo,
		hashParams: password.Default,
	}
}

// RegisterClient creates a client identity. Unauthenticated callers may
// register themselves; a logged-in client may only register their own
// national ID (which then fails as a duplicate); staff may register anyone.
func (s *AuthServiceImpl) RegisterClient(ctx context.Context, req primary.RegisterClientRequest) (*primary.Client, error) {
	role, callerID := actorFrom(ctx)
	if role.Valid() {
		if err := authorizeWrite(access.WriteContext{
			Role:       role,
			Entity:     access.EntityClient,
			Op:         access.OpCreate,
			OwnsTarget: callerID == req.NationalID,
		}); err != nil {
			return nil, err
		}
	}

	if err := validate.NationalID(req.NationalID); err != nil {
		return nil, &primary.ValidationError{Field: "national_id", Reason: err.Error()}
	}
	if err := validate.Required("name", req.Name); err != nil {
		return nil, &primary.ValidationError{Field: "name", Reason: err.Error()}
	}
	if err := validate.Required("password", req.Password); err != nil {
		return nil, &primary.ValidationError{Field: "password", Reason: err.Error()}
	}

	// Duplicate pre-check; the UNIQUE constraint is the backstop against
	// the race between this check and the insert.
	taken, err := s.clientRepo.NationalIDExists(ctx, req.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check national ID: %w", err)
	}
	if taken {
		return nil, secondary.ErrDuplicateIdentity
	}

	hash, err := password.Hash(s.hashParams, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := &secondary.ClientRecord{
		NationalID:   req.NationalID,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
	}
	id, err := s.clientRepo.Create(ctx, record)
	if err != nil {
		var ie *secondary.IntegrityError
		if errors.As(err, &ie) && ie.Field == "national_id" {
			return nil, secondary.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	created, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created client: %w", err)
	}
	return clientRecordToPort(created), nil
}

// RegisterStaff creates a staff identity. Staff-only.
func (s *AuthServiceImpl) RegisterStaff(ctx context.Context, req primary.RegisterStaffRequest) (*primary.Staff, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityStaff,
		Op:     access.OpCreate,
	}); err != nil {
		return nil, err
	}

	if err := validate.NationalID(req.NationalID); err != nil {
		return nil, &primary.ValidationError{Field: "national_id", Reason: err.Error()}
	}
	if err := validate.Required("name", req.Name); err != nil {
		return nil, &primary.ValidationError{Field: "name", Reason: err.Error()}
	}
	if err := validate.Required("password", req.Password); err != nil {
		return nil, &primary.ValidationError{Field: "password", Reason: err.Error()}
	}

	var hiredOn string
	if req.HiredOn != "" {
		t, err := validate.Date(req.HiredOn)
		if err != nil {
			return nil, &primary.ValidationError{Field: "hired_on", Reason: err.Error()}
		}
		hiredOn = t.Format("2006-01-02")
	}
	var salary float64
	if req.Salary != "" {
		salary, err = validate.Money(req.Salary)
		if err != nil {
			return nil, &primary.ValidationError{Field: "salary", Reason: err.Error()}
		}
	}

	taken, err := s.staffRepo.NationalIDExists(ctx, req.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check national ID: %w", err)
	}
	if taken {
		return nil, secondary.ErrDuplicateIdentity
	}

	hash, err := password.Hash(s.hashParams, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	record := &secondary.StaffRecord{
		NationalID:   req.NationalID,
		Name:         req.Name,
		JobTitle:     req.JobTitle,
		Department:   req.Department,
		HiredOn:      hiredOn,
		Salary:       salary,
		PasswordHash: hash,
	}
	id, err := s.staffRepo.Create(ctx, record)
	if err != nil {
		var ie *secondary.IntegrityError
		if errors.As(err, &ie) && ie.Field == "national_id" {
			return nil, secondary.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	created, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created staff: %w", err)
	}
	return staffRecordToPort(created), nil
}

// Login verifies a credential against both identity kinds under the same
// national ID space, clients first. National IDs are unique only within
// each kind; an ID present in both kinds always authenticates as the
// client. Unknown IDs and wrong passwords produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, nationalID, plaintext string) (*primary.Session, error) {
	client, err := s.clientRepo.GetByNationalID(ctx, nationalID)
	if err == nil {
		if !password.Verify(plaintext, client.PasswordHash) {
			return nil, secondary.ErrInvalidCredentials
		}
		return &primary.Session{
			Role:       string(access.RoleClient),
			NationalID: client.NationalID,
			Name:       client.Name,
		}, nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}

	staff, err := s.staffRepo.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, secondary.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up staff: %w", err)
	}
	if !password.Verify(plaintext, staff.PasswordHash) {
		return nil, secondary.ErrInvalidCredentials
	}
	return &primary.Session{
		Role:       string(access.RoleStaff),
		NationalID: staff.NationalID,
		Name:       staff.Name,
	}, nil
}

var _ primary.AuthService = (*AuthServiceImpl)(nil)
