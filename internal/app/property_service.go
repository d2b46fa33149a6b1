package app

import (
	"context"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

// PropertyServiceImpl implements the PropertyService interface.
type PropertyServiceImpl struct {
	propertyRepo secondary.PropertyRepository
	policyRepo   secondary.PolicyRepository
}

// NewPropertyService creates a new PropertyService with injected dependencies.
func NewPropertyService(
	propertyRepo secondary.PropertyRepository,
	policyRepo secondary.PolicyRepository,
) *PropertyServiceImpl {
	return &PropertyServiceImpl{
		propertyRepo: propertyRepo,
		policyRepo:   policyRepo,
	}
}

// CreateProperty attaches a property to an existing policy. Staff-only.
// The one-property-per-policy invariant is pre-checked here and enforced by
// the UNIQUE constraint at the storage boundary.
func (s *PropertyServiceImpl) CreateProperty(ctx context.Context, req primary.CreatePropertyRequest) (*primary.Property, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityProperty,
		Op:     access.OpCreate,
	}); err != nil {
		return nil, err
	}

	if err := validate.Required("address", req.Address); err != nil {
		return nil, &primary.ValidationError{Field: "address", Reason: err.Error()}
	}
	if err := validate.PropertyKind(req.Kind); err != nil {
		return nil, &primary.ValidationError{Field: "kind", Reason: err.Error()}
	}
	if req.Unit < 0 {
		return nil, &primary.ValidationError{Field: "unit", Reason: "unit number must not be negative"}
	}

	// Referential prerequisite: the policy must exist.
	exists, err := s.policyRepo.Exists(ctx, req.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate policy: %w", err)
	}
	if !exists {
		return nil, &primary.ValidationError{Field: "policy_id", Reason: fmt.Sprintf("policy %d not found", req.PolicyID)}
	}

	// One-to-one pre-check; the UNIQUE constraint catches the race.
	taken, err := s.policyRepo.HasProperty(ctx, req.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check policy property: %w", err)
	}
	if taken {
		return nil, &secondary.IntegrityError{
			Constraint: "unique",
			Entity:     "property",
			Field:      "policy_id",
		}
	}

	record := &secondary.PropertyRecord{
		PolicyID: req.PolicyID,
		Address:  req.Address,
		Floor:    req.Floor,
		Kind:     req.Kind,
		Unit:     req.Unit,
	}
	id, err := s.propertyRepo.Create(ctx, record)
	if err != nil {
		if secondary.IsIntegrity(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	created, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created property: %w", err)
	}
	return propertyRecordToPort(created), nil
}

// GetProperty retrieves a property by id within the caller's scope.
func (s *PropertyServiceImpl) GetProperty(ctx context.Context, propertyID int64) (*primary.Property, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityProperty)
	if scope.All {
		record, err := s.propertyRepo.GetByID(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		return propertyRecordToPort(record), nil
	}

	records, err := s.propertyRepo.ListByClientNationalID(ctx, scope.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	for _, r := range records {
		if r.ID == propertyID {
			return propertyRecordToPort(r), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// ListProperties lists the properties visible to the caller.
func (s *PropertyServiceImpl) ListProperties(ctx context.Context) ([]*primary.Property, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityProperty)
	var records []*secondary.PropertyRecord
	if scope.All {
		records, err = s.propertyRepo.List(ctx)
	} else {
		records, err = s.propertyRepo.ListByClientNationalID(ctx, scope.NationalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]*primary.Property, len(records))
	for i, r := range records {
		properties[i] = propertyRecordToPort(r)
	}
	return properties, nil
}

// UpdateProperty updates a property. Staff-only.
func (s *PropertyServiceImpl) UpdateProperty(ctx context.Context, req primary.UpdatePropertyRequest) (*primary.Property, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityProperty,
		Op:     access.OpUpdate,
	}); err != nil {
		return nil, err
	}

	record, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	if req.Address != "" {
		record.Address = req.Address
	}
	if req.Floor != nil {
		record.Floor = *req.Floor
	}
	if req.Kind != "" {
		if err := validate.PropertyKind(req.Kind); err != nil {
			return nil, &primary.ValidationError{Field: "kind", Reason: err.Error()}
		}
		record.Kind = req.Kind
	}
	if req.Unit != nil {
		if *req.Unit < 0 {
			return nil, &primary.ValidationError{Field: "unit", Reason: "unit number must not be negative"}
		}
		record.Unit = *req.Unit
	}

	if err := s.propertyRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	updated, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated property: %w", err)
	}
	return propertyRecordToPort(updated), nil
}

// DeleteProperty removes a property. Staff-only; refused while incidents
// still reference the property (restrict policy).
func (s *PropertyServiceImpl) DeleteProperty(ctx context.Context, propertyID int64) error {
	role, _, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityProperty,
		Op:     access.OpDelete,
	}); err != nil {
		return err
	}

	return s.propertyRepo.Delete(ctx, propertyID)
}

func propertyRecordToPort(r *secondary.PropertyRecord) *primary.Property {
	return &primary.Property{
		ID:        r.ID,
		PolicyID:  r.PolicyID,
		Address:   r.Address,
		Floor:     r.Floor,
		Kind:      r.Kind,
		Unit:      r.Unit,
		CreatedAt: r.CreatedAt,
	}
}

var _ primary.PropertyService = (*PropertyServiceImpl)(nil)
