package app

import (
	"context"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

// IncidentServiceImpl implements the IncidentService interface.
type IncidentServiceImpl struct {
	incidentRepo secondary.IncidentRepository
	propertyRepo secondary.PropertyRepository
}

// NewIncidentService creates a new IncidentService with injected dependencies.
func NewIncidentService(
	incidentRepo secondary.IncidentRepository,
	propertyRepo secondary.PropertyRepository,
) *IncidentServiceImpl {
	return &IncidentServiceImpl{
		incidentRepo: incidentRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateIncident records an incident against an existing property. Staff-only.
// The referential prerequisite is checked before any row is written.
func (s *IncidentServiceImpl) CreateIncident(ctx context.Context, req primary.CreateIncidentRequest) (*primary.Incident, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityIncident,
		Op:     access.OpCreate,
	}); err != nil {
		return nil, err
	}

	if err := validate.Required("description", req.Description); err != nil {
		return nil, &primary.ValidationError{Field: "description", Reason: err.Error()}
	}
	occurredOn, err := validate.Date(req.OccurredOn)
	if err != nil {
		return nil, &primary.ValidationError{Field: "occurred_on", Reason: err.Error()}
	}
	amount, err := validate.Money(req.Amount)
	if err != nil {
		return nil, &primary.ValidationError{Field: "amount", Reason: err.Error()}
	}

	// Referential prerequisite: the property must exist.
	exists, err := s.propertyRepo.Exists(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate property: %w", err)
	}
	if !exists {
		return nil, &primary.ValidationError{Field: "property_id", Reason: fmt.Sprintf("property %d not found", req.PropertyID)}
	}

	record := &secondary.IncidentRecord{
		PropertyID:  req.PropertyID,
		Description: req.Description,
		OccurredOn:  occurredOn.Format("2006-01-02"),
		Amount:      amount,
		Kind:        req.Kind,
	}
	id, err := s.incidentRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	created, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created incident: %w", err)
	}
	return incidentRecordToPort(created), nil
}

// GetIncident retrieves an incident by id within the caller's scope.
func (s *IncidentServiceImpl) GetIncident(ctx context.Context, incidentID int64) (*primary.Incident, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityIncident)
	if scope.All {
		record, err := s.incidentRepo.GetByID(ctx, incidentID)
		if err != nil {
			return nil, err
		}
		return incidentRecordToPort(record), nil
	}

	records, err := s.incidentRepo.ListByClientNationalID(ctx, scope.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	for _, r := range records {
		if r.ID == incidentID {
			return incidentRecordToPort(r), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// ListIncidents lists the incidents visible to the caller.
func (s *IncidentServiceImpl) ListIncidents(ctx context.Context) ([]*primary.Incident, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityIncident)
	var records []*secondary.IncidentRecord
	if scope.All {
		records, err = s.incidentRepo.List(ctx)
	} else {
		records, err = s.incidentRepo.ListByClientNationalID(ctx, scope.NationalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	incidents := make([]*primary.Incident, len(records))
	for i, r := range records {
		incidents[i] = incidentRecordToPort(r)
	}
	return incidents, nil
}

// UpdateIncident updates an incident. Staff-only.
func (s *IncidentServiceImpl) UpdateIncident(ctx context.Context, req primary.UpdateIncidentRequest) (*primary.Incident, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityIncident,
		Op:     access.OpUpdate,
	}); err != nil {
		return nil, err
	}

	record, err := s.incidentRepo.GetByID(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		record.Description = req.Description
	}
	if req.OccurredOn != "" {
		t, err := validate.Date(req.OccurredOn)
		if err != nil {
			return nil, &primary.ValidationError{Field: "occurred_on", Reason: err.Error()}
		}
		record.OccurredOn = t.Format("2006-01-02")
	}
	if req.Amount != "" {
		amount, err := validate.Money(req.Amount)
		if err != nil {
			return nil, &primary.ValidationError{Field: "amount", Reason: err.Error()}
		}
		record.Amount = amount
	}
	if req.Kind != "" {
		record.Kind = req.Kind
	}

	if err := s.incidentRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	updated, err := s.incidentRepo.GetByID(ctx, req.IncidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated incident: %w", err)
	}
	return incidentRecordToPort(updated), nil
}

// DeleteIncident removes an incident. Staff-only; incidents are leaf
// records and delete unconditionally.
func (s *IncidentServiceImpl) DeleteIncident(ctx context.Context, incidentID int64) error {
	role, _, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityIncident,
		Op:     access.OpDelete,
	}); err != nil {
		return err
	}

	return s.incidentRepo.Delete(ctx, incidentID)
}

func incidentRecordToPort(r *secondary.IncidentRecord) *primary.Incident {
	return &primary.Incident{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Description: r.Description,
		OccurredOn:  r.OccurredOn,
		Amount:      r.Amount,
		Kind:        r.Kind,
		CreatedAt:   r.CreatedAt,
	}
}

var _ primary.IncidentService = (*IncidentServiceImpl)(nil)
