package app

import (
	"context"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/core/validate"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

// PolicyServiceImpl implements the PolicyService interface.
type PolicyServiceImpl struct {
	policyRepo secondary.PolicyRepository
	clientRepo secondary.ClientRepository
}

// NewPolicyService creates a new PolicyService with injected dependencies.
func NewPolicyService(
	policyRepo secondary.PolicyRepository,
	clientRepo secondary.ClientRepository,
) *PolicyServiceImpl {
	return &PolicyServiceImpl{
		policyRepo: policyRepo,
		clientRepo: clientRepo,
	}
}

// CreatePolicy creates a policy under an existing client. Clients may only
// create policies under their own client row.
func (s *PolicyServiceImpl) CreatePolicy(ctx context.Context, req primary.CreatePolicyRequest) (*primary.Policy, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ownsTarget := role == access.RoleStaff
	if role == access.RoleClient {
		// Ownership is established through the caller's own client row,
		// which is always inside their scope.
		own, err := s.clientRepo.GetByNationalID(ctx, nationalID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve caller client: %w", err)
		}
		ownsTarget = own.ID == req.ClientID
	}
	if err := authorizeWrite(access.WriteContext{
		Role:       role,
		Entity:     access.EntityPolicy,
		Op:         access.OpCreate,
		OwnsTarget: ownsTarget,
	}); err != nil {
		return nil, err
	}

	contractDate, err := validate.Date(req.ContractDate)
	if err != nil {
		return nil, &primary.ValidationError{Field: "contract_date", Reason: err.Error()}
	}

	// Referential prerequisite: the owning client must exist.
	exists, err := s.clientRepo.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate client: %w", err)
	}
	if !exists {
		return nil, &primary.ValidationError{Field: "client_id", Reason: fmt.Sprintf("client %d not found", req.ClientID)}
	}

	record := &secondary.PolicyRecord{
		ClientID:     req.ClientID,
		ContractDate: contractDate.Format("2006-01-02"),
		Contact:      req.Contact,
		Signature:    req.Signature,
	}
	id, err := s.policyRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	created, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created policy: %w", err)
	}
	return policyRecordToPort(created), nil
}

// GetPolicy retrieves a policy by id within the caller's scope.
func (s *PolicyServiceImpl) GetPolicy(ctx context.Context, policyID int64) (*primary.Policy, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityPolicy)
	if scope.All {
		record, err := s.policyRepo.GetByID(ctx, policyID)
		if err != nil {
			return nil, err
		}
		return policyRecordToPort(record), nil
	}

	records, err := s.policyRepo.ListByClientNationalID(ctx, scope.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	for _, r := range records {
		if r.ID == policyID {
			return policyRecordToPort(r), nil
		}
	}
	return nil, secondary.ErrNotFound
}

// ListPolicies lists the policies visible to the caller.
func (s *PolicyServiceImpl) ListPolicies(ctx context.Context) ([]*primary.Policy, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityPolicy)
	var records []*secondary.PolicyRecord
	if scope.All {
		records, err = s.policyRepo.List(ctx)
	} else {
		records, err = s.policyRepo.ListByClientNationalID(ctx, scope.NationalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	policies := make([]*primary.Policy, len(records))
	for i, r := range records {
		policies[i] = policyRecordToPort(r)
	}
	return policies, nil
}

// UpdatePolicy updates a policy. Staff-only.
func (s *PolicyServiceImpl) UpdatePolicy(ctx context.Context, req primary.UpdatePolicyRequest) (*primary.Policy, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityPolicy,
		Op:     access.OpUpdate,
	}); err != nil {
		return nil, err
	}

	record, err := s.policyRepo.GetByID(ctx, req.PolicyID)
	if err != nil {
		return nil, err
	}

	if req.ContractDate != "" {
		t, err := validate.Date(req.ContractDate)
		if err != nil {
			return nil, &primary.ValidationError{Field: "contract_date", Reason: err.Error()}
		}
		record.ContractDate = t.Format("2006-01-02")
	}
	if req.Contact != "" {
		record.Contact = req.Contact
	}
	if req.Signature != "" {
		record.Signature = req.Signature
	}

	if err := s.policyRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}

	updated, err := s.policyRepo.GetByID(ctx, req.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated policy: %w", err)
	}
	return policyRecordToPort(updated), nil
}

// DeletePolicy removes a policy. Staff-only; refused while a property still
// references the policy (restrict policy).
func (s *PolicyServiceImpl) DeletePolicy(ctx context.Context, policyID int64) error {
	role, _, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityPolicy,
		Op:     access.OpDelete,
	}); err != nil {
		return err
	}

	return s.policyRepo.Delete(ctx, policyID)
}

func policyRecordToPort(r *secondary.PolicyRecord) *primary.Policy {
	return &primary.Policy{
		ID:           r.ID,
		ClientID:     r.ClientID,
		ContractDate: r.ContractDate,
		Contact:      r.Contact,
		Signature:    r.Signature,
		CreatedAt:    r.CreatedAt,
	}
}

var _ primary.PolicyService = (*PolicyServiceImpl)(nil)
