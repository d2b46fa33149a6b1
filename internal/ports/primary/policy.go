package primary

import "context"

// PolicyService defines the primary port for policy record operations.
type PolicyService interface {
	// CreatePolicy creates a policy under an existing client.
	CreatePolicy(ctx context.Context, req CreatePolicyRequest) (*Policy, error)

	// GetPolicy retrieves a policy by id within the caller's scope.
	GetPolicy(ctx context.Context, policyID int64) (*Policy, error)

	// ListPolicies lists the policies visible to the caller.
	ListPolicies(ctx context.Context) ([]*Policy, error)

	// UpdatePolicy updates a policy. Staff-only.
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (*Policy, error)

	// DeletePolicy removes a policy. Staff-only; refused while a property
	// still references the policy.
	DeletePolicy(ctx context.Context, policyID int64) error
}

// Policy represents a policy at the port boundary.
// ContractDate is an ISO calendar date (YYYY-MM-DD).
type Policy struct {
	ID           int64
	ClientID     int64
	ContractDate string
	Contact      string
	Signature    string
	CreatedAt    string
}

// CreatePolicyRequest contains parameters for creating a policy.
// ContractDate accepts DD/MM/YYYY, DD-MM-YYYY or DDMMYYYY.
type CreatePolicyRequest struct {
	ClientID     int64
	ContractDate string
	Contact      string
	Signature    string
}

// UpdatePolicyRequest contains parameters for updating a policy.
// Zero-valued fields are left unchanged.
type UpdatePolicyRequest struct {
	PolicyID     int64
	ContractDate string
	Contact      string
	Signature    string
}
