package primary

import "context"

// IncidentService defines the primary port for incident claim operations.
type IncidentService interface {
	// CreateIncident records an incident against an existing property.
	CreateIncident(ctx context.Context, req CreateIncidentRequest) (*Incident, error)

	// GetIncident retrieves an incident by id within the caller's scope.
	GetIncident(ctx context.Context, incidentID int64) (*Incident, error)

	// ListIncidents lists the incidents visible to the caller.
	ListIncidents(ctx context.Context) ([]*Incident, error)

	// UpdateIncident updates an incident. Staff-only.
	UpdateIncident(ctx context.Context, req UpdateIncidentRequest) (*Incident, error)

	// DeleteIncident removes an incident. Staff-only; incidents are leaf
	// records and delete unconditionally.
	DeleteIncident(ctx context.Context, incidentID int64) error
}

// Incident represents an incident claim at the port boundary.
// OccurredOn is an ISO calendar date (YYYY-MM-DD).
type Incident struct {
	ID          int64
	PropertyID  int64
	Description string
	OccurredOn  string
	Amount      float64
	Kind        string
	CreatedAt   string
}

// CreateIncidentRequest contains parameters for recording an incident.
// OccurredOn accepts DD/MM/YYYY, DD-MM-YYYY or DDMMYYYY; Amount must parse
// as a non-negative number.
type CreateIncidentRequest struct {
	PropertyID  int64
	Description string
	OccurredOn  string
	Amount      string
	Kind        string
}

// UpdateIncidentRequest contains parameters for updating an incident.
// Zero-valued fields are left unchanged.
type UpdateIncidentRequest struct {
	IncidentID  int64
	Description string
	OccurredOn  string
	Amount      string
	Kind        string
}
