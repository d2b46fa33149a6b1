// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the persistent store.
package secondary

import "context"

// ClientRepository defines the secondary port for client persistence.
type ClientRepository interface {
	// Create persists a new client and returns its assigned id.
	Create(ctx context.Context, client *ClientRecord) (int64, error)

	// GetByID retrieves a client by its id.
	GetByID(ctx context.Context, id int64) (*ClientRecord, error)

	// GetByNationalID retrieves a client by national ID.
	GetByNationalID(ctx context.Context, nationalID string) (*ClientRecord, error)

	// List retrieves all clients.
	List(ctx context.Context) ([]*ClientRecord, error)

	// Update updates an existing client's profile fields.
	Update(ctx context.Context, client *ClientRecord) error

	// Delete removes a client. Fails with ReferentialBlockError while
	// policies still reference it.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a client row exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// NationalIDExists reports whether the national ID is already taken.
	NationalIDExists(ctx context.Context, nationalID string) (bool, error)
}

// PolicyRepository defines the secondary port for policy persistence.
type PolicyRepository interface {
	Create(ctx context.Context, policy *PolicyRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*PolicyRecord, error)
	List(ctx context.Context) ([]*PolicyRecord, error)

	// ListByClient retrieves the policies owned by one client row.
	ListByClient(ctx context.Context, clientID int64) ([]*PolicyRecord, error)

	// ListByClientNationalID retrieves the policies reachable from a
	// client national ID (join through clients).
	ListByClientNationalID(ctx context.Context, nationalID string) ([]*PolicyRecord, error)

	Update(ctx context.Context, policy *PolicyRecord) error

	// Delete removes a policy. Fails with ReferentialBlockError while a
	// property still references it.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)

	// HasProperty reports whether a property is already attached to the
	// policy (pre-check for the one-to-one constraint).
	HasProperty(ctx context.Context, policyID int64) (bool, error)
}

// PropertyRepository defines the secondary port for property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *PropertyRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*PropertyRecord, error)
	List(ctx context.Context) ([]*PropertyRecord, error)

	// GetByPolicy retrieves the property attached to a policy, if any.
	GetByPolicy(ctx context.Context, policyID int64) (*PropertyRecord, error)

	// ListByClientNationalID retrieves the properties reachable from a
	// client national ID (join through policies and clients).
	ListByClientNationalID(ctx context.Context, nationalID string) ([]*PropertyRecord, error)

	Update(ctx context.Context, property *PropertyRecord) error

	// Delete removes a property. Fails with ReferentialBlockError while
	// incidents still reference it.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
}

// IncidentRepository defines the secondary port for incident persistence.
type IncidentRepository interface {
	Create(ctx context.Context, incident *IncidentRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*IncidentRecord, error)
	List(ctx context.Context) ([]*IncidentRecord, error)

	// ListByProperty retrieves the incidents against one property.
	ListByProperty(ctx context.Context, propertyID int64) ([]*IncidentRecord, error)

	// ListByClientNationalID retrieves the incidents reachable from a
	// client national ID (full client -> policy -> property join chain).
	ListByClientNationalID(ctx context.Context, nationalID string) ([]*IncidentRecord, error)

	Update(ctx context.Context, incident *IncidentRecord) error

	// Delete removes an incident unconditionally (leaf entity).
	Delete(ctx context.Context, id int64) error
}

// StaffRepository defines the secondary port for staff persistence.
type StaffRepository interface {
	Create(ctx context.Context, staff *StaffRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*StaffRecord, error)
	GetByNationalID(ctx context.Context, nationalID string) (*StaffRecord, error)
	List(ctx context.Context) ([]*StaffRecord, error)
	Update(ctx context.Context, staff *StaffRecord) error
	Delete(ctx context.Context, id int64) error
	NationalIDExists(ctx context.Context, nationalID string) (bool, error)
}

// ClientRecord represents a client as stored in persistence.
// PasswordHash is a PHC-encoded digest, never plaintext.
type ClientRecord struct {
	ID           int64
	NationalID   string
	Name         string
	Address      string
	Phone        string
	Email        string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// PolicyRecord represents a policy as stored in persistence.
// ContractDate is an ISO calendar date (YYYY-MM-DD).
type PolicyRecord struct {
	ID           int64
	ClientID     int64
	ContractDate string
	Contact      string
	Signature    string
	CreatedAt    string
	UpdatedAt    string
}

// PropertyRecord represents an insured property as stored in persistence.
type PropertyRecord struct {
	ID        int64
	PolicyID  int64
	Address   string
	Floor     int
	Kind      string
	Unit      int
	CreatedAt string
	UpdatedAt string
}

// IncidentRecord represents an incident claim as stored in persistence.
// OccurredOn is an ISO calendar date (YYYY-MM-DD).
type IncidentRecord struct {
	ID          int64
	PropertyID  int64
	Description string
	OccurredOn  string
	Amount      float64
	Kind        string
	CreatedAt   string
	UpdatedAt   string
}

// StaffRecord represents a staff member as stored in persistence.
type StaffRecord struct {
	ID           int64
	NationalID   string
	Name         string
	JobTitle     string
	Department   string
	HiredOn      string
	Salary       float64
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}
