package primary

import "context"

// ClientService defines the primary port for client record operations.
// Every method reads the caller's session from the context; the
// authorization policy is applied before any repository call.
type ClientService interface {
	// CreateClient creates a client record.
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)

	// GetClient retrieves a client by id within the caller's scope.
	GetClient(ctx context.Context, clientID int64) (*Client, error)

	// ListClients lists the clients visible to the caller.
	ListClients(ctx context.Context) ([]*Client, error)

	// UpdateClient updates a client's profile fields. Staff-only.
	UpdateClient(ctx context.Context, req UpdateClientRequest) (*Client, error)

	// DeleteClient removes a client. Staff-only; refused while policies
	// still reference the client.
	DeleteClient(ctx context.Context, clientID int64) error
}

// Client represents a client at the port boundary.
type Client struct {
	ID         int64
	NationalID string
	Name       string
	Address    string
	Phone      string
	Email      string
	CreatedAt  string
}

// CreateClientRequest contains parameters for creating a client.
type CreateClientRequest struct {
	NationalID string
	Name       string
	Address    string
	Phone      string
	Email      string
	Password   string
}

// UpdateClientRequest contains parameters for updating a client's profile.
// Zero-valued fields are left unchanged.
type UpdateClientRequest struct {
	ClientID int64
	Name     string
	Address  string
	Phone    string
	Email    string
}
