package primary

import "context"

// AuthService defines the primary port for identity and credential
// operations. It is the only entry point that handles plaintext passwords.
type AuthService interface {
	// RegisterClient creates a client identity with a hashed credential.
	RegisterClient(ctx context.Context, req RegisterClientRequest) (*Client, error)

	// RegisterStaff creates a staff identity with a hashed credential.
	// Staff-only.
	RegisterStaff(ctx context.Context, req RegisterStaffRequest) (*Staff, error)

	// Login verifies a credential and returns the session identity.
	// The client identity kind is tried before staff; failures for unknown
	// IDs and wrong passwords are indistinguishable.
	Login(ctx context.Context, nationalID, password string) (*Session, error)
}

// Session identifies an authenticated caller.
type Session struct {
	Role       string // "STAFF" or "CLIENT"
	NationalID string
	Name       string
}

// RegisterClientRequest contains parameters for registering a client.
type RegisterClientRequest struct {
	NationalID string
	Name       string
	Address    string
	Phone      string
	Email      string
	Password   string
}

// RegisterStaffRequest contains parameters for registering a staff member.
type RegisterStaffRequest struct {
	NationalID string
	Name       string
	JobTitle   string
	Department string
	HiredOn    string // DD/MM/YYYY, DD-MM-YYYY or DDMMYYYY
	Salary     string
	Password   string
}
