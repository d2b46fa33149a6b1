package primary

import "context"

// PropertyService defines the primary port for insured property operations.
type PropertyService interface {
	// CreateProperty attaches a property to an existing policy. At most
	// one property may reference a policy.
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Property, error)

	// GetProperty retrieves a property by id within the caller's scope.
	GetProperty(ctx context.Context, propertyID int64) (*Property, error)

	// ListProperties lists the properties visible to the caller.
	ListProperties(ctx context.Context) ([]*Property, error)

	// UpdateProperty updates a property. Staff-only.
	UpdateProperty(ctx context.Context, req UpdatePropertyRequest) (*Property, error)

	// DeleteProperty removes a property. Staff-only; refused while
	// incidents still reference the property.
	DeleteProperty(ctx context.Context, propertyID int64) error
}

// Property represents an insured property at the port boundary.
type Property struct {
	ID        int64
	PolicyID  int64
	Address   string
	Floor     int
	Kind      string
	Unit      int
	CreatedAt string
}

// CreatePropertyRequest contains parameters for creating a property.
type CreatePropertyRequest struct {
	PolicyID int64
	Address  string
	Floor    int
	Kind     string
	Unit     int
}

// UpdatePropertyRequest contains parameters for updating a property.
// Zero-valued fields are left unchanged; Floor uses a pointer so floor 0
// stays distinguishable from "not set".
type UpdatePropertyRequest struct {
	PropertyID int64
	Address    string
	Floor      *int
	Kind       string
	Unit       *int
}
