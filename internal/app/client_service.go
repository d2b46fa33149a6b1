package app

import (
	"context"
	"fmt"

	"github.com/example/segura/internal/core/access"
	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

// ClientServiceImpl implements the ClientService interface.
type ClientServiceImpl struct {
	clientRepo secondary.ClientRepository
	auth       primary.AuthService
}

// NewClientService creates a new ClientService with injected dependencies.
func NewClientService(
	clientRepo secondary.ClientRepository,
	auth primary.AuthService,
) *ClientServiceImpl {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
		auth:       auth,
	}
}

// CreateClient creates a client record. Creation always goes through the
// credential registration path so the password is hashed exactly once.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req primary.CreateClientRequest) (*primary.Client, error) {
	return s.auth.RegisterClient(ctx, primary.RegisterClientRequest{
		NationalID: req.NationalID,
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
	})
}

// GetClient retrieves a client by id. For client callers only their own row
// is ever fetched; any other id reads as not found.
func (s *ClientServiceImpl) GetClient(ctx context.Context, clientID int64) (*primary.Client, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityClient)
	if scope.All {
		record, err := s.clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return clientRecordToPort(record), nil
	}

	record, err := s.clientRepo.GetByNationalID(ctx, scope.NationalID)
	if err != nil {
		return nil, err
	}
	if record.ID != clientID {
		return nil, secondary.ErrNotFound
	}
	return clientRecordToPort(record), nil
}

// ListClients lists the clients visible to the caller.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]*primary.Client, error) {
	role, nationalID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	scope := access.ScopeFor(role, nationalID, access.EntityClient)
	if scope.All {
		records, err := s.clientRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list clients: %w", err)
		}
		clients := make([]*primary.Client, len(records))
		for i, r := range records {
			clients[i] = clientRecordToPort(r)
		}
		return clients, nil
	}

	record, err := s.clientRepo.GetByNationalID(ctx, scope.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return []*primary.Client{clientRecordToPort(record)}, nil
}

// UpdateClient updates a client's profile fields. Staff-only.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req primary.UpdateClientRequest) (*primary.Client, error) {
	role, _, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityClient,
		Op:     access.OpUpdate,
	}); err != nil {
		return nil, err
	}

	record, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Address != "" {
		record.Address = req.Address
	}
	if req.Phone != "" {
		record.Phone = req.Phone
	}
	if req.Email != "" {
		record.Email = req.Email
	}

	if err := s.clientRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	updated, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated client: %w", err)
	}
	return clientRecordToPort(updated), nil
}

// DeleteClient removes a client. Staff-only; refused while policies still
// reference the client (restrict policy).
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, clientID int64) error {
	role, _, err := requireActor(ctx)
	if err != nil {
		return err
	}
	if err := authorizeWrite(access.WriteContext{
		Role:   role,
		Entity: access.EntityClient,
		Op:     access.OpDelete,
	}); err != nil {
		return err
	}

	return s.clientRepo.Delete(ctx, clientID)
}

func clientRecordToPort(r *secondary.ClientRecord) *primary.Client {
	return &primary.Client{
		ID:         r.ID,
		NationalID: r.NationalID,
		Name:       r.Name,
		Address:    r.Address,
		Phone:      r.Phone,
		Email:      r.Email,
		CreatedAt:  r.CreatedAt,
	}
}

var _ primary.ClientService = (*ClientServiceImpl)(nil)
