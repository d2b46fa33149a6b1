package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

func newTestClientService() (*ClientServiceImpl, *mockClientRepository) {
	clientRepo := newMockClientRepository()
	auth := NewAuthService(clientRepo, newMockStaffRepository())
	return NewClientService(clientRepo, auth), clientRepo
}

func TestGetClient_StaffSeesAnyone(t *testing.T) {
	service, clientRepo := newTestClientService()

	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	client, err := service.GetClient(staffCtx(), carlos.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.Name != "Carlos Silva" {
		t.Errorf("expected name 'Carlos Silva', got '%s'", client.Name)
	}
}

func TestGetClient_ClientSeesOnlyOwnRow(t *testing.T) {
	service, clientRepo := newTestClientService()

	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	ana := clientRepo.add(&secondary.ClientRecord{NationalID: "98765432109", Name: "Ana Souza", PasswordHash: "x"})

	ctx := clientCtx("12345678901")

	own, err := service.GetClient(ctx, carlos.ID)
	if err != nil {
		t.Fatalf("expected own row to be visible, got %v", err)
	}
	if own.NationalID != "12345678901" {
		t.Errorf("expected own national ID, got '%s'", own.NationalID)
	}

	// The other client's row reads as not found, never as denied.
	_, err = service.GetClient(ctx, ana.ID)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for out-of-scope client, got %v", err)
	}
}

func TestGetClient_AnonymousDenied(t *testing.T) {
	service, clientRepo := newTestClientService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	_, err := service.GetClient(context.Background(), carlos.ID)
	if !primary.IsAuthorizationDenied(err) {
		t.Fatalf("expected authorization denial for anonymous caller, got %v", err)
	}
}

func TestListClients_Scoped(t *testing.T) {
	service, clientRepo := newTestClientService()

	clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	clientRepo.add(&secondary.ClientRecord{NationalID: "98765432109", Name: "Ana Souza", PasswordHash: "x"})

	all, err := service.ListClients(staffCtx())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected staff to see 2 clients, got %d", len(all))
	}

	own, err := service.ListClients(clientCtx("12345678901"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(own) != 1 || own[0].NationalID != "12345678901" {
		t.Fatalf("expected client to see only own record, got %d records", len(own))
	}
}

func TestUpdateClient_StaffOnly(t *testing.T) {
	service, clientRepo := newTestClientService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	// Clients may not update anything, their own profile included.
	_, err := service.UpdateClient(clientCtx("12345678901"), primary.UpdateClientRequest{
		ClientID: carlos.ID,
		Name:     "Hacked Name",
	})
	if !primary.IsAuthorizationDenied(err) {
		t.Fatalf("expected authorization denial, got %v", err)
	}

	updated, err := service.UpdateClient(staffCtx(), primary.UpdateClientRequest{
		ClientID: carlos.ID,
		Name:     "Carlos A. Silva",
		Phone:    "98888-0000",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Name != "Carlos A. Silva" {
		t.Errorf("expected updated name, got '%s'", updated.Name)
	}
	// Untouched fields survive the patch.
	if updated.NationalID != "12345678901" {
		t.Errorf("expected national ID preserved, got '%s'", updated.NationalID)
	}
}

func TestDeleteClient_StaffOnly(t *testing.T) {
	service, clientRepo := newTestClientService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	if err := service.DeleteClient(clientCtx("12345678901"), carlos.ID); !primary.IsAuthorizationDenied(err) {
		t.Fatalf("expected authorization denial, got %v", err)
	}

	if err := service.DeleteClient(staffCtx(), carlos.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, exists := clientRepo.clients[carlos.ID]; exists {
		t.Error("expected client to be deleted")
	}
}

func TestDeleteClient_ReferentialBlockPassedThrough(t *testing.T) {
	service, clientRepo := newTestClientService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	clientRepo.deleteErr = &secondary.ReferentialBlockError{Entity: "client", ID: carlos.ID, Dependents: "policy", Count: 2}

	err := service.DeleteClient(staffCtx(), carlos.ID)
	if !secondary.IsReferentialBlock(err) {
		t.Fatalf("expected ReferentialBlockError, got %v", err)
	}
}
