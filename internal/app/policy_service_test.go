package app

import (
	"errors"
	"testing"

	"github.com/example/segura/internal/ports/primary"
	"github.com/example/segura/internal/ports/secondary"
)

func newTestPolicyService() (*PolicyServiceImpl, *mockPolicyRepository, *mockClientRepository) {
	clientRepo := newMockClientRepository()
	policyRepo := newMockPolicyRepository(clientRepo)
	return NewPolicyService(policyRepo, clientRepo), policyRepo, clientRepo
}

func TestCreatePolicy_Staff(t *testing.T) {
	service, _, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	policy, err := service.CreatePolicy(staffCtx(), primary.CreatePolicyRequest{
		ClientID:     carlos.ID,
		ContractDate: "15/01/2024",
		Contact:      "11 91234-5678",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if policy.ContractDate != "2024-01-15" {
		t.Errorf("expected normalized date '2024-01-15', got '%s'", policy.ContractDate)
	}
}

func TestCreatePolicy_AcceptedDateForms(t *testing.T) {
	service, _, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	for _, form := range []string{"15/01/2024", "15-01-2024", "15012024"} {
		policy, err := service.CreatePolicy(staffCtx(), primary.CreatePolicyRequest{
			ClientID:     carlos.ID,
			ContractDate: form,
		})
		if err != nil {
			t.Fatalf("date %q: expected no error, got %v", form, err)
		}
		if policy.ContractDate != "2024-01-15" {
			t.Errorf("date %q: expected '2024-01-15', got '%s'", form, policy.ContractDate)
		}
	}
}

func TestCreatePolicy_InvalidDate(t *testing.T) {
	service, policyRepo, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})

	_, err := service.CreatePolicy(staffCtx(), primary.CreatePolicyRequest{
		ClientID:     carlos.ID,
		ContractDate: "2024-01-15", // ISO form is not an accepted input
	})
	var ve *primary.ValidationError
	if !errors.As(err, &ve) || ve.Field != "contract_date" {
		t.Fatalf("expected ValidationError on contract_date, got %v", err)
	}
	if len(policyRepo.policies) != 0 {
		t.Error("expected no policy row after failed validation")
	}
}

func TestCreatePolicy_MissingClient(t *testing.T) {
	service, policyRepo, _ := newTestPolicyService()

	_, err := service.CreatePolicy(staffCtx(), primary.CreatePolicyRequest{
		ClientID:     999,
		ContractDate: "15/01/2024",
	})
	var ve *primary.ValidationError
	if !errors.As(err, &ve) || ve.Field != "client_id" {
		t.Fatalf("expected ValidationError on client_id, got %v", err)
	}
	if len(policyRepo.policies) != 0 {
		t.Error("expected no policy row after failed prerequisite")
	}
}

func TestCreatePolicy_ClientOwnershipRule(t *testing.T) {
	service, _, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	ana := clientRepo.add(&secondary.ClientRecord{NationalID: "98765432109", Name: "Ana Souza", PasswordHash: "x"})

	ctx := clientCtx("12345678901")

	if _, err := service.CreatePolicy(ctx, primary.CreatePolicyRequest{
		ClientID:     carlos.ID,
		ContractDate: "15/01/2024",
	}); err != nil {
		t.Fatalf("expected own-policy creation to succeed, got %v", err)
	}

	_, err := service.CreatePolicy(ctx, primary.CreatePolicyRequest{
		ClientID:     ana.ID,
		ContractDate: "15/01/2024",
	})
	if !primary.IsAuthorizationDenied(err) {
		t.Fatalf("expected authorization denial, got %v", err)
	}
}

func TestGetPolicy_ScopeMasking(t *testing.T) {
	service, policyRepo, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	ana := clientRepo.add(&secondary.ClientRecord{NationalID: "98765432109", Name: "Ana Souza", PasswordHash: "x"})
	own := policyRepo.add(&secondary.PolicyRecord{ClientID: carlos.ID, ContractDate: "2024-01-15"})
	other := policyRepo.add(&secondary.PolicyRecord{ClientID: ana.ID, ContractDate: "2024-03-20"})

	ctx := clientCtx("12345678901")

	got, err := service.GetPolicy(ctx, own.ID)
	if err != nil {
		t.Fatalf("expected own policy to be visible, got %v", err)
	}
	if got.ID != own.ID {
		t.Errorf("expected policy %d, got %d", own.ID, got.ID)
	}

	if _, err := service.GetPolicy(ctx, other.ID); !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for out-of-scope policy, got %v", err)
	}
}

func TestListPolicies_Scoped(t *testing.T) {
	service, policyRepo, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	ana := clientRepo.add(&secondary.ClientRecord{NationalID: "98765432109", Name: "Ana Souza", PasswordHash: "x"})
	policyRepo.add(&secondary.PolicyRecord{ClientID: carlos.ID, ContractDate: "2024-01-15"})
	policyRepo.add(&secondary.PolicyRecord{ClientID: ana.ID, ContractDate: "2024-03-20"})

	all, err := service.ListPolicies(staffCtx())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected staff to see 2 policies, got %d", len(all))
	}

	own, err := service.ListPolicies(clientCtx("12345678901"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(own) != 1 {
		t.Errorf("expected client to see 1 policy, got %d", len(own))
	}
}

func TestUpdatePolicy_PatchSemantics(t *testing.T) {
	service, policyRepo, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	policy := policyRepo.add(&secondary.PolicyRecord{ClientID: carlos.ID, ContractDate: "2024-01-15", Contact: "old contact"})

	updated, err := service.UpdatePolicy(staffCtx(), primary.UpdatePolicyRequest{
		PolicyID: policy.ID,
		Contact:  "new contact",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Contact != "new contact" {
		t.Errorf("expected updated contact, got '%s'", updated.Contact)
	}
	if updated.ContractDate != "2024-01-15" {
		t.Errorf("expected contract date untouched, got '%s'", updated.ContractDate)
	}
}

func TestDeletePolicy_ClientDenied(t *testing.T) {
	service, policyRepo, clientRepo := newTestPolicyService()
	carlos := clientRepo.add(&secondary.ClientRecord{NationalID: "12345678901", Name: "Carlos Silva", PasswordHash: "x"})
	policy := policyRepo.add(&secondary.PolicyRecord{ClientID: carlos.ID, ContractDate: "2024-01-15"})

	if err := service.DeletePolicy(clientCtx("12345678901"), policy.ID); !primary.IsAuthorizationDenied(err) {
		t.Fatalf("expected authorization denial, got %v", err)
	}

	if err := service.DeletePolicy(staffCtx(), policy.ID); err != nil {
		t.Fatalf("expected staff delete to succeed, got %v", err)
	}
}
