package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/segura/internal/adapters/sqlite"
	"github.com/example/segura/internal/ports/secondary"
)

func TestStaffRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewStaffRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.StaffRecord{
		NationalID:   "11122233344",
		Name:         "Beatriz Lima",
		JobTitle:     "Claims Adjuster",
		Department:   "Claims",
		HiredOn:      "2022-03-01",
		Salary:       7200,
		PasswordHash: "phc-hash",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "Beatriz Lima" {
		t.Errorf("expected name 'Beatriz Lima', got '%s'", got.Name)
	}
	if got.HiredOn != "2022-03-01" {
		t.Errorf("expected hired_on '2022-03-01', got '%s'", got.HiredOn)
	}
	if got.Salary != 7200 {
		t.Errorf("expected salary 7200, got %f", got.Salary)
	}
}

func TestStaffRepository_Create_OptionalFieldsOmitted(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewStaffRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.StaffRecord{
		NationalID:   "11122233344",
		Name:         "Beatriz Lima",
		PasswordHash: "phc-hash",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.HiredOn != "" {
		t.Errorf("expected empty hired_on, got '%s'", got.HiredOn)
	}
	if got.JobTitle != "" {
		t.Errorf("expected empty job title, got '%s'", got.JobTitle)
	}
}

func TestStaffRepository_Create_DuplicateNationalID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewStaffRepository(db)
	ctx := context.Background()

	seedStaff(t, db, "11122233344", "")

	_, err := repo.Create(ctx, &secondary.StaffRecord{
		NationalID:   "11122233344",
		Name:         "Impostor",
		PasswordHash: "x",
	})

	var ie *secondary.IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}
	if ie.Field != "national_id" {
		t.Errorf("expected field 'national_id', got '%s'", ie.Field)
	}
}

func TestStaffRepository_SameNationalIDAsClient(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewStaffRepository(db)
	ctx := context.Background()

	// Uniqueness holds per identity kind; a client's national ID does not
	// block a staff row.
	seedClient(t, db, "12345678901", "")

	if _, err := repo.Create(ctx, &secondary.StaffRecord{
		NationalID:   "12345678901",
		Name:         "Doubles As Staff",
		PasswordHash: "x",
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStaffRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewStaffRepository(db)
	ctx := context.Background()

	id := seedStaff(t, db, "", "")

	record, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	record.JobTitle = "Senior Adjuster"
	record.Salary = 9100

	if err := repo.Update(ctx, record); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.JobTitle != "Senior Adjuster" {
		t.Errorf("expected updated job title, got '%s'", got.JobTitle)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
