// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/segura/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository
// tests. A single pooled connection keeps the memory database alive and the
// foreign_keys pragma in effect for every statement.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedClient inserts a test client and returns its id.
func seedClient(t *testing.T, db *sql.DB, nationalID, name string) int64 {
	t.Helper()
	if nationalID == "" {
		nationalID = "12345678901"
	}
	if name == "" {
		name = "Test Client"
	}
	res, err := db.Exec(
		"INSERT INTO clients (national_id, name, password_hash) VALUES (?, ?, 'x')",
		nationalID, name,
	)
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedPolicy inserts a test policy and returns its id.
func seedPolicy(t *testing.T, db *sql.DB, clientID int64, contractDate string) int64 {
	t.Helper()
	if contractDate == "" {
		contractDate = "2024-01-15"
	}
	res, err := db.Exec(
		"INSERT INTO policies (client_id, contract_date) VALUES (?, ?)",
		clientID, contractDate,
	)
	if err != nil {
		t.Fatalf("failed to seed policy: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedProperty inserts a test property and returns its id.
func seedProperty(t *testing.T, db *sql.DB, policyID int64, address string) int64 {
	t.Helper()
	if address == "" {
		address = "Test Street 100"
	}
	res, err := db.Exec(
		"INSERT INTO properties (policy_id, address, floor, kind, unit) VALUES (?, ?, 1, 'standard', 101)",
		policyID, address,
	)
	if err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedIncident inserts a test incident and returns its id.
func seedIncident(t *testing.T, db *sql.DB, propertyID int64, description string) int64 {
	t.Helper()
	if description == "" {
		description = "Test incident"
	}
	res, err := db.Exec(
		"INSERT INTO incidents (property_id, description, occurred_on, amount, kind) VALUES (?, ?, '2024-05-10', 1000.0, 'fire')",
		propertyID, description,
	)
	if err != nil {
		t.Fatalf("failed to seed incident: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedStaff inserts a test staff member and returns its id.
func seedStaff(t *testing.T, db *sql.DB, nationalID, name string) int64 {
	t.Helper()
	if nationalID == "" {
		nationalID = "11122233344"
	}
	if name == "" {
		name = "Test Staff"
	}
	res, err := db.Exec(
		"INSERT INTO staff (national_id, name, password_hash) VALUES (?, ?, 'x')",
		nationalID, name,
	)
	if err != nil {
		t.Fatalf("failed to seed staff: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}
