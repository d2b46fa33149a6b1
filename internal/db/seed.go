package db

import (
	"database/sql"
	"fmt"

	"github.com/example/segura/internal/security/password"
)

// SeedFixtures populates the database with development fixtures: one client
// with the full policy -> property -> incident chain, a second client without
// a policy, and a staff account. All fixture logins use password "segura-dev".
func SeedFixtures(database *sql.DB) error {
	hash, err := password.Hash(password.Default, "segura-dev")
	if err != nil {
		return fmt.Errorf("seed password: %w", err)
	}

	clients := []struct{ nationalID, name, address, phone, email string }{
		{"12345678901", "Carlos Silva", "Rua A, 123", "99999-1234", "carlos@example.com"},
		{"98765432109", "Ana Souza", "Av. Central, 90", "98888-4321", "ana@example.com"},
	}
	clientIDs := make(map[string]int64)
	for _, c := range clients {
		res, err := database.Exec(
			"INSERT INTO clients (national_id, name, address, phone, email, password_hash) VALUES (?, ?, ?, ?, ?, ?)",
			c.nationalID, c.name, c.address, c.phone, c.email, hash,
		)
		if err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
		clientIDs[c.nationalID] = id
	}

	policyID, err := insertReturningID(database,
		"INSERT INTO policies (client_id, contract_date, contact, signature) VALUES (?, ?, ?, ?)",
		clientIDs["12345678901"], "2024-01-15", "Contato Apolice 1", "Carlos Silva",
	)
	if err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}

	propertyID, err := insertReturningID(database,
		"INSERT INTO properties (policy_id, address, floor, kind, unit) VALUES (?, ?, ?, ?, ?)",
		policyID, "Rua B, 456", 3, "standard", 101,
	)
	if err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}

	if _, err := database.Exec(
		"INSERT INTO incidents (property_id, description, occurred_on, amount, kind) VALUES (?, ?, ?, ?, ?)",
		propertyID, "Fire in the unit", "2024-05-10", 50000.00, "fire",
	); err != nil {
		return fmt.Errorf("seed incidents: %w", err)
	}

	if _, err := database.Exec(
		"INSERT INTO staff (national_id, name, job_title, department, hired_on, salary, password_hash) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"11122233344", "Beatriz Lima", "Claims Adjuster", "Claims", "2022-03-01", 7200.00, hash,
	); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}

	return nil
}

func insertReturningID(database *sql.DB, query string, args ...any) (int64, error) {
	res, err := database.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
