package db

// SchemaSQL is the complete schema for fresh segura installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(), so repository code that references a column
// missing here fails immediately with "no such column" at test time.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Clients (policy holders; national_id doubles as the login identity)
CREATE TABLE IF NOT EXISTS clients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	national_id TEXT NOT NULL UNIQUE CHECK(length(national_id) = 11),
	name TEXT NOT NULL,
	address TEXT,
	phone TEXT,
	email TEXT,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Policies (insurance contracts, many per client)
CREATE TABLE IF NOT EXISTS policies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id INTEGER NOT NULL,
	contract_date DATE NOT NULL,
	contact TEXT,
	signature TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT
);

-- Properties (insured units; UNIQUE policy_id enforces one property per policy)
CREATE TABLE IF NOT EXISTS properties (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	policy_id INTEGER NOT NULL UNIQUE,
	address TEXT NOT NULL,
	floor INTEGER NOT NULL DEFAULT 0,
	kind TEXT NOT NULL CHECK(kind IN ('standard', 'studio', 'penthouse', 'duplex', 'triplex', 'flat')),
	unit INTEGER NOT NULL CHECK(unit >= 0),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (policy_id) REFERENCES policies(id) ON DELETE RESTRICT
);

-- Incidents (claims against an insured property)
CREATE TABLE IF NOT EXISTS incidents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	property_id INTEGER NOT NULL,
	description TEXT NOT NULL,
	occurred_on DATE NOT NULL,
	amount REAL NOT NULL CHECK(amount >= 0),
	kind TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE RESTRICT
);

-- Staff (back-office users; not part of the policy chain)
CREATE TABLE IF NOT EXISTS staff (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	national_id TEXT NOT NULL UNIQUE CHECK(length(national_id) = 11),
	name TEXT NOT NULL,
	job_title TEXT,
	department TEXT,
	hired_on DATE,
	salary REAL CHECK(salary >= 0),
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for the client-rooted scope queries
CREATE INDEX IF NOT EXISTS idx_policies_client ON policies(client_id);
CREATE INDEX IF NOT EXISTS idx_incidents_property ON incidents(property_id);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for tests and fresh installs.
func GetSchemaSQL() string {
	return SchemaSQL
}
