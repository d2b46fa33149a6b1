// Package access contains the pure authorization rules for record access.
// Guards are pure functions that evaluate role and ownership without side
// effects; they run before any repository call is issued.
package access

import "fmt"

// Role is the closed set of caller roles.
type Role string

const (
	// RoleStaff has unrestricted access to every entity.
	RoleStaff Role = "STAFF"
	// RoleClient is scoped to the rows reachable from its own national ID.
	RoleClient Role = "CLIENT"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleClient
}

// Entity names a record type for authorization decisions.
type Entity string

const (
	EntityClient   Entity = "client"
	EntityPolicy   Entity = "policy"
	EntityProperty Entity = "property"
	EntityIncident Entity = "incident"
	EntityStaff    Entity = "staff"
)

// Operation names a write operation for authorization decisions.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// Scope describes which rows of an entity a caller may read.
// Exactly one of the three cases holds: everything, the rows reachable from
// one national ID, or nothing.
type Scope struct {
	All        bool
	NationalID string
}

// None reports whether the scope contains no rows at all.
func (s Scope) None() bool {
	return !s.All && s.NationalID == ""
}

// ScopeFor rewrites a read request into the scope the caller may see.
// Staff see everything. Clients see only rows reachable from their own
// national ID through the client -> policy -> property -> incident chain;
// staff records are entirely outside a client's scope.
func ScopeFor(role Role, callerNationalID string, entity Entity) Scope {
	if role == RoleStaff {
		return Scope{All: true}
	}
	if entity == EntityStaff {
		return Scope{}
	}
	return Scope{NationalID: callerNationalID}
}

// WriteContext provides context for write guards.
type WriteContext struct {
	Role   Role
	Entity Entity
	Op     Operation

	// OwnsTarget is true when the write targets a row reachable from the
	// caller's own national ID (their own client profile, or a policy
	// under their own client row). Ignored for staff.
	OwnsTarget bool
}

// CanWrite evaluates whether a write operation is permitted.
// Rules:
// - Staff may create, update and delete any entity.
// - Clients may create their own client profile and policies under their
//   own client row; every other write is denied, including updates and
//   deletes of their own records.
func CanWrite(ctx WriteContext) GuardResult {
	if ctx.Role == RoleStaff {
		return GuardResult{Allowed: true}
	}
	if ctx.Role != RoleClient {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown role %q", ctx.Role),
		}
	}

	if ctx.Op != OpCreate {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("clients may not %s %s records", ctx.Op, ctx.Entity),
		}
	}

	switch ctx.Entity {
	case EntityClient:
		if !ctx.OwnsTarget {
			return GuardResult{
				Allowed: false,
				Reason:  "clients may only create their own client profile",
			}
		}
	case EntityPolicy:
		if !ctx.OwnsTarget {
			return GuardResult{
				Allowed: false,
				Reason:  "clients may only create policies under their own client record",
			}
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("clients may not create %s records", ctx.Entity),
		}
	}

	return GuardResult{Allowed: true}
}
