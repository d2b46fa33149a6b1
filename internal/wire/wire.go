// Package wire provides dependency injection for the segura application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/segura/internal/adapters/sqlite"
	"github.com/example/segura/internal/app"
	"github.com/example/segura/internal/db"
	"github.com/example/segura/internal/ports/primary"
)

var (
	authService     primary.AuthService
	clientService   primary.ClientService
	policyService   primary.PolicyService
	propertyService primary.PropertyService
	incidentService primary.IncidentService
	staffService    primary.StaffService
	once            sync.Once
)

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// ClientService returns the singleton ClientService instance.
func ClientService() primary.ClientService {
	once.Do(initServices)
	return clientService
}

// PolicyService returns the singleton PolicyService instance.
func PolicyService() primary.PolicyService {
	once.Do(initServices)
	return policyService
}

// PropertyService returns the singleton PropertyService instance.
func PropertyService() primary.PropertyService {
	once.Do(initServices)
	return propertyService
}

// IncidentService returns the singleton IncidentService instance.
func IncidentService() primary.IncidentService {
	once.Do(initServices)
	return incidentService
}

// StaffService returns the singleton StaffService instance.
func StaffService() primary.StaffService {
	once.Do(initServices)
	return staffService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	clientRepo := sqlite.NewClientRepository(database)
	policyRepo := sqlite.NewPolicyRepository(database)
	propertyRepo := sqlite.NewPropertyRepository(database)
	incidentRepo := sqlite.NewIncidentRepository(database)
	staffRepo := sqlite.NewStaffRepository(database)

	// Services (primary port implementations)
	authService = app.NewAuthService(clientRepo, staffRepo)
	clientService = app.NewClientService(clientRepo, authService)
	policyService = app.NewPolicyService(policyRepo, clientRepo)
	propertyService = app.NewPropertyService(propertyRepo, policyRepo)
	incidentService = app.NewIncidentService(incidentRepo, propertyRepo)
	staffService = app.NewStaffService(staffRepo)
}
