package app

import (
	"context"

	"github.com/example/segura/internal/ctxutil"
	"github.com/example/segura/internal/ports/secondary"
)

// ============================================================================
// Context Helpers
// ============================================================================

func staffCtx() context.Context {
	return ctxutil.WithActor(context.Background(), ctxutil.Actor{Role: "STAFF", NationalID: "11122233344"})
}

func clientCtx(nationalID string) context.Context {
	return ctxutil.WithActor(context.Background(), ctxutil.Actor{Role: "CLIENT", NationalID: nationalID})
}

// ============================================================================
// Mock Implementations
// ============================================================================

// mockClientRepository implements secondary.ClientRepository for testing.
type mockClientRepository struct {
	clients   map[int64]*secondary.ClientRecord
	nextID    int64
	createErr error
	deleteErr error
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{clients: make(map[int64]*secondary.ClientRecord), nextID: 1}
}

func (m *mockClientRepository) add(record *secondary.ClientRecord) *secondary.ClientRecord {
	if record.ID == 0 {
		record.ID = m.nextID
	}
	if record.ID >= m.nextID {
		m.nextID = record.ID + 1
	}
	m.clients[record.ID] = record
	return record
}

func (m *mockClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.add(client).ID, nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockClientRepository) GetByNationalID(ctx context.Context, nationalID string) (*secondary.ClientRecord, error) {
	for _, c := range m.clients {
		if c.NationalID == nationalID {
			return c, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	result := []*secondary.ClientRecord{}
	for _, c := range m.clients {
		result = append(result, c)
	}
	return result, nil
}

func (m *mockClientRepository) Update(ctx context.Context, client *secondary.ClientRecord) error {
	if _, ok := m.clients[client.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.clients[id]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

func (m *mockClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.clients[id]
	return ok, nil
}

func (m *mockClientRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	for _, c := range m.clients {
		if c.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// mockPolicyRepository implements secondary.PolicyRepository for testing.
// Client ownership for the national-ID joins is resolved through the linked
// client repository, mirroring the SQL join chain.
type mockPolicyRepository struct {
	policies  map[int64]*secondary.PolicyRecord
	clients   *mockClientRepository
	nextID    int64
	createErr error
	hasProp   map[int64]bool
}

func newMockPolicyRepository(clients *mockClientRepository) *mockPolicyRepository {
	return &mockPolicyRepository{
		policies: make(map[int64]*secondary.PolicyRecord),
		clients:  clients,
		nextID:   1,
		hasProp:  make(map[int64]bool),
	}
}

func (m *mockPolicyRepository) add(record *secondary.PolicyRecord) *secondary.PolicyRecord {
	if record.ID == 0 {
		record.ID = m.nextID
	}
	if record.ID >= m.nextID {
		m.nextID = record.ID + 1
	}
	m.policies[record.ID] = record
	return record
}

func (m *mockPolicyRepository) Create(ctx context.Context, policy *secondary.PolicyRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.add(policy).ID, nil
}

func (m *mockPolicyRepository) GetByID(ctx context.Context, id int64) (*secondary.PolicyRecord, error) {
	if p, ok := m.policies[id]; ok {
		return p, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPolicyRepository) List(ctx context.Context) ([]*secondary.PolicyRecord, error) {
	result := []*secondary.PolicyRecord{}
	for _, p := range m.policies {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPolicyRepository) ListByClient(ctx context.Context, clientID int64) ([]*secondary.PolicyRecord, error) {
	result := []*secondary.PolicyRecord{}
	for _, p := range m.policies {
		if p.ClientID == clientID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPolicyRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.PolicyRecord, error) {
	owner, err := m.clients.GetByNationalID(ctx, nationalID)
	if err != nil {
		return []*secondary.PolicyRecord{}, nil
	}
	return m.ListByClient(ctx, owner.ID)
}

func (m *mockPolicyRepository) Update(ctx context.Context, policy *secondary.PolicyRecord) error {
	if _, ok := m.policies[policy.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.policies[policy.ID] = policy
	return nil
}

func (m *mockPolicyRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.policies[id]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.policies, id)
	return nil
}

func (m *mockPolicyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.policies[id]
	return ok, nil
}

func (m *mockPolicyRepository) HasProperty(ctx context.Context, policyID int64) (bool, error) {
	return m.hasProp[policyID], nil
}

// mockPropertyRepository implements secondary.PropertyRepository for testing.
type mockPropertyRepository struct {
	properties map[int64]*secondary.PropertyRecord
	policies   *mockPolicyRepository
	nextID     int64
	createErr  error
}

func newMockPropertyRepository(policies *mockPolicyRepository) *mockPropertyRepository {
	return &mockPropertyRepository{
		properties: make(map[int64]*secondary.PropertyRecord),
		policies:   policies,
		nextID:     1,
	}
}

func (m *mockPropertyRepository) add(record *secondary.PropertyRecord) *secondary.PropertyRecord {
	if record.ID == 0 {
		record.ID = m.nextID
	}
	if record.ID >= m.nextID {
		m.nextID = record.ID + 1
	}
	m.properties[record.ID] = record
	if m.policies != nil {
		m.policies.hasProp[record.PolicyID] = true
	}
	return record
}

func (m *mockPropertyRepository) Create(ctx context.Context, property *secondary.PropertyRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.add(property).ID, nil
}

func (m *mockPropertyRepository) GetByID(ctx context.Context, id int64) (*secondary.PropertyRecord, error) {
	if p, ok := m.properties[id]; ok {
		return p, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPropertyRepository) List(ctx context.Context) ([]*secondary.PropertyRecord, error) {
	result := []*secondary.PropertyRecord{}
	for _, p := range m.properties {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPropertyRepository) GetByPolicy(ctx context.Context, policyID int64) (*secondary.PropertyRecord, error) {
	for _, p := range m.properties {
		if p.PolicyID == policyID {
			return p, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPropertyRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.PropertyRecord, error) {
	owned, err := m.policies.ListByClientNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	result := []*secondary.PropertyRecord{}
	for _, policy := range owned {
		for _, p := range m.properties {
			if p.PolicyID == policy.ID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (m *mockPropertyRepository) Update(ctx context.Context, property *secondary.PropertyRecord) error {
	if _, ok := m.properties[property.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.properties[id]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.properties, id)
	return nil
}

func (m *mockPropertyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.properties[id]
	return ok, nil
}

// mockIncidentRepository implements secondary.IncidentRepository for testing.
type mockIncidentRepository struct {
	incidents  map[int64]*secondary.IncidentRecord
	properties *mockPropertyRepository
	nextID     int64
	createErr  error
}

func newMockIncidentRepository(properties *mockPropertyRepository) *mockIncidentRepository {
	return &mockIncidentRepository{
		incidents:  make(map[int64]*secondary.IncidentRecord),
		properties: properties,
		nextID:     1,
	}
}

func (m *mockIncidentRepository) add(record *secondary.IncidentRecord) *secondary.IncidentRecord {
	if record.ID == 0 {
		record.ID = m.nextID
	}
	if record.ID >= m.nextID {
		m.nextID = record.ID + 1
	}
	m.incidents[record.ID] = record
	return record
}

func (m *mockIncidentRepository) Create(ctx context.Context, incident *secondary.IncidentRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.add(incident).ID, nil
}

func (m *mockIncidentRepository) GetByID(ctx context.Context, id int64) (*secondary.IncidentRecord, error) {
	if i, ok := m.incidents[id]; ok {
		return i, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockIncidentRepository) List(ctx context.Context) ([]*secondary.IncidentRecord, error) {
	result := []*secondary.IncidentRecord{}
	for _, i := range m.incidents {
		result = append(result, i)
	}
	return result, nil
}

func (m *mockIncidentRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*secondary.IncidentRecord, error) {
	result := []*secondary.IncidentRecord{}
	for _, i := range m.incidents {
		if i.PropertyID == propertyID {
			result = append(result, i)
		}
	}
	return result, nil
}

func (m *mockIncidentRepository) ListByClientNationalID(ctx context.Context, nationalID string) ([]*secondary.IncidentRecord, error) {
	owned, err := m.properties.ListByClientNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	result := []*secondary.IncidentRecord{}
	for _, property := range owned {
		for _, i := range m.incidents {
			if i.PropertyID == property.ID {
				result = append(result, i)
			}
		}
	}
	return result, nil
}

func (m *mockIncidentRepository) Update(ctx context.Context, incident *secondary.IncidentRecord) error {
	if _, ok := m.incidents[incident.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.incidents[incident.ID] = incident
	return nil
}

func (m *mockIncidentRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.incidents[id]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.incidents, id)
	return nil
}

// mockStaffRepository implements secondary.StaffRepository for testing.
type mockStaffRepository struct {
	staff     map[int64]*secondary.StaffRecord
	nextID    int64
	createErr error
}

func newMockStaffRepository() *mockStaffRepository {
	return &mockStaffRepository{staff: make(map[int64]*secondary.StaffRecord), nextID: 1}
}

func (m *mockStaffRepository) add(record *secondary.StaffRecord) *secondary.StaffRecord {
	if record.ID == 0 {
		record.ID = m.nextID
	}
	if record.ID >= m.nextID {
		m.nextID = record.ID + 1
	}
	m.staff[record.ID] = record
	return record
}

func (m *mockStaffRepository) Create(ctx context.Context, staff *secondary.StaffRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	return m.add(staff).ID, nil
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id int64) (*secondary.StaffRecord, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockStaffRepository) GetByNationalID(ctx context.Context, nationalID string) (*secondary.StaffRecord, error) {
	for _, s := range m.staff {
		if s.NationalID == nationalID {
			return s, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockStaffRepository) List(ctx context.Context) ([]*secondary.StaffRecord, error) {
	result := []*secondary.StaffRecord{}
	for _, s := range m.staff {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockStaffRepository) Update(ctx context.Context, staff *secondary.StaffRecord) error {
	if _, ok := m.staff[staff.ID]; !ok {
		return secondary.ErrNotFound
	}
	m.staff[staff.ID] = staff
	return nil
}

func (m *mockStaffRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.staff[id]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.staff, id)
	return nil
}

func (m *mockStaffRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	for _, s := range m.staff {
		if s.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// Interface conformance for the mocks.
var (
	_ secondary.ClientRepository   = (*mockClientRepository)(nil)
	_ secondary.PolicyRepository   = (*mockPolicyRepository)(nil)
	_ secondary.PropertyRepository = (*mockPropertyRepository)(nil)
	_ secondary.IncidentRepository = (*mockIncidentRepository)(nil)
	_ secondary.StaffRepository    = (*mockStaffRepository)(nil)
)
