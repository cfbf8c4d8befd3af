package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Compile-time checks that the in-memory stores satisfy the contracts.
var (
	_ UserStore         = (*memUsers)(nil)
	_ HospitalStore     = (*memHospitals)(nil)
	_ DoctorStore       = (*memDoctors)(nil)
	_ AppointmentStore  = (*memAppointments)(nil)
	_ NotificationStore = (*memNotifications)(nil)
	_ ReviewStore       = (*memReviews)(nil)
	_ CapacityStore     = (*memCapacity)(nil)
	_ BloodBankStore    = (*memBloodBanks)(nil)
	_ Notifier          = (*mockNotifier)(nil)
)

func newID() string { return uuid.NewString() }

// --- memUsers ---

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*models.User{}} }

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = newID()
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

// --- memHospitals ---

type memHospitals struct {
	mu            sync.Mutex
	hospitals     map[string]*models.Hospital
	FindByIDErr   error
	ratingUpdates int
}

func newMemHospitals() *memHospitals { return &memHospitals{hospitals: map[string]*models.Hospital{}} }

func (m *memHospitals) add(ownerID, name string) *models.Hospital {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := &models.Hospital{UserID: ownerID, Name: name}
	h.ID = newID()
	m.hospitals[h.ID] = h
	copied := *h
	return &copied
}

func (m *memHospitals) get(id string) *models.Hospital {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.hospitals[id]; ok {
		copied := *h
		return &copied
	}
	return nil
}

func (m *memHospitals) FindByID(_ context.Context, id string) (*models.Hospital, error) {
	if m.FindByIDErr != nil {
		return nil, m.FindByIDErr
	}
	if h := m.get(id); h != nil {
		return h, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memHospitals) FindByOwner(_ context.Context, userID string) (*models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.hospitals {
		if h.UserID == userID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memHospitals) UpsertByOwner(ctx context.Context, profile *models.Hospital) (*models.Hospital, error) {
	existing, err := m.FindByOwner(ctx, profile.UserID)
	m.mu.Lock()
	if err == nil {
		profile.ID = existing.ID
		profile.Rating = existing.Rating
		profile.TotalReviews = existing.TotalReviews
	} else {
		profile.ID = newID()
	}
	copied := *profile
	m.hospitals[profile.ID] = &copied
	m.mu.Unlock()
	return m.FindByOwner(ctx, profile.UserID)
}

func (m *memHospitals) UpdateRating(_ context.Context, hospitalID string, rating float64, totalReviews int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratingUpdates++
	if h, ok := m.hospitals[hospitalID]; ok {
		h.Rating = rating
		h.TotalReviews = totalReviews
	}
	return nil
}

func (m *memHospitals) Search(_ context.Context, search repository.HospitalSearch) ([]models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Hospital
	for _, h := range m.hospitals {
		if search.Query != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(search.Query)) {
			continue
		}
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if search.Descending {
			return out[i].Name > out[j].Name
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memHospitals) ListWithOwners(_ context.Context) ([]models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Hospital
	for _, h := range m.hospitals {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --- memDoctors ---

type memDoctors struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

func (m *memDoctors) Create(_ context.Context, doctor *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doctor.ID = newID()
	m.doctors = append(m.doctors, *doctor)
	return nil
}

func (m *memDoctors) ListByHospital(_ context.Context, hospitalID string) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Doctor
	for _, d := range m.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDoctors) ListAll(_ context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Doctor(nil), m.doctors...), nil
}

// --- memAppointments ---

type memAppointments struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	users        *memUsers
	lastQuery    repository.AppointmentQuery
}

func newMemAppointments(users *memUsers) *memAppointments {
	return &memAppointments{appointments: map[string]*models.Appointment{}, users: users}
}

func (m *memAppointments) Create(_ context.Context, appointment *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appointment.ID = newID()
	copied := *appointment
	m.appointments[appointment.ID] = &copied
	return nil
}

func (m *memAppointments) get(id string) *models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.appointments[id]; ok {
		copied := *a
		return &copied
	}
	return nil
}

func (m *memAppointments) withPatient(a models.Appointment) models.Appointment {
	if m.users != nil {
		if u, err := m.users.FindByID(context.Background(), a.PatientID); err == nil {
			a.Patient = u
		}
	}
	return a
}

func (m *memAppointments) UpdateStatusForHospital(_ context.Context, id, hospitalID string, status models.AppointmentStatus, notes *string) (*models.Appointment, error) {
	m.mu.Lock()
	a, ok := m.appointments[id]
	if !ok || a.HospitalID != hospitalID {
		m.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	if status != "" {
		a.Status = status
	}
	if notes != nil {
		a.Notes = *notes
	}
	copied := *a
	m.mu.Unlock()

	out := m.withPatient(copied)
	return &out, nil
}

func (m *memAppointments) list(match func(*models.Appointment) bool, q repository.AppointmentQuery) []models.Appointment {
	m.mu.Lock()
	m.lastQuery = q
	var out []models.Appointment
	for _, a := range m.appointments {
		if !match(a) {
			continue
		}
		if q.Status != "" && string(a.Status) != q.Status {
			continue
		}
		if q.From != nil && a.AppointmentDate.Before(*q.From) {
			continue
		}
		if q.To != nil && !a.AppointmentDate.Before(*q.To) {
			continue
		}
		out = append(out, *a)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].AppointmentDate.After(out[j].AppointmentDate) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	for i := range out {
		out[i] = m.withPatient(out[i])
	}
	return out
}

func (m *memAppointments) ListForPatient(_ context.Context, patientID string, q repository.AppointmentQuery) ([]models.Appointment, error) {
	return m.list(func(a *models.Appointment) bool { return a.PatientID == patientID }, q), nil
}

func (m *memAppointments) ListForHospital(_ context.Context, hospitalID string, q repository.AppointmentQuery) ([]models.Appointment, error) {
	return m.list(func(a *models.Appointment) bool { return a.HospitalID == hospitalID }, q), nil
}

func (m *memAppointments) FindForPatient(_ context.Context, id, patientID string) (*models.Appointment, error) {
	a := m.get(id)
	if a == nil || a.PatientID != patientID {
		return nil, repository.ErrNotFound
	}
	out := m.withPatient(*a)
	return &out, nil
}

// --- memNotifications ---

type memNotifications struct {
	mu            sync.Mutex
	notifications []models.Notification
	CreateErr     error
}

func (m *memNotifications) Create(_ context.Context, notification *models.Notification) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	notification.ID = newID()
	notification.CreatedAt = time.Now().Add(time.Duration(len(m.notifications)) * time.Millisecond)
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *memNotifications) forUser(userID string) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (m *memNotifications) ListForUser(_ context.Context, userID string, limit int) ([]models.Notification, error) {
	out := m.forUser(userID)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memNotifications) MarkRead(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == id && m.notifications[i].UserID == userID {
			m.notifications[i].Read = true
		}
	}
	return nil
}

// --- memReviews ---

type memReviews struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (m *memReviews) Create(_ context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = newID()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memReviews) RatingsForHospital(_ context.Context, hospitalID string) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []int
	for _, r := range m.reviews {
		if r.HospitalID == hospitalID {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}

func (m *memReviews) ListByHospital(_ context.Context, hospitalID string) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Review
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].HospitalID == hospitalID {
			out = append(out, m.reviews[i])
		}
	}
	return out, nil
}

// --- memCapacity ---

type memCapacity struct {
	mu    sync.Mutex
	beds  map[string]models.BedAvailability
	blood map[string]models.BloodInventory
}

func newMemCapacity() *memCapacity {
	return &memCapacity{beds: map[string]models.BedAvailability{}, blood: map[string]models.BloodInventory{}}
}

func (m *memCapacity) UpsertBeds(_ context.Context, beds *models.BedAvailability) (*models.BedAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.beds[beds.HospitalID]; ok {
		beds.ID = existing.ID
	} else {
		beds.ID = newID()
	}
	m.beds[beds.HospitalID] = *beds
	stored := m.beds[beds.HospitalID]
	return &stored, nil
}

func (m *memCapacity) UpsertBlood(_ context.Context, blood *models.BloodInventory) (*models.BloodInventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := blood.HospitalID + "|" + blood.BloodType
	if existing, ok := m.blood[key]; ok {
		blood.ID = existing.ID
	} else {
		blood.ID = newID()
	}
	m.blood[key] = *blood
	stored := m.blood[key]
	return &stored, nil
}

func (m *memCapacity) BedsForHospital(_ context.Context, hospitalID string) (*models.BedAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if beds, ok := m.beds[hospitalID]; ok {
		return &beds, nil
	}
	return nil, nil
}

func (m *memCapacity) BloodForHospital(_ context.Context, hospitalID string) ([]models.BloodInventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.BloodInventory
	for _, b := range m.blood {
		if b.HospitalID == hospitalID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BloodType < out[j].BloodType })
	return out, nil
}

// --- memBloodBanks ---

type memBloodBanks struct {
	mu          sync.Mutex
	banks       []models.BloodBankAvailability
	searchCalls int
}

func (m *memBloodBanks) Search(_ context.Context, location string, limit int) ([]models.BloodBankAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	var out []models.BloodBankAvailability
	for _, b := range m.banks {
		if location == "" || strings.Contains(strings.ToLower(b.District), strings.ToLower(location)) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].District != out[j].District {
			return out[i].District < out[j].District
		}
		return out[i].BloodBankName < out[j].BloodBankName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memBloodBanks) Upsert(_ context.Context, bank *models.BloodBankAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.banks {
		if m.banks[i].District == bank.District && m.banks[i].BloodBankName == bank.BloodBankName {
			bank.ID = m.banks[i].ID
			m.banks[i] = *bank
			return nil
		}
	}
	bank.ID = newID()
	m.banks = append(m.banks, *bank)
	return nil
}

// --- mockNotifier ---

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, n NotificationInput) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
