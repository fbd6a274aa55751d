package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// MemStore is an in-memory repositories.Store. Transactions are serialised and roll back
// every change when the callback fails.
type MemStore struct {
	state *memState
	inTx  bool
}

type memState struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data *memData
}

type memData struct {
	seq          int64
	users        map[int64]models.User
	students     map[int64]models.StudentProfile
	mentors      map[int64]models.MentorProfile
	technologies map[int64]models.Technology
	mentorTechs  map[int64]map[int64]struct{}
	resetTokens  map[string]models.PasswordResetToken
	dashboards   map[int64]models.AdminDashboard
	batches      map[int64]models.Batch
	hires        map[int64]models.StudentsHired
}

// NewMemStore creates an empty store
func NewMemStore() *MemStore {
	return &MemStore{state: &memState{data: newMemData()}}
}

func newMemData() *memData {
	return &memData{
		users:        map[int64]models.User{},
		students:     map[int64]models.StudentProfile{},
		mentors:      map[int64]models.MentorProfile{},
		technologies: map[int64]models.Technology{},
		mentorTechs:  map[int64]map[int64]struct{}{},
		resetTokens:  map[string]models.PasswordResetToken{},
		dashboards:   map[int64]models.AdminDashboard{},
		batches:      map[int64]models.Batch{},
		hires:        map[int64]models.StudentsHired{},
	}
}

func (d *memData) clone() *memData {
	c := newMemData()
	c.seq = d.seq
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.students {
		c.students[k] = v
	}
	for k, v := range d.mentors {
		c.mentors[k] = v
	}
	for k, v := range d.technologies {
		c.technologies[k] = v
	}
	for k, v := range d.mentorTechs {
		set := make(map[int64]struct{}, len(v))
		for id := range v {
			set[id] = struct{}{}
		}
		c.mentorTechs[k] = set
	}
	for k, v := range d.resetTokens {
		c.resetTokens[k] = v
	}
	for k, v := range d.dashboards {
		c.dashboards[k] = v
	}
	for k, v := range d.batches {
		c.batches[k] = v
	}
	for k, v := range d.hires {
		c.hires[k] = v
	}
	return c
}

func (d *memData) nextID() int64 {
	d.seq++
	return d.seq
}

func (s *MemStore) lock() (*memData, func()) {
	s.state.mu.Lock()
	return s.state.data, s.state.mu.Unlock
}

func (s *MemStore) Users() repositories.UserStore             { return memUsers{s} }
func (s *MemStore) Profiles() repositories.ProfileStore       { return memProfiles{s} }
func (s *MemStore) ResetTokens() repositories.ResetTokenStore { return memResetTokens{s} }
func (s *MemStore) Dashboards() repositories.DashboardStore   { return memDashboards{s} }
func (s *MemStore) Batches() repositories.BatchStore          { return memBatches{s} }
func (s *MemStore) Hires() repositories.HireStore             { return memHires{s} }

// WithTx snapshots the data and restores it if fn fails
func (s *MemStore) WithTx(ctx context.Context, fn repositories.TxFn) error {
	if s.inTx {
		return fn(ctx, s)
	}

	s.state.txMu.Lock()
	defer s.state.txMu.Unlock()

	s.state.mu.Lock()
	snapshot := s.state.data.clone()
	s.state.mu.Unlock()

	if err := fn(ctx, &MemStore{state: s.state, inTx: true}); err != nil {
		s.state.mu.Lock()
		s.state.data = snapshot
		s.state.mu.Unlock()
		return err
	}
	return nil
}

// SeedUser inserts a user directly and returns it
func (s *MemStore) SeedUser(email string, role models.RoleType, hash string, active bool) *models.User {
	u := &models.User{Email: email, Role: role, HashedPassword: hash, IsActive: active}
	if err := s.Users().Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

// SeedBatch inserts a batch directly and returns it
func (s *MemStore) SeedBatch(name, status string) *models.Batch {
	b := &models.Batch{BatchName: name, Status: status}
	if err := s.Batches().Create(context.Background(), b); err != nil {
		panic(err)
	}
	return b
}

// ResetToken returns the stored state of a reset token
func (s *MemStore) ResetToken(token string) (models.PasswordResetToken, bool) {
	d, unlock := s.lock()
	defer unlock()
	t, ok := d.resetTokens[token]
	return t, ok
}

// ResetTokenCount returns how many reset tokens were persisted
func (s *MemStore) ResetTokenCount() int {
	d, unlock := s.lock()
	defer unlock()
	return len(d.resetTokens)
}

// HireCount returns how many hire records exist
func (s *MemStore) HireCount() int {
	d, unlock := s.lock()
	defer unlock()
	return len(d.hires)
}

type memUsers struct{ s *MemStore }

func (m memUsers) Create(_ context.Context, user *models.User) error {
	d, unlock := m.s.lock()
	defer unlock()
	for _, u := range d.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = d.nextID()
	user.CreatedAt = time.Now()
	d.users[user.ID] = *user
	return nil
}

func (m memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	d, unlock := m.s.lock()
	defer unlock()
	u, ok := d.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	d, unlock := m.s.lock()
	defer unlock()
	for _, u := range d.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m memUsers) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	d, unlock := m.s.lock()
	defer unlock()
	u, ok := d.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.HashedPassword = hash
	d.users[id] = u
	return nil
}

func (m memUsers) SetActive(_ context.Context, id int64, active bool) error {
	d, unlock := m.s.lock()
	defer unlock()
	u, ok := d.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = active
	d.users[id] = u
	return nil
}

func (m memUsers) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	d, unlock := m.s.lock()
	defer unlock()
	var n int64
	for _, u := range d.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m memUsers) Delete(_ context.Context, id int64) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, h := range d.hires {
		if h.UserID == id {
			return apperrors.NewConflictError("user has hire records and cannot be deleted")
		}
	}
	for mid, p := range d.mentors {
		if p.UserID != id {
			continue
		}
		delete(d.mentorTechs, mid)
		for bid, b := range d.batches {
			if b.MentorID != nil && *b.MentorID == mid {
				b.MentorID = nil
				d.batches[bid] = b
			}
		}
		delete(d.mentors, mid)
	}
	for sid, p := range d.students {
		if p.UserID == id {
			delete(d.students, sid)
		}
	}
	for tok, t := range d.resetTokens {
		if t.UserID == id {
			delete(d.resetTokens, tok)
		}
	}
	delete(d.users, id)
	return nil
}

type memProfiles struct{ s *MemStore }

func (m memProfiles) CreateStudentProfile(_ context.Context, p *models.StudentProfile) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.users[p.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, existing := range d.students {
		if existing.UserID == p.UserID {
			return apperrors.NewConflictError("student profile already exists")
		}
	}
	p.ID = d.nextID()
	stored := *p
	stored.User = nil
	d.students[p.ID] = stored
	return nil
}

func (m memProfiles) CreateMentorProfile(_ context.Context, p *models.MentorProfile) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.users[p.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, existing := range d.mentors {
		if existing.UserID == p.UserID {
			return apperrors.NewConflictError("mentor profile already exists")
		}
	}
	p.ID = d.nextID()
	stored := *p
	stored.User = nil
	stored.Technologies = nil
	d.mentors[p.ID] = stored
	return nil
}

func (m memProfiles) GetOrCreateTechnologies(_ context.Context, names []string) ([]models.Technology, error) {
	d, unlock := m.s.lock()
	defer unlock()
	seen := map[string]struct{}{}
	var out []models.Technology
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		var found *models.Technology
		for _, t := range d.technologies {
			if strings.ToLower(t.Name) == key {
				t := t
				found = &t
				break
			}
		}
		if found == nil {
			t := models.Technology{ID: d.nextID(), Name: name}
			d.technologies[t.ID] = t
			found = &t
		}
		out = append(out, *found)
	}
	return out, nil
}

func (m memProfiles) LinkTechnologies(_ context.Context, mentorProfileID int64, technologyIDs []int64) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.mentors[mentorProfileID]; !ok {
		return apperrors.NewBadRequestError("mentor does not exist")
	}
	set, ok := d.mentorTechs[mentorProfileID]
	if !ok {
		set = map[int64]struct{}{}
		d.mentorTechs[mentorProfileID] = set
	}
	for _, id := range technologyIDs {
		if _, ok := d.technologies[id]; !ok {
			return apperrors.NewBadRequestError("technology does not exist")
		}
		set[id] = struct{}{}
	}
	return nil
}

func (m memProfiles) GetStudentByID(_ context.Context, id int64) (*models.StudentProfile, error) {
	d, unlock := m.s.lock()
	defer unlock()
	p, ok := d.students[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("student not found")
	}
	return d.student(p), nil
}

func (m memProfiles) GetMentorByID(_ context.Context, id int64) (*models.MentorProfile, error) {
	d, unlock := m.s.lock()
	defer unlock()
	p, ok := d.mentors[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("mentor not found")
	}
	return d.mentor(p), nil
}

func (m memProfiles) ListStudents(_ context.Context, f models.StudentFilter) ([]*models.StudentProfile, error) {
	d, unlock := m.s.lock()
	defer unlock()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []*models.StudentProfile
	for _, id := range sortedKeys(d.students) {
		p := d.student(d.students[id])
		if search != "" && !containsAny(search, p.FirstName, p.LastName, p.User.Email, deref(p.User.PhoneNumber)) {
			continue
		}
		out = append(out, p)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (m memProfiles) ListMentors(_ context.Context, f models.MentorFilter) ([]*models.MentorProfile, error) {
	d, unlock := m.s.lock()
	defer unlock()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	tech := strings.ToLower(strings.TrimSpace(f.Technology))
	var out []*models.MentorProfile
	for _, id := range sortedKeys(d.mentors) {
		p := d.mentor(d.mentors[id])
		if tech != "" && !hasTechnology(p.Technologies, tech) {
			continue
		}
		if f.MinYears != nil && (p.TotalExperienceYears == nil || *p.TotalExperienceYears < *f.MinYears) {
			continue
		}
		if search != "" && !containsAny(search, p.Name, p.User.Email, deref(p.PhoneNumber)) {
			continue
		}
		out = append(out, p)
	}
	return page(out, f.Skip, f.Limit), nil
}

func (m memProfiles) LoadUserWithProfiles(_ context.Context, userID int64) (*models.UserWithProfiles, error) {
	d, unlock := m.s.lock()
	defer unlock()
	u, ok := d.users[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	out := &models.UserWithProfiles{User: &u}
	for _, p := range d.students {
		if p.UserID == userID {
			out.StudentProfile = d.student(p)
		}
	}
	for _, p := range d.mentors {
		if p.UserID == userID {
			out.MentorProfile = d.mentor(p)
		}
	}
	return out, nil
}

func (d *memData) student(p models.StudentProfile) *models.StudentProfile {
	u := d.users[p.UserID]
	p.User = &u
	return &p
}

func (d *memData) mentor(p models.MentorProfile) *models.MentorProfile {
	u := d.users[p.UserID]
	p.User = &u
	p.Technologies = []string{}
	for id := range d.mentorTechs[p.ID] {
		p.Technologies = append(p.Technologies, d.technologies[id].Name)
	}
	sort.Strings(p.Technologies)
	return &p
}

type memResetTokens struct{ s *MemStore }

func (m memResetTokens) Create(_ context.Context, t *models.PasswordResetToken) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.users[t.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}
	if _, dup := d.resetTokens[t.Token]; dup {
		return apperrors.ErrConflict
	}
	t.ID = d.nextID()
	t.Used = false
	t.CreatedAt = time.Now()
	d.resetTokens[t.Token] = *t
	return nil
}

func (m memResetTokens) Claim(_ context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	d, unlock := m.s.lock()
	defer unlock()
	t, ok := d.resetTokens[token]
	if !ok || !t.Usable(now) {
		return nil, apperrors.ErrInvalidResetToken
	}
	t.Used = true
	d.resetTokens[token] = t
	return &t, nil
}

type memDashboards struct{ s *MemStore }

func (m memDashboards) GetOrCreate(_ context.Context) (*models.AdminDashboard, error) {
	d, unlock := m.s.lock()
	defer unlock()
	if ids := sortedKeys(d.dashboards); len(ids) > 0 {
		db := d.dashboards[ids[0]]
		return &db, nil
	}
	db := models.AdminDashboard{ID: d.nextID()}
	d.dashboards[db.ID] = db
	return &db, nil
}

func (m memDashboards) GetByID(_ context.Context, id int64) (*models.AdminDashboard, error) {
	d, unlock := m.s.lock()
	defer unlock()
	db, ok := d.dashboards[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("dashboard not found")
	}
	return &db, nil
}

func (m memDashboards) UpdateCounts(_ context.Context, db *models.AdminDashboard) error {
	d, unlock := m.s.lock()
	defer unlock()
	if _, ok := d.dashboards[db.ID]; !ok {
		return apperrors.NewResourceNotFoundError("dashboard not found")
	}
	d.dashboards[db.ID] = *db
	return nil
}

type memBatches struct{ s *MemStore }

func (m memBatches) Create(_ context.Context, b *models.Batch) error {
	d, unlock := m.s.lock()
	defer unlock()
	if b.MentorID != nil {
		if _, ok := d.mentors[*b.MentorID]; !ok {
			return apperrors.NewBadRequestError("mentor does not exist")
		}
	}
	b.ID = d.nextID()
	d.batches[b.ID] = *b
	return nil
}

func (m memBatches) GetByID(_ context.Context, id int64) (*models.Batch, error) {
	d, unlock := m.s.lock()
	defer unlock()
	b, ok := d.batches[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("batch not found")
	}
	return &b, nil
}

func (m memBatches) UpdateStatus(_ context.Context, id int64, status string) error {
	d, unlock := m.s.lock()
	defer unlock()
	b, ok := d.batches[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("batch not found")
	}
	b.Status = status
	d.batches[id] = b
	return nil
}

func (m memBatches) CountByStatus(_ context.Context, status string) (int64, error) {
	d, unlock := m.s.lock()
	defer unlock()
	var n int64
	for _, b := range d.batches {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type memHires struct{ s *MemStore }

func (m memHires) Create(_ context.Context, h *models.StudentsHired) error {
	d, unlock := m.s.lock()
	defer unlock()
	for _, existing := range d.hires {
		if existing.Email == h.Email {
			return apperrors.NewConflictError("a hire with this email is already recorded")
		}
	}
	_, userOK := d.users[h.UserID]
	batchOK, dashOK := true, true
	if h.BatchID != nil {
		_, batchOK = d.batches[*h.BatchID]
	}
	if h.DashboardID != nil {
		_, dashOK = d.dashboards[*h.DashboardID]
	}
	if !userOK || !batchOK || !dashOK {
		return apperrors.NewBadRequestError("referenced user, batch or dashboard does not exist")
	}
	h.ID = d.nextID()
	d.hires[h.ID] = *h
	return nil
}

func (m memHires) CountByDashboard(_ context.Context, dashboardID int64) (int64, error) {
	d, unlock := m.s.lock()
	defer unlock()
	var n int64
	for _, h := range d.hires {
		if h.DashboardID != nil && *h.DashboardID == dashboardID {
			n++
		}
	}
	return n, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func containsAny(needle string, haystack ...string) bool {
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func hasTechnology(names []string, lowered string) bool {
	for _, n := range names {
		if strings.ToLower(n) == lowered {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repositories.Store = (*MemStore)(nil)
