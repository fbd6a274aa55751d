package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/metrics"
	"github.com/yigit/lms/internal/testutils"
	"golang.org/x/crypto/bcrypt"
)

var errInjected = errors.New("injected failure")

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sentMail struct {
	to, name, url string
	validFor      time.Duration
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) SendPasswordResetEmail(_ context.Context, to, name, url string, validFor time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, name: name, url: url, validFor: validFor})
	return nil
}

type fakeFiles struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (f *fakeFiles) SaveFileWithPath(fh *multipart.FileHeader, subPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	url := "/uploads/" + subPath + "/" + fh.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeFiles) DeleteFile(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

// faultyStore wraps a store and fails selected operations
type faultyStore struct {
	repositories.Store
	failStudentProfile bool
	failUpdateCounts   bool
}

func (f faultyStore) WithTx(ctx context.Context, fn repositories.TxFn) error {
	return f.Store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		inner := f
		inner.Store = tx
		return fn(ctx, inner)
	})
}

func (f faultyStore) Profiles() repositories.ProfileStore {
	return faultyProfiles{ProfileStore: f.Store.Profiles(), fail: f.failStudentProfile}
}

func (f faultyStore) Dashboards() repositories.DashboardStore {
	return faultyDashboards{DashboardStore: f.Store.Dashboards(), fail: f.failUpdateCounts}
}

type faultyProfiles struct {
	repositories.ProfileStore
	fail bool
}

func (p faultyProfiles) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	if p.fail {
		return errInjected
	}
	return p.ProfileStore.CreateStudentProfile(ctx, profile)
}

type faultyDashboards struct {
	repositories.DashboardStore
	fail bool
}

func (d faultyDashboards) UpdateCounts(ctx context.Context, dashboard *models.AdminDashboard) error {
	if d.fail {
		return errInjected
	}
	return d.DashboardStore.UpdateCounts(ctx, dashboard)
}

type authFixture struct {
	store  *testutils.MemStore
	clock  *testClock
	hasher *auth.BcryptHasher
	jwt    *auth.JWTService
	mailer *fakeMailer
	files  *fakeFiles
	svc    *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	return newAuthFixtureWithStore(t, nil)
}

func newAuthFixtureWithStore(t *testing.T, wrap func(repositories.Store) repositories.Store) *authFixture {
	t.Helper()
	f := &authFixture{
		store:  testutils.NewMemStore(),
		clock:  newTestClock(),
		hasher: auth.NewBcryptHasher(bcrypt.MinCost),
		mailer: &fakeMailer{},
		files:  &fakeFiles{},
	}
	f.jwt = auth.NewJWTService(auth.JWTConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenExp:  4 * time.Hour,
		RefreshTokenExp: 7 * 24 * time.Hour,
		TokenIssuer:     "lms-test",
		Now:             f.clock.Now,
	})

	var store repositories.Store = f.store
	if wrap != nil {
		store = wrap(f.store)
	}

	f.svc = NewAuthService(store, f.hasher, f.jwt, f.mailer, f.files, metrics.New(),
		AuthSettings{ResetTokenTTL: 30 * time.Minute, ResetURL: "http://app/reset?token=%s"},
		f.clock.Now, zerolog.Nop())
	return f
}

func (f *authFixture) seedUser(t *testing.T, email, password string, role models.RoleType, active bool) *models.User {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return f.store.SeedUser(email, role, hash, active)
}

func ptr[T any](v T) *T { return &v }
