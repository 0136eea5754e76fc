package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projectscope/projectscope-backend/internal/users"
	"github.com/projectscope/projectscope-backend/pkg/db/models"
	"github.com/projectscope/projectscope-backend/pkg/enums"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
	created []*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
}

func (s *stubUserRepo) add(u *models.User) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
}

func (s *stubUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	user.ID = uuid.New()
	s.add(user)
	s.created = append(s.created, user)
	return user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSessionRepo struct {
	sessions map[string]*models.Session
	deleted  []string
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*models.Session{}}
}

func (s *stubSessionRepo) Create(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.sessions[session.ID] = session
	return session, nil
}

func (s *stubSessionRepo) GetValid(ctx context.Context, token string) (*models.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if !session.ExpiresAt.After(time.Now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	return session, nil
}

func (s *stubSessionRepo) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	s.deleted = append(s.deleted, token)
	return nil
}

func newTestService(t *testing.T) (Service, *stubUserRepo, *stubSessionRepo) {
	t.Helper()
	userRepo := newStubUserRepo()
	sessionRepo := newStubSessionRepo()
	svc, err := NewService(ServiceParams{UserRepo: userRepo, SessionRepo: sessionRepo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, userRepo, sessionRepo
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:           "Investor@Example.com",
		FirstName:       "Aisha",
		LastName:        "Rahman",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		Role:            "investor",
	}
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	svc, userRepo, sessionRepo := newTestService(t)

	result, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User == nil || result.SessionToken == "" {
		t.Fatal("expected user and session token")
	}
	if result.User.Email != "investor@example.com" {
		t.Fatalf("expected normalized email got %s", result.User.Email)
	}
	if result.User.SelectedRole != enums.RoleInvestor {
		t.Fatalf("expected investor role got %s", result.User.SelectedRole)
	}
	if len(userRepo.created) != 1 {
		t.Fatalf("expected one user created got %d", len(userRepo.created))
	}
	if userRepo.created[0].PasswordHash == "correct-horse" {
		t.Fatal("password must be stored hashed")
	}
	if _, ok := sessionRepo.sessions[result.SessionToken]; !ok {
		t.Fatal("expected session persisted")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), validRegisterRequest())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict got %v", err)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRegisterRequest()
	req.ConfirmPassword = "something-else"
	_, err := svc.Register(context.Background(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validRegisterRequest()
	req.Role = "astronaut"
	_, err := svc.Register(context.Background(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "investor@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.SessionToken == "" {
		t.Fatal("expected session token")
	}
}

func TestLoginFailureMessageDoesNotLeakAccountExistence(t *testing.T) {
	svc, userRepo, _ := newTestService(t)

	hash, err := security.HashPassword("real-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	userRepo.add(&models.User{
		Email:        "known@example.com",
		PasswordHash: hash,
		SelectedRole: enums.RoleDeveloper,
	})

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Email: "unknown@example.com", Password: "whatever"})
	_, wrongPassErr := svc.Login(context.Background(), LoginRequest{Email: "known@example.com", Password: "wrong"})

	unknown := pkgerrors.As(unknownErr)
	wrongPass := pkgerrors.As(wrongPassErr)
	if unknown == nil || wrongPass == nil {
		t.Fatalf("expected typed errors got %v and %v", unknownErr, wrongPassErr)
	}
	if unknown.Code() != pkgerrors.CodeUnauthorized || wrongPass.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for both, got %s and %s", unknown.Code(), wrongPass.Code())
	}
	if unknown.Message() != wrongPass.Message() {
		t.Fatalf("messages differ: %q vs %q", unknown.Message(), wrongPass.Message())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), result.SessionToken); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(context.Background(), result.SessionToken); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("blank token logout: %v", err)
	}
}

func TestAuthenticateResolvesUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), result.SessionToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "investor@example.com" {
		t.Fatalf("expected registered user got %s", user.Email)
	}
}

func TestAuthenticateFailsClosed(t *testing.T) {
	svc, _, sessionRepo := newTestService(t)

	for _, token := range []string{"", "unknown-token"} {
		_, err := svc.Authenticate(context.Background(), token)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("token %q: expected unauthorized got %v", token, err)
		}
	}

	// Expired sessions answer the same way.
	expired := &models.Session{ID: "expired", UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)}
	sessionRepo.sessions[expired.ID] = expired
	_, err := svc.Authenticate(context.Background(), expired.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for expired session got %v", err)
	}
}
