package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/atelier-service/internal/auth"
	"github.com/spec-kit/atelier-service/internal/config"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/events"
)

type fakeUserRepository struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.byEmail, user.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) List(_ context.Context, limit, offset int) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *fakeUserRepository) TouchLastLogin(_ context.Context, id string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepository) {
	t.Helper()

	repo := newFakeUserRepository()
	tokens := auth.NewTokenManager("service-test-secret", time.Hour, auth.NewMemoryRevocationList())
	cfg := config.AuthConfig{BcryptCost: bcrypt.MinCost}
	return NewAuthService(cfg, repo, tokens, events.NewInMemoryDispatcher()), repo
}

func TestRegisterDefaultsRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "secret", "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, user.Role)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "secret", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "ana@example.com", "another", domain.RoleUser)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleAdmin)
	require.NoError(t, err)

	user, token, expiresAt, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.UserID)
	require.Equal(t, domain.RoleAdmin, claims.Role)

	stored := repo.byID[registered.ID]
	require.NotNil(t, stored.LastLoginAt)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleUser)
	require.NoError(t, err)

	// Unknown email and wrong password report the same error so callers
	// cannot probe which addresses exist.
	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "secret")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, _, _, wrongErr := svc.Login(ctx, "ana@example.com", "wrong")
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	require.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleUser)
	require.NoError(t, err)

	_, token, _, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.TokenManager().Validate(ctx, token)
	require.ErrorIs(t, err, auth.ErrTokenRevoked)

	// Logging out again is harmless.
	require.NoError(t, svc.Logout(ctx, token))
}

func TestRoleChangeAppliesAtNextLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleUser)
	require.NoError(t, err)

	_, token, _, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	promoted := domain.RoleAdmin
	_, err = svc.UpdateUser(ctx, user.ID, UserUpdateInput{Role: &promoted})
	require.NoError(t, err)

	// The already-issued token keeps the role it was born with.
	claims, err := svc.TokenManager().Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, claims.Role)

	_, fresh, _, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	freshClaims, err := svc.TokenManager().Validate(ctx, fresh)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, freshClaims.Role)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "ana@example.com", "secret", domain.RoleUser)
	require.NoError(t, err)

	newPassword := "rotated"
	newRole := domain.RoleAdmin
	updated, err := svc.UpdateUser(ctx, user.ID, UserUpdateInput{Password: &newPassword, Role: &newRole})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, updated.Role)
	require.NotEqual(t, user.PasswordHash, updated.PasswordHash)

	_, _, _, err = svc.Login(ctx, "ana@example.com", "rotated")
	require.NoError(t, err)
}
