package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/auth"
	autherrors "github.com/Latha-Maheswari/modern-buy-easy/internal/auth/errors"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*auth.Service, auth.Repository) {
	t.Helper()
	repo := auth.NewRepository(storage.NewMemoryStore())
	svc := auth.NewService(repo, email.NewNoopService(), auth.Config{
		JWTSecret:  "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	return svc, repo
}

func registerReq() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Phone:    "+91 98765 43210",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success_register_new_customer", func(t *testing.T) {
		svc, _ := newTestService(t)

		res, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "priya@example.com", res.Email)
		assert.Equal(t, "Priya Sharma", res.Name)
		assert.Equal(t, "CUSTOMER", res.Role)
	})

	t.Run("error_duplicate_email", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		req := registerReq()
		req.Email = "PRIYA@example.com" // email match is case-insensitive
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("success_password_is_hashed", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		user, err := repo.GetByEmail(ctx, "priya@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", user.Password)
		assert.NotEmpty(t, user.Password)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success_login_returns_tokens", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		access, refresh, user, err := svc.Login(ctx, "priya@example.com", "secret123")
		require.NoError(t, err)

		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "priya@example.com", user.Email)
	})

	t.Run("error_wrong_password", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		_, _, _, err = svc.Login(ctx, "priya@example.com", "wrong-password")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("error_unknown_email", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success_rotates_tokens", func(t *testing.T) {
		svc, _ := newTestService(t)

		reg, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		_, refresh, _, err := svc.Login(ctx, "priya@example.com", "secret123")
		require.NoError(t, err)

		newAccess, newRefresh, user, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)

		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, reg.ID, user.ID)
	})

	t.Run("error_garbage_token", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success_returns_profile", func(t *testing.T) {
		svc, _ := newTestService(t)

		reg, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		me, err := svc.GetMe(ctx, reg.ID)
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", me.Name)
		assert.Equal(t, "+91 98765 43210", me.Phone)
	})

	t.Run("error_unknown_user", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.GetMe(ctx, "missing-id")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("success_reset_flow_changes_password", func(t *testing.T) {
		svc, repo := newTestService(t)

		reg, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		res, err := svc.RequestPasswordReset(ctx, "priya@example.com")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.EmailSent)

		token, ok, err := repo.GetLatestPasswordResetTokenByUserID(ctx, reg.ID)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = svc.ResetPassword(ctx, token.Token, "brand-new-pass")
		require.NoError(t, err)

		_, _, _, err = svc.Login(ctx, "priya@example.com", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

		_, _, _, err = svc.Login(ctx, "priya@example.com", "brand-new-pass")
		assert.NoError(t, err)
	})

	t.Run("success_unknown_email_does_not_leak", func(t *testing.T) {
		svc, _ := newTestService(t)

		res, err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.False(t, res.EmailSent)
	})

	t.Run("success_repeat_request_is_throttled", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		first, err := svc.RequestPasswordReset(ctx, "priya@example.com")
		require.NoError(t, err)
		assert.True(t, first.EmailSent)

		second, err := svc.RequestPasswordReset(ctx, "priya@example.com")
		require.NoError(t, err)
		assert.False(t, second.EmailSent)
	})

	t.Run("error_invalid_reset_token", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.ResetPassword(ctx, "bogus-token", "whatever123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestAuthService_EnsureSeller(t *testing.T) {
	ctx := context.Background()

	t.Run("success_seeds_once", func(t *testing.T) {
		svc, repo := newTestService(t)

		require.NoError(t, svc.EnsureSeller(ctx, "seller@shopease.in", "seller123", "ShopEase Seller"))
		require.NoError(t, svc.EnsureSeller(ctx, "seller@shopease.in", "seller123", "ShopEase Seller"))

		user, err := repo.GetByEmail(ctx, "seller@shopease.in")
		require.NoError(t, err)
		assert.Equal(t, "SELLER", user.Role)
	})

	t.Run("success_seller_can_login", func(t *testing.T) {
		svc, _ := newTestService(t)

		require.NoError(t, svc.EnsureSeller(ctx, "seller@shopease.in", "seller123", "ShopEase Seller"))

		_, _, user, err := svc.Login(ctx, "seller@shopease.in", "seller123")
		require.NoError(t, err)
		assert.Equal(t, "SELLER", user.Role)
	})
}
