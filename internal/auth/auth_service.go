package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "github.com/Latha-Maheswari/modern-buy-easy/internal/auth/errors"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

// Config carries the token settings; the secret and TTLs come from the
// security section of the app config.
type Config struct {
	JWTSecret    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	ResetBaseURL string
}

type Service struct {
	repo     Repository
	emailSvc email.Service
	cfg      Config
}

func NewService(repo Repository, emailSvc email.Service, cfg Config) *Service {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	if cfg.ResetBaseURL == "" {
		cfg.ResetBaseURL = "http://localhost:3000"
	}
	return &Service{
		repo:     repo,
		emailSvc: emailSvc,
		cfg:      cfg,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, autherrors.ErrAuthFailed
	}

	now := time.Now()
	user := User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Password: string(hashed),
		Role:     "CUSTOMER",
		Notifications: NotificationPreferences{
			OrderUpdates: true,
			Promotions:   true,
			PriceDrops:   true,
			Newsletter:   false,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	return toAuthResponse(user), nil
}

func (s *Service) Login(ctx context.Context, loginEmail, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, loginEmail)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user.ID, user.Role, s.cfg.AccessTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAuthFailed
	}

	refreshToken, err := s.generateToken(user.ID, user.Role, s.cfg.RefreshTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAuthFailed
	}

	return accessToken, refreshToken, toAuthResponse(user), nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccess, err := s.generateToken(user.ID, user.Role, s.cfg.AccessTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAuthFailed
	}

	newRefresh, err := s.generateToken(user.ID, user.Role, s.cfg.RefreshTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAuthFailed
	}

	return newAccess, newRefresh, toAuthResponse(user), nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	res := toAuthResponse(user)
	return &res, nil
}

// RequestPasswordReset always reports success so the endpoint cannot be used
// to probe which emails are registered.
func (s *Service) RequestPasswordReset(ctx context.Context, resetEmail string) (ActionStatusResponse, error) {
	user, err := s.repo.GetByEmail(ctx, resetEmail)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return ActionStatusResponse{Success: true, EmailSent: false}, nil
		}
		return ActionStatusResponse{}, err
	}

	now := time.Now()
	if existing, ok, err := s.repo.GetLatestPasswordResetTokenByUserID(ctx, user.ID); err != nil {
		return ActionStatusResponse{}, err
	} else if ok && now.Sub(existing.CreatedAt) < 10*time.Minute && existing.ExpiresAt.After(now) {
		return ActionStatusResponse{
			Success:   true,
			EmailSent: false,
			Message:   "A password reset link was recently sent. Please check your email or try again later.",
		}, nil
	}

	resetToken := PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}
	if err := s.repo.SavePasswordResetToken(ctx, resetToken); err != nil {
		return ActionStatusResponse{}, err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.ResetBaseURL, resetToken.Token)
	if err := s.emailSvc.SendResetPasswordEmail(ctx, user.Email, user.Name, resetURL); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{Success: true, EmailSent: true}, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) (ActionStatusResponse, error) {
	record, ok, err := s.repo.GetPasswordResetToken(ctx, token)
	if err != nil {
		return ActionStatusResponse{}, err
	}
	if !ok {
		return ActionStatusResponse{}, autherrors.ErrInvalidToken
	}

	if time.Now().After(record.ExpiresAt) {
		_ = s.repo.DeletePasswordResetToken(ctx, token)
		return ActionStatusResponse{}, autherrors.ErrTokenExpired
	}

	user, err := s.repo.GetByID(ctx, record.UserID)
	if err != nil {
		return ActionStatusResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ActionStatusResponse{}, autherrors.ErrAuthFailed
	}

	user.Password = string(hashed)
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return ActionStatusResponse{}, err
	}

	if err := s.repo.DeletePasswordResetToken(ctx, token); err != nil {
		return ActionStatusResponse{}, err
	}

	return ActionStatusResponse{
		Success: true,
		Message: "Password has been reset successfully.",
	}, nil
}

// EnsureSeller seeds the single seller account on startup; it is a no-op when
// the account already exists.
func (s *Service) EnsureSeller(ctx context.Context, sellerEmail, password, name string) error {
	if _, err := s.repo.GetByEmail(ctx, sellerEmail); err == nil {
		return nil
	} else if !errors.Is(err, autherrors.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	return s.repo.Create(ctx, User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(sellerEmail),
		Name:     name,
		Password: string(hashed),
		Role:     "SELLER",
		Notifications: NotificationPreferences{
			OrderUpdates: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func toAuthResponse(u User) AuthResponse {
	return AuthResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func (s *Service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
