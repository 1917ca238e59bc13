package auth

import (
	"context"
	"strings"
	"time"

	autherrors "github.com/Latha-Maheswari/modern-buy-easy/internal/auth/errors"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

const (
	usersKey          = "users"
	passwordResetsKey = "password_resets"
)

// User is the account record shared by auth, customer and seller flows.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID            string                  `json:"id"`
	Email         string                  `json:"email"`
	Name          string                  `json:"name"`
	Phone         string                  `json:"phone,omitempty"`
	Password      string                  `json:"password"`
	Role          string                  `json:"role"`
	Notifications NotificationPreferences `json:"notifications"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

type NotificationPreferences struct {
	OrderUpdates bool `json:"orderUpdates"`
	Promotions   bool `json:"promotions"`
	PriceDrops   bool `json:"priceDrops"`
	Newsletter   bool `json:"newsletter"`
}

type PasswordResetToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error

	SavePasswordResetToken(ctx context.Context, token PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (PasswordResetToken, bool, error)
	GetLatestPasswordResetTokenByUserID(ctx context.Context, userID string) (PasswordResetToken, bool, error)
	DeletePasswordResetToken(ctx context.Context, token string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) loadUsers(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := storage.LoadJSON(ctx, r.store, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, autherrors.ErrUserNotFound
}

func (r *repository) GetByID(ctx context.Context, id string) (User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, autherrors.ErrUserNotFound
}

// Create appends the user; the email must not already be taken.
func (r *repository) Create(ctx context.Context, user User) error {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	users = append(users, user)
	return storage.SaveJSON(ctx, r.store, usersKey, users)
}

func (r *repository) Update(ctx context.Context, user User) error {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return storage.SaveJSON(ctx, r.store, usersKey, users)
		}
	}
	return autherrors.ErrUserNotFound
}

func (r *repository) loadResetTokens(ctx context.Context) (map[string]PasswordResetToken, error) {
	tokens := map[string]PasswordResetToken{}
	if _, err := storage.LoadJSON(ctx, r.store, passwordResetsKey, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *repository) SavePasswordResetToken(ctx context.Context, token PasswordResetToken) error {
	tokens, err := r.loadResetTokens(ctx)
	if err != nil {
		return err
	}

	// One live token per user.
	for k, t := range tokens {
		if t.UserID == token.UserID {
			delete(tokens, k)
		}
	}
	tokens[token.Token] = token

	return storage.SaveJSON(ctx, r.store, passwordResetsKey, tokens)
}

func (r *repository) GetPasswordResetToken(ctx context.Context, token string) (PasswordResetToken, bool, error) {
	tokens, err := r.loadResetTokens(ctx)
	if err != nil {
		return PasswordResetToken{}, false, err
	}

	t, ok := tokens[token]
	return t, ok, nil
}

func (r *repository) GetLatestPasswordResetTokenByUserID(ctx context.Context, userID string) (PasswordResetToken, bool, error) {
	tokens, err := r.loadResetTokens(ctx)
	if err != nil {
		return PasswordResetToken{}, false, err
	}

	var latest PasswordResetToken
	found := false
	for _, t := range tokens {
		if t.UserID == userID && (!found || t.CreatedAt.After(latest.CreatedAt)) {
			latest = t
			found = true
		}
	}
	return latest, found, nil
}

func (r *repository) DeletePasswordResetToken(ctx context.Context, token string) error {
	tokens, err := r.loadResetTokens(ctx)
	if err != nil {
		return err
	}

	delete(tokens, token)
	return storage.SaveJSON(ctx, r.store, passwordResetsKey, tokens)
}
