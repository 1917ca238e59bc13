package customer

import (
	"context"
	"strings"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=customer_service.go -destination=../mock/customer/customer_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, customerID string) (CustomerResponse, error)
	UpdateProfile(ctx context.Context, customerID string, req UpdateProfileRequest) (CustomerResponse, error)
	UpdateNotifications(ctx context.Context, customerID string, req UpdateNotificationsRequest) (CustomerResponse, error)
}

type service struct {
	users auth.Repository
}

func NewService(users auth.Repository) Service {
	return &service{users: users}
}

func (s *service) GetProfile(ctx context.Context, customerID string) (CustomerResponse, error) {
	user, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		return CustomerResponse{}, err
	}
	return toCustomerResponse(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, customerID string, req UpdateProfileRequest) (CustomerResponse, error) {
	user, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		return CustomerResponse{}, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	// A password change must prove knowledge of the current one.
	if req.Password != nil && *req.Password != "" {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return CustomerResponse{}, ErrCurrentPasswordRequired
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(user.Password),
			[]byte(*req.CurrentPassword),
		); err != nil {
			return CustomerResponse{}, ErrCurrentPasswordWrong
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return CustomerResponse{}, ErrProfileUpdateFailed
		}
		user.Password = string(hashed)
	}

	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return CustomerResponse{}, err
	}

	return toCustomerResponse(user), nil
}

func (s *service) UpdateNotifications(ctx context.Context, customerID string, req UpdateNotificationsRequest) (CustomerResponse, error) {
	user, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		return CustomerResponse{}, err
	}

	if req.OrderUpdates != nil {
		user.Notifications.OrderUpdates = *req.OrderUpdates
	}
	if req.Promotions != nil {
		user.Notifications.Promotions = *req.Promotions
	}
	if req.PriceDrops != nil {
		user.Notifications.PriceDrops = *req.PriceDrops
	}
	if req.Newsletter != nil {
		user.Notifications.Newsletter = *req.Newsletter
	}

	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return CustomerResponse{}, err
	}

	return toCustomerResponse(user), nil
}

func toCustomerResponse(u auth.User) CustomerResponse {
	return CustomerResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Notifications: u.Notifications,
	}
}
