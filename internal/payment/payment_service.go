package payment

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) (MethodListResponse, error)
	GetByID(ctx context.Context, userID, methodID string) (MethodResponse, error)
	Add(ctx context.Context, userID string, req AddMethodRequest) (MethodResponse, error)
	Delete(ctx context.Context, userID, methodID string) error
	SetDefault(ctx context.Context, userID, methodID string) (MethodResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(r Repository) Service {
	return &service{
		repo:     r,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context, userID string) (MethodListResponse, error) {
	methods, err := s.repo.Get(ctx, userID)
	if err != nil {
		return MethodListResponse{}, ErrPaymentFailed
	}

	out := make([]MethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, toMethodResponse(m))
	}
	return MethodListResponse{Methods: out}, nil
}

func (s *service) GetByID(ctx context.Context, userID, methodID string) (MethodResponse, error) {
	methods, err := s.repo.Get(ctx, userID)
	if err != nil {
		return MethodResponse{}, ErrPaymentFailed
	}

	for _, m := range methods {
		if m.ID == methodID {
			return toMethodResponse(m), nil
		}
	}
	return MethodResponse{}, ErrMethodNotFound
}

func (s *service) Add(ctx context.Context, userID string, req AddMethodRequest) (MethodResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return MethodResponse{}, ErrInvalidInput
	}

	methods, err := s.repo.Get(ctx, userID)
	if err != nil {
		return MethodResponse{}, ErrPaymentFailed
	}

	m := Method{
		ID:        uuid.NewString(),
		Type:      req.Type,
		IsDefault: req.IsDefault || len(methods) == 0,
		CreatedAt: time.Now(),
	}

	switch req.Type {
	case "card":
		digits := strings.ReplaceAll(req.CardNumber, " ", "")
		if len(digits) < 4 {
			return MethodResponse{}, ErrInvalidInput
		}
		m.Last4 = digits[len(digits)-4:]
		m.CardName = req.CardName
		m.Expiry = req.Expiry
	case "upi":
		m.UPIID = req.UPIID
	}

	if m.IsDefault {
		for i := range methods {
			methods[i].IsDefault = false
		}
	}

	methods = append(methods, m)
	if err := s.repo.Save(ctx, userID, methods); err != nil {
		return MethodResponse{}, ErrPaymentFailed
	}

	return toMethodResponse(m), nil
}

func (s *service) Delete(ctx context.Context, userID, methodID string) error {
	methods, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrPaymentFailed
	}

	next := methods[:0]
	removedDefault := false
	found := false
	for _, m := range methods {
		if m.ID == methodID {
			found = true
			removedDefault = m.IsDefault
			continue
		}
		next = append(next, m)
	}

	if !found {
		return ErrMethodNotFound
	}

	if removedDefault && len(next) > 0 {
		next[0].IsDefault = true
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return ErrPaymentFailed
	}
	return nil
}

func (s *service) SetDefault(ctx context.Context, userID, methodID string) (MethodResponse, error) {
	methods, err := s.repo.Get(ctx, userID)
	if err != nil {
		return MethodResponse{}, ErrPaymentFailed
	}

	idx := -1
	for i := range methods {
		methods[i].IsDefault = false
		if methods[i].ID == methodID {
			idx = i
		}
	}
	if idx == -1 {
		return MethodResponse{}, ErrMethodNotFound
	}

	methods[idx].IsDefault = true
	if err := s.repo.Save(ctx, userID, methods); err != nil {
		return MethodResponse{}, ErrPaymentFailed
	}

	return toMethodResponse(methods[idx]), nil
}

func toMethodResponse(m Method) MethodResponse {
	res := MethodResponse{
		ID:        m.ID,
		Type:      m.Type,
		CardName:  m.CardName,
		Expiry:    m.Expiry,
		IsDefault: m.IsDefault,
	}

	switch m.Type {
	case "card":
		res.Label = "**** **** **** " + m.Last4
	case "upi":
		res.Label = m.UPIID
	}
	return res
}
