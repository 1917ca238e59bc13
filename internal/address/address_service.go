package address

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) (AddressListResponse, error)
	GetByID(ctx context.Context, userID, addressID string) (AddressResponse, error)
	Create(ctx context.Context, userID string, req CreateAddressRequest) (AddressResponse, error)
	Update(ctx context.Context, userID, addressID string, req UpdateAddressRequest) (AddressResponse, error)
	Delete(ctx context.Context, userID, addressID string) error
	SetDefault(ctx context.Context, userID, addressID string) (AddressResponse, error)
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

func (s *service) List(ctx context.Context, userID string) (AddressListResponse, error) {
	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddressListResponse{}, ErrAddressFailed
	}

	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, AddressResponse(a))
	}
	return AddressListResponse{Addresses: out}, nil
}

func (s *service) GetByID(ctx context.Context, userID, addressID string) (AddressResponse, error) {
	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	for _, a := range addresses {
		if a.ID == addressID {
			return AddressResponse(a), nil
		}
	}
	return AddressResponse{}, ErrAddressNotFound
}

// Create appends a new address. The first address always becomes the
// default; an explicit isDefault on a later address displaces the old one.
func (s *service) Create(ctx context.Context, userID string, req CreateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, ErrInvalidInput
	}

	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	addr := Address{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Line:      req.Line,
		Landmark:  req.Landmark,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		IsDefault: req.IsDefault || len(addresses) == 0,
	}

	if addr.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}

	addresses = append(addresses, addr)
	if err := s.repo.Save(ctx, userID, addresses); err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	return AddressResponse(addr), nil
}

func (s *service) Update(ctx context.Context, userID, addressID string, req UpdateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, ErrInvalidInput
	}

	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	idx := -1
	for i, a := range addresses {
		if a.ID == addressID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return AddressResponse{}, ErrAddressNotFound
	}

	addr := addresses[idx]
	if req.Name != nil {
		addr.Name = *req.Name
	}
	if req.Phone != nil {
		addr.Phone = *req.Phone
	}
	if req.Line != nil {
		addr.Line = *req.Line
	}
	if req.Landmark != nil {
		addr.Landmark = *req.Landmark
	}
	if req.City != nil {
		addr.City = *req.City
	}
	if req.State != nil {
		addr.State = *req.State
	}
	if req.Pincode != nil {
		addr.Pincode = *req.Pincode
	}
	if req.IsDefault != nil && *req.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
		addr.IsDefault = true
	}

	addresses[idx] = addr
	if err := s.repo.Save(ctx, userID, addresses); err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	return AddressResponse(addr), nil
}

// Delete removes the address. When the default is deleted the first
// remaining address is promoted, so there is always a default while any
// address exists.
func (s *service) Delete(ctx context.Context, userID, addressID string) error {
	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrAddressFailed
	}

	next := addresses[:0]
	removedDefault := false
	found := false
	for _, a := range addresses {
		if a.ID == addressID {
			found = true
			removedDefault = a.IsDefault
			continue
		}
		next = append(next, a)
	}

	if !found {
		return ErrAddressNotFound
	}

	if removedDefault && len(next) > 0 {
		next[0].IsDefault = true
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return ErrAddressFailed
	}
	return nil
}

func (s *service) SetDefault(ctx context.Context, userID, addressID string) (AddressResponse, error) {
	addresses, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	idx := -1
	for i := range addresses {
		addresses[i].IsDefault = false
		if addresses[i].ID == addressID {
			idx = i
		}
	}
	if idx == -1 {
		return AddressResponse{}, ErrAddressNotFound
	}

	addresses[idx].IsDefault = true
	if err := s.repo.Save(ctx, userID, addresses); err != nil {
		return AddressResponse{}, ErrAddressFailed
	}

	return AddressResponse(addresses[idx]), nil
}
