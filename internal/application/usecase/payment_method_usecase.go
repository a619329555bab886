package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

// PaymentMethodUseCase CRUD for payment methods.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	}
	now := time.Now().UTC()
	method := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

func (uc *PaymentMethodUseCase) Update(id string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		method.Name = name
	}
	if in.SortOrder != nil {
		method.SortOrder = *in.SortOrder
	}
	method.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

// List returns methods in POS display order.
func (uc *PaymentMethodUseCase) List() ([]*dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toPaymentMethodResponse(m))
	}
	return out, nil
}

func (uc *PaymentMethodUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:        m.ID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}
