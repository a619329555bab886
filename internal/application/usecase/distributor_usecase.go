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

// DistributorUseCase CRUD for distributors.
type DistributorUseCase struct {
	repo repository.DistributorRepository
}

func NewDistributorUseCase(repo repository.DistributorRepository) *DistributorUseCase {
	return &DistributorUseCase{repo: repo}
}

func (uc *DistributorUseCase) Create(in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	distributor := &entity.Distributor{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		VatNumber: strings.TrimSpace(in.VatNumber),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(distributor); err != nil {
		return nil, err
	}
	return toDistributorResponse(distributor), nil
}

func (uc *DistributorUseCase) GetByID(id string) (*dto.DistributorResponse, error) {
	distributor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if distributor == nil {
		return nil, nil
	}
	return toDistributorResponse(distributor), nil
}

func (uc *DistributorUseCase) Update(id string, in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	distributor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if distributor == nil {
		return nil, nil
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		distributor.Name = name
	}
	distributor.Phone = strings.TrimSpace(in.Phone)
	distributor.Address = strings.TrimSpace(in.Address)
	distributor.VatNumber = strings.TrimSpace(in.VatNumber)
	distributor.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(distributor); err != nil {
		return nil, err
	}
	return toDistributorResponse(distributor), nil
}

func (uc *DistributorUseCase) List() ([]*dto.DistributorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DistributorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDistributorResponse(d))
	}
	return out, nil
}

func (uc *DistributorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDistributorResponse(d *entity.Distributor) *dto.DistributorResponse {
	return &dto.DistributorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Address:   d.Address,
		VatNumber: d.VatNumber,
		CreatedAt: d.CreatedAt,
	}
}
