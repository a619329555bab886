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

// ServiceUseCase CRUD for repair service tickets.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	customerRepo repository.CustomerRepository
}

func NewServiceUseCase(repo repository.ServiceRepository, customerRepo repository.CustomerRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, customerRepo: customerRepo}
}

func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	device := strings.TrimSpace(in.Device)
	issue := strings.TrimSpace(in.Issue)
	if device == "" || issue == "" {
		return nil, fmt.Errorf("%w: device and issue required", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ServiceStatusPending
	}
	if !entity.ValidServiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	now := time.Now().UTC()
	ticket := &entity.ServiceTicket{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Device:        device,
		Issue:         issue,
		Status:        status,
		EstimatedCost: in.EstimatedCost,
		FinalCost:     in.FinalCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return uc.toResponse(ticket)
}

func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	return uc.toResponse(ticket)
}

func (uc *ServiceUseCase) Update(id string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	if device := strings.TrimSpace(in.Device); device != "" {
		ticket.Device = device
	}
	if issue := strings.TrimSpace(in.Issue); issue != "" {
		ticket.Issue = issue
	}
	if in.Status != "" {
		if !entity.ValidServiceStatus(in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
		}
		ticket.Status = in.Status
	}
	if in.CustomerID != "" {
		ticket.CustomerID = in.CustomerID
	}
	if in.EstimatedCost != nil {
		ticket.EstimatedCost = in.EstimatedCost
	}
	if in.FinalCost != nil {
		ticket.FinalCost = in.FinalCost
	}
	ticket.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ticket); err != nil {
		return nil, err
	}
	return uc.toResponse(ticket)
}

// List lists tickets, restricted to status when non-empty.
func (uc *ServiceUseCase) List(status string) ([]*dto.ServiceResponse, error) {
	if status != "" && !entity.ValidServiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, t := range list {
		resp, err := uc.toResponse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ServiceUseCase) toResponse(t *entity.ServiceTicket) (*dto.ServiceResponse, error) {
	resp := &dto.ServiceResponse{
		ID:            t.ID,
		Device:        t.Device,
		Issue:         t.Issue,
		Status:        t.Status,
		EstimatedCost: t.EstimatedCost,
		FinalCost:     t.FinalCost,
		CreatedAt:     t.CreatedAt,
	}
	if t.CustomerID != "" {
		c, err := uc.customerRepo.GetByID(t.CustomerID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			resp.Customer = &dto.BillCustomerRef{ID: c.ID, Name: c.Name, Phone: c.Phone}
		}
	}
	return resp, nil
}
