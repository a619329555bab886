package repository

import "github.com/mobileshop/pos-api/internal/domain/entity"

// Plain reference entities share the same CRUD shape; their ports live together.

// CustomerRepository persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(search string) ([]*entity.Customer, error)
	Delete(id string) error
}

// DistributorRepository persistence port for distributors.
type DistributorRepository interface {
	Create(distributor *entity.Distributor) error
	GetByID(id string) (*entity.Distributor, error)
	GetByName(name string) (*entity.Distributor, error)
	Update(distributor *entity.Distributor) error
	List() ([]*entity.Distributor, error)
	Delete(id string) error
}

// CategoryRepository persistence port for categories.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}

// PaymentMethodRepository persistence port for payment methods.
// List returns methods ordered by (sort_order, name).
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
	List() ([]*entity.PaymentMethod, error)
	Delete(id string) error
}

// ServiceRepository persistence port for service tickets.
type ServiceRepository interface {
	Create(ticket *entity.ServiceTicket) error
	GetByID(id string) (*entity.ServiceTicket, error)
	Update(ticket *entity.ServiceTicket) error
	// List filters by status when status is non-empty.
	List(status string) ([]*entity.ServiceTicket, error)
	Delete(id string) error
}

// UserRepository persistence port for the admin user.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
