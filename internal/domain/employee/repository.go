package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID loads the employee together with its working hours.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List loads employees with their working hours, ordered by name.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// FindByNameAndPosition matches exactly on both fields, without working hours.
	FindByNameAndPosition(ctx context.Context, name string, position Position) (Employee, error)

	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
