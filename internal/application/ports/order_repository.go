package ports

import (
	"context"

	"github.com/makelifebetter/storefront-service/internal/domain/order"
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	GetByID(ctx context.Context, id string) (*order.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]order.Order, error)
	GetAll(ctx context.Context) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) error
}
