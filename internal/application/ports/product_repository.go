package ports

import (
	"context"

	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
)

type ProductRepository interface {
	List(ctx context.Context, activeOnly bool) ([]catalog.Product, error)
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
	Create(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}
