package product

import (
	"context"

	"github.com/shopd/catalog-service/internal/model"
	"github.com/shopd/catalog-service/internal/product/dto"
)

type Repository interface {
	FindAll(ctx context.Context, query *dto.ProductQuery) ([]model.Product, error)
}
