package product

import (
	"context"

	"github.com/shopd/catalog-service/internal/model"
	"github.com/shopd/catalog-service/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, query *dto.ProductQuery) ([]model.Product, error)
}
