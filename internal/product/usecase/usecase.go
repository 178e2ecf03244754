package usecase

import (
	"context"

	"github.com/shopd/catalog-service/internal/model"
	"github.com/shopd/catalog-service/internal/product"
	"github.com/shopd/catalog-service/internal/product/dto"
	"github.com/shopd/catalog-service/pkg/logger"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

// ListProducts applies the one business rule this service has, the upper
// bound on page size, and hands the query to the repository. Everything
// else about the input (sort field, direction, page index, even
// non-positive values) is passed through untouched.
func (uc *productUseCase) ListProducts(ctx context.Context, query *dto.ProductQuery) ([]model.Product, error) {
	if query.PageSize > dto.MaxPageSize {
		uc.logger.Debug("clamping page size",
			zap.Int("requested", query.PageSize),
			zap.Int("max", dto.MaxPageSize),
		)
		query.PageSize = dto.MaxPageSize
	}

	return uc.repo.FindAll(ctx, query)
}
