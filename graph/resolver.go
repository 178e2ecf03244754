package graph

import (
	"context"

	"github.com/shopd/catalog-service/internal/model"
	"github.com/shopd/catalog-service/internal/product"
	"github.com/shopd/catalog-service/internal/product/dto"
)

// Resolver is the GraphQL root. It holds no logic of its own; every field
// forwards to the product use case and hands results straight back.
type Resolver struct {
	productUC product.UseCase
}

// NewResolver product graphql resolver constructor
func NewResolver(productUC product.UseCase) *Resolver {
	return &Resolver{productUC: productUC}
}

// ProductQueryInput mirrors the ProductQueryInput schema type. Fields with
// schema defaults arrive filled in, so only sortBy needs a pointer.
type ProductQueryInput struct {
	PageIndex    int32
	PageSize     int32
	SortBy       *string
	IsDescending bool
}

// Product is the GraphQL shape of a catalog product.
type Product struct {
	ID    int32
	Name  string
	Price float64
	Stock int32
}

// Products resolves the products query. A nil query behaves as an
// all-defaults input.
func (r *Resolver) Products(ctx context.Context, args struct{ Query *ProductQueryInput }) ([]Product, error) {
	items, err := r.productUC.ListProducts(ctx, toProductQuery(args.Query))
	if err != nil {
		return nil, err
	}

	page := make([]Product, 0, len(items))
	for _, item := range items {
		page = append(page, toGraphProduct(item))
	}
	return page, nil
}

func toProductQuery(in *ProductQueryInput) *dto.ProductQuery {
	if in == nil {
		return dto.DefaultProductQuery()
	}
	query := &dto.ProductQuery{
		PageIndex:  int(in.PageIndex),
		PageSize:   int(in.PageSize),
		Descending: in.IsDescending,
	}
	if in.SortBy != nil {
		query.SortBy = *in.SortBy
	}
	return query
}

func toGraphProduct(p model.Product) Product {
	return Product{
		ID:    int32(p.ID),
		Name:  p.Name,
		Price: p.Price,
		Stock: int32(p.Stock),
	}
}
