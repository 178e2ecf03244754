package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopd/catalog-service/internal/model"
	"github.com/shopd/catalog-service/internal/product/dto"
)

// defaultSortColumn is what unknown or absent sort fields fall back to.
const defaultSortColumn = "id"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// sortColumn resolves the caller-supplied sort field against a closed
// whitelist. Anything outside it, including the empty string, maps to the
// id column, so no caller-controlled text ever reaches the ORDER BY clause.
func sortColumn(field string) string {
	switch strings.ToLower(field) {
	case "id":
		return "id"
	case "name":
		return "name"
	case "price":
		return "price"
	case "stock":
		return "stock"
	default:
		return defaultSortColumn
	}
}

func sortDirection(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}

func (r *PGRepository) FindAll(ctx context.Context, q *dto.ProductQuery) ([]model.Product, error) {
	// Only the whitelisted column and the direction keyword are interpolated;
	// LIMIT and OFFSET travel as bound parameters.
	query := fmt.Sprintf(
		"SELECT id, name, price, stock FROM products ORDER BY %s %s LIMIT $1 OFFSET $2",
		sortColumn(q.SortBy), sortDirection(q.Descending),
	)

	// No floor on PageIndex: a zero or negative page yields a non-positive
	// offset and the database decides what to do with it.
	offset := (q.PageIndex - 1) * q.PageSize

	// TODO: count total rows alongside the page so the API can expose
	// pagination metadata (total, has-next) without a second round trip.
	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, query, q.PageSize, offset); err != nil {
		return nil, err
	}
	return products, nil
}
