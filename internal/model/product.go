package model

// Product is one row of the products table. This service only reads it;
// writes are owned by whatever maintains the catalog.
type Product struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
	Stock int     `db:"stock" json:"stock"`
}
