package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the GraphQL surface of the catalog service. The catalog is
// read-only over this API, so there is no mutation type.
const Schema = `
	schema {
		query: Query
	}

	type Query {
		# products returns one page of the catalog. Omitting query reads the
		# first page of ten, ordered by id ascending.
		products(query: ProductQueryInput): [Product!]!
	}

	input ProductQueryInput {
		pageIndex: Int = 1
		pageSize: Int = 10
		sortBy: String
		isDescending: Boolean = false
	}

	type Product {
		id: Int!
		name: String!
		price: Float!
		stock: Int!
	}
`

// NewSchema parses Schema against the resolver. Invalid schemas panic at
// startup rather than surfacing per request.
func NewSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver, graphql.UseFieldResolvers())
}
