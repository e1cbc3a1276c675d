package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the closed set of product category labels.
var Categories = []string{
	"electronics", "clothing", "food", "books", "toys",
	"sports", "beauty", "home", "garden", "automotive",
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameLower   string             `bson:"nameLower" json:"-"`
	Description string             `bson:"description" json:"description"`
	Price       int                `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"required,min=10,max=1000"`
	Price       int    `json:"price" binding:"required,min=1,max=1000000"`
	Stock       *int   `json:"stock" binding:"required,min=0,max=10000"`
	Category    string `json:"category" binding:"required,oneof=electronics clothing food books toys sports beauty home garden automotive"`
}

// UpdateProductRequest carries a partial update; nil fields are untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description *string `json:"description" binding:"omitempty,min=10,max=1000"`
	Price       *int    `json:"price" binding:"omitempty,min=1,max=1000000"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0,max=10000"`
	Category    *string `json:"category" binding:"omitempty,oneof=electronics clothing food books toys sports beauty home garden automotive"`
}

// ProductQuery is the flat set of list parameters. Page and PageSize bounds
// are checked by the service so out-of-range values never reach the store.
type ProductQuery struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"pageSize,default=10"`
	Name      string `form:"name"`
	Category  string `form:"category" binding:"omitempty,oneof=electronics clothing food books toys sports beauty home garden automotive"`
	MinPrice  *int   `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice  *int   `form:"maxPrice" binding:"omitempty,min=0"`
	SortBy    string `form:"sortBy,default=name" binding:"omitempty,oneof=name price stock category"`
	SortOrder string `form:"sortOrder,default=asc" binding:"omitempty,oneof=asc desc"`
}

type Pagination struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type PaginatedProducts struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
