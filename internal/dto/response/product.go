package response

import (
	"time"

	"gift-shop/internal/data/entity"
)

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`

	// Membership flags are only set for authenticated catalog reads.
	InCart     *bool `json:"in_cart,omitempty"`
	InWishlist *bool `json:"in_wishlist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}
