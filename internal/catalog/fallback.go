package catalog

import "vibe_shop_back_end/internal/models"

// fallbackProducts est l'échantillon minimal embarqué, anciennement
// data/products.json.
var fallbackProducts = []models.Product{
	{
		ID:          1,
		Slug:        "vibe-classic-tee",
		Name:        "VIBE Classic Tee",
		Price:       2990,
		Description: "Футболка премиум качества. 100% хлопок.",
		Image:       "/images/tees/images/1_1.jpg",
		Images: []string{
			"/images/tees/images/1_1.jpg",
			"/images/tees/images/1_2.jpg",
			"/images/tees/images/1_3.jpg",
			"/images/tees/images/1_4.jpg",
			"/images/tees/images/1_5.jpg",
		},
	},
	{
		ID:          2,
		Slug:        "vibe-street-tee",
		Name:        "VIBE Street Tee",
		Price:       3090,
		Description: "Футболка премиум качества. 100% хлопок.",
		Image:       "/images/tees/images/2_1.jpg",
		Images: []string{
			"/images/tees/images/2_1.jpg",
			"/images/tees/images/2_2.jpg",
			"/images/tees/images/2_3.jpg",
			"/images/tees/images/2_4.jpg",
			"/images/tees/images/2_5.jpg",
		},
	},
	{
		ID:          3,
		Slug:        "vibe-oversize-tee",
		Name:        "VIBE Oversize Tee",
		Price:       3190,
		Description: "Футболка премиум качества. 100% хлопок.",
		Image:       "/images/tees/images/3_1.jpg",
		Images: []string{
			"/images/tees/images/3_1.jpg",
			"/images/tees/images/3_2.jpg",
			"/images/tees/images/3_3.jpg",
			"/images/tees/images/3_4.jpg",
			"/images/tees/images/3_5.jpg",
		},
	},
}
