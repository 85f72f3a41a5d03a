package models

// Product est reconstruit à chaque requête catalogue, jamais persisté.
// Invariant : Image == Images[0].
type Product struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}

// SeedProduct est une entrée du fichier statique products.json.
// Tous les champs sont optionnels, le builder applique les fallbacks.
type SeedProduct struct {
	ID          *int     `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
}
