package models

// FavoriteItem — clé d'identité : ID seul. Size est une métadonnée
// modifiable, pas une partie de la clé.
type FavoriteItem struct {
	ID    int     `json:"id"`
	Size  string  `json:"size,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CompareItem — clé d'identité : ID seul.
type CompareItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
