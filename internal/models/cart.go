package models

// CartItem copie les champs d'affichage du produit au moment de l'ajout.
// Clé d'identité : (ID, Size) — Size vide compte comme "sans taille".
type CartItem struct {
	ID    int     `json:"id"`
	Size  string  `json:"size,omitempty"`
	Qty   int     `json:"qty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
