package catalog

import (
	"fmt"
	"strings"

	"vibe_shop_back_end/internal/models"
)

const teeDescription = "Футболка премиум качества. 100% хлопок."

// imagesPrefix est le préfixe web des photos dérivées du répertoire d'images.
const imagesPrefix = "/images/tees/images/"

// FromStaticSeed construit le catalogue depuis le jeu de données statique.
// Chaque entrée a au plus une URL de base, déclinée en arity variantes via
// un paramètre sig=1..N. Renvoie nil (source indisponible) si la liste est vide.
func FromStaticSeed(seeds []models.SeedProduct, arity int) []models.Product {
	if len(seeds) == 0 {
		return nil
	}

	products := make([]models.Product, 0, len(seeds))
	for i, seed := range seeds {
		base := seed.Image
		if len(seed.Images) > 0 {
			base = seed.Images[0]
		}

		join := "?"
		if strings.Contains(base, "?") {
			join = "&"
		}
		images := make([]string, arity)
		for k := 0; k < arity; k++ {
			images[k] = fmt.Sprintf("%s%ssig=%d", base, join, k+1)
		}

		id := i + 1
		if seed.ID != nil {
			id = *seed.ID
		}

		name := seed.Name
		if name == "" {
			name = seed.Title
		}
		if name == "" {
			name = fmt.Sprintf("VIBE Tee %d", i+1)
		}

		var price float64
		if seed.Price != nil {
			price = *seed.Price
		}

		products = append(products, models.Product{
			ID:          id,
			Slug:        seed.Slug,
			Name:        name,
			Price:       price,
			Description: seed.Description,
			Image:       images[0],
			Images:      images,
		})
	}
	return products
}

// FromImageGroups construit le catalogue depuis les groupes d'images.
// Les groupes incomplets sont écartés sans erreur ; les ids sont
// séquentiels à partir de 1 dans l'ordre des clés croissantes, et le
// prix tourne sur 10 paliers déterministes.
func FromImageGroups(groups []ImageGroup, arity int, basePrice, priceStep float64) []models.Product {
	var products []models.Product
	seq := 1
	for _, g := range groups {
		picked, ok := PickImages(g, arity)
		if !ok {
			continue
		}

		images := make([]string, len(picked))
		for i, name := range picked {
			images[i] = imagesPrefix + name
		}

		products = append(products, models.Product{
			ID:          seq,
			Slug:        "tee-" + g.Key,
			Name:        "Футболка " + g.Key,
			Price:       basePrice + float64((seq-1)%10)*priceStep,
			Description: teeDescription,
			Image:       images[0],
			Images:      images,
		})
		seq++
	}
	return products
}
