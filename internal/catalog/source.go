package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vibe_shop_back_end/internal/config"
	"vibe_shop_back_end/internal/models"
)

// Strategy produit une liste de produits, ou nil si la source est
// indisponible (fichier absent, répertoire vide, JSON illisible).
type Strategy func() []models.Product

// Source évalue ses stratégies dans l'ordre et s'arrête à la première
// liste non vide. Aucun cache : le catalogue est re-dérivé à chaque
// appel, les ids ne valent que pour un instantané donné.
type Source struct {
	strategies []Strategy
}

func NewSource(strategies ...Strategy) *Source {
	return &Source{strategies: strategies}
}

// NewSourceFromEnv câble l'ordre de priorité standard :
// jeu statique → dérivation images → liste de secours embarquée.
func NewSourceFromEnv() *Source {
	arity := config.CatalogArity()
	return NewSource(
		SeedStrategy(config.SeedFile(), arity),
		ImageStrategy(
			filepath.Join(config.ImagesDir(), config.TeeImagesSubdir),
			filepath.Join(config.ImagesFallbackDir(), config.TeeImagesSubdir),
			arity,
			config.BasePrice(),
			config.PriceStep(),
		),
		FallbackStrategy(),
	)
}

// List renvoie le résultat de la première stratégie non vide, dans son
// ordre de construction. Idempotent et sans effet de bord.
func (s *Source) List() []models.Product {
	for _, strategy := range s.strategies {
		if products := strategy(); len(products) > 0 {
			return products
		}
	}
	return []models.Product{}
}

// Get résout une clé par id (comparaison textuelle) ou slug (insensible
// à la casse) sur le même instantané que List, donc toujours cohérent
// avec la liste qu'un client vient de récupérer.
func (s *Source) Get(key string) (models.Product, bool) {
	key = strings.ToLower(key)
	for _, p := range s.List() {
		if strconv.Itoa(p.ID) == key || (p.Slug != "" && strings.ToLower(p.Slug) == key) {
			return p, true
		}
	}
	return models.Product{}, false
}

// SeedStrategy lit le fichier statique de produits. Toute erreur de
// lecture ou de décodage rend la source indisponible, jamais fatale.
func SeedStrategy(path string, arity int) Strategy {
	return func() []models.Product {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var seeds []models.SeedProduct
		if err := json.Unmarshal(raw, &seeds); err != nil {
			return nil
		}
		return FromStaticSeed(seeds, arity)
	}
}

// ImageStrategy scanne le premier répertoire existant parmi (primaire,
// secours) et dérive le catalogue des fichiers trouvés.
func ImageStrategy(dir, fallbackDir string, arity int, basePrice, priceStep float64) Strategy {
	return func() []models.Product {
		scan := dir
		if _, err := os.Stat(scan); err != nil {
			scan = fallbackDir
		}
		entries, err := os.ReadDir(scan)
		if err != nil {
			return nil
		}
		var filenames []string
		for _, e := range entries {
			if !e.IsDir() {
				filenames = append(filenames, e.Name())
			}
		}
		return FromImageGroups(GroupImages(filenames), arity, basePrice, priceStep)
	}
}

// FallbackStrategy renvoie l'échantillon embarqué, dernier recours
// quand ni le jeu statique ni les images ne sont disponibles.
func FallbackStrategy() Strategy {
	return func() []models.Product {
		out := make([]models.Product, len(fallbackProducts))
		copy(out, fallbackProducts)
		return out
	}
}
