package catalog

import (
	"regexp"
	"sort"
	"strconv"
)

// Les photos produits arrivent nommées <clé>_<index>.jpg, la clé
// numérique étant commune à toutes les photos d'un même produit.
// Tout fichier hors motif est ignoré sans erreur.
var filenamePattern = regexp.MustCompile(`^(\d+)_(\d+)\.(?i:jpe?g)$`)

// Mots-clés (dont cyrillique) désignant une photo de guide des tailles.
var chartKeywords = regexp.MustCompile(`(?i)(chart|size|sizing|dimension|guide|table|таблиц|размер)`)

// chartIndex est l'index sentinelle réservé au guide des tailles.
const chartIndex = 6

type ImageFile struct {
	Filename string
	Index    int
}

type ImageGroup struct {
	Key   string
	Files []ImageFile
}

// GroupImages regroupe les fichiers par clé numérique, trie les groupes
// par clé croissante et chaque groupe par index croissant.
func GroupImages(filenames []string) []ImageGroup {
	byKey := make(map[string][]ImageFile)
	for _, name := range filenames {
		m := filenamePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		idx, _ := strconv.Atoi(m[2])
		byKey[m[1]] = append(byKey[m[1]], ImageFile{Filename: name, Index: idx})
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})

	groups := make([]ImageGroup, 0, len(keys))
	for _, k := range keys {
		files := byKey[k]
		sort.Slice(files, func(i, j int) bool { return files[i].Index < files[j].Index })
		groups = append(groups, ImageGroup{Key: k, Files: files})
	}
	return groups
}

func isChart(f ImageFile) bool {
	return f.Index == chartIndex || chartKeywords.MatchString(f.Filename)
}

// PickImages sélectionne les photos d'un groupe : le guide des tailles
// éventuel (première correspondance dans l'ordre des index) est mis de
// côté puis replacé en dernière position, les autres photos d'index ≥ 1
// remplissent les places restantes. Le groupe n'est retenu que s'il
// atteint exactement arity photos.
func PickImages(g ImageGroup, arity int) ([]string, bool) {
	var chart *ImageFile
	for i := range g.Files {
		if isChart(g.Files[i]) {
			chart = &g.Files[i]
			break
		}
	}

	take := arity
	if chart != nil {
		take = arity - 1
	}

	picked := make([]string, 0, arity)
	for _, f := range g.Files {
		if chart != nil && f == *chart {
			continue
		}
		if f.Index < 1 {
			continue
		}
		if len(picked) == take {
			break
		}
		picked = append(picked, f.Filename)
	}
	if chart != nil {
		picked = append(picked, chart.Filename)
	}

	if len(picked) != arity {
		return nil, false
	}
	return picked, true
}
