package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/config"
)

// ServeImage — GET /images/*filepath
// Résolution sur deux racines : la racine primaire d'abord, puis la
// racine de secours. La première qui contient le fichier gagne.
func ServeImage(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")

	// Bloque toute évasion hors des racines d'images.
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chemin invalide"})
		return
	}

	for _, root := range []string{config.ImagesDir(), config.ImagesFallbackDir()} {
		path := filepath.Join(root, clean)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
