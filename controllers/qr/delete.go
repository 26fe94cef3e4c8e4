package qrcontroller

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/store"
)

// DeleteQRPosterHandler retires a poster when a table is renumbered or
// its QR link changes. The stored file goes first; a file already gone
// from disk is fine, the record is removed either way.
func DeleteQRPosterHandler(posters store.QRStore, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid poster id"})
			return
		}

		poster, err := posters.Find(uint(id))
		if errors.Is(err, store.ErrPosterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "QR poster not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load QR poster"})
			return
		}

		filePath := filepath.Join(uploadDir, poster.FileName)
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove poster file"})
			return
		}

		if err := posters.Delete(poster.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete QR poster record"})
			return
		}

		log.Printf("🗑️ QR poster deleted: table %s (%s)", poster.TableNumber, poster.FileName)
		c.JSON(http.StatusOK, gin.H{"message": "QR poster deleted successfully"})
	}
}
