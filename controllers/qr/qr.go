package qrcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/store"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleQRPosterUpload stores a printable table QR poster and returns
// its public URL. The code itself is generated by the backend's QR
// tooling; this only keeps the asset for reprints.
func HandleQRPosterUpload(posters store.QRStore, uploadDir string, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber := c.PostForm("table_number")
		if tableNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table_number is required"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		// Timestamp prefix keeps re-uploads for the same table from
		// overwriting each other.
		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		poster := &models.QRPoster{
			TableNumber: tableNumber,
			FileName:    filename,
			FileURL:     fmt.Sprintf("%s/qrfiles/%s", publicBaseURL, filename),
		}
		if err := posters.Save(poster); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record QR poster"})
			return
		}

		log.Printf("📁 QR poster uploaded: table %s -> %s", tableNumber, poster.FileURL)

		c.JSON(http.StatusOK, gin.H{
			"poster":  poster,
			"message": "File uploaded successfully",
		})
	}
}

// ListQRPosters returns all stored posters, newest first.
func ListQRPosters(posters store.QRStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := posters.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch QR posters"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}
