package routes

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

func newCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}

	return cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName))
}

// RegisterMediaRoutes adds the admin image upload endpoint. Admins upload
// barber portraits and product photos here, then paste the returned URL into
// the create/update forms.
func RegisterMediaRoutes(rg *gin.RouterGroup) {
	rg.POST("/media/upload", UploadImage)
}

// UploadImage uploads one image to Cloudinary and returns its secure URL.
// The "folder" form field picks the destination ("barbers" or "products").
func UploadImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil { // 10MB
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil || header == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No image provided"})
		return
	}

	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image file"})
		return
	}

	folder := c.PostForm("folder")
	switch folder {
	case "barbers", "products":
	default:
		folder = "misc"
	}

	cld, err := newCloudinary()
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Image uploads not configured"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Could not read image"})
		return
	}
	defer file.Close()

	log.Printf("📸 Uploading %s (%d bytes) to folder: %s", header.Filename, header.Size, folder)

	ow := true
	uf := true
	up, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:         "mikes-cut/" + folder,
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &ow,
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Image upload failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image upload failed"})
		return
	}

	log.Printf("✅ Image uploaded: %s", up.SecureURL)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"url": up.SecureURL},
	})
}
