// Package filemgr is the image store: it persists uploaded images under
// the static directory and deletes them by URL. Content handlers store the
// returned URL verbatim in the entity's image list.
package filemgr

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"planetholiday/models"
	"planetholiday/utils"
)

const uploadDir = "./static/uploads"
const urlPrefix = "/static/uploads/"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveImage decodes, caps at 1920x1080, writes a JPEG plus a 300px-wide
// thumbnail and returns the public URL.
func SaveImage(file multipart.File) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > 1920 || img.Bounds().Dy() > 1080 {
		img = imaging.Fit(img, 1920, 1080, imaging.Lanczos)
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"
	thumbDir := filepath.Join(uploadDir, "thumb")

	if err := ensureDirExists(uploadDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(uploadDir, fileName), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return urlPrefix + fileName, nil
}

// DeleteImage removes the stored file (and its thumbnail) for a URL
// produced by SaveImage. Foreign URLs are skipped.
func DeleteImage(url string) error {
	if !strings.HasPrefix(url, urlPrefix) {
		return nil
	}
	fileName := filepath.Base(url)

	if err := os.Remove(filepath.Join(uploadDir, fileName)); err != nil && !os.IsNotExist(err) {
		return &models.ExternalServiceError{Service: "image store", Err: err}
	}
	if err := os.Remove(filepath.Join(uploadDir, "thumb", fileName)); err != nil && !os.IsNotExist(err) {
		log.Println("thumbnail cleanup:", err)
	}
	return nil
}

// CleanupImages deletes every image URL best-effort; individual failures
// are logged and never abort the caller.
func CleanupImages(images []models.Image) {
	for _, img := range images {
		if err := DeleteImage(img.URL); err != nil {
			log.Println("Error deleting image:", err)
		}
	}
}

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

// UploadImage handles an admin multipart upload and returns the stored URL.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	if !supportedImageTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF, BMP, TIFF.")
		return
	}

	url, err := SaveImage(file)
	if err != nil {
		log.Println("image upload:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "url": url})
}
