package helpers

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/crypto/bcrypt"
)

const UploadFolder = "orange_marketplace"

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	return hasLower && hasNumber
}

// MediaUpload is the triple returned by the upload collaborator; the core
// only ever stores it inside a profile's media gallery.
type MediaUpload struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Type         string `json:"type"`
}

// UploadMedia pushes a file to Cloudinary with auto resource-type detection
// and derives a 400x400 fill thumbnail. Video thumbnails are a jpg still
// taken two seconds in.
func UploadMedia(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, publicID string) (*MediaUpload, error) {
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType: "auto",
		Folder:       UploadFolder,
		PublicID:     publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	thumbnail, err := buildThumbnailURL(cld, result.PublicID, result.ResourceType)
	if err != nil {
		return nil, err
	}

	return &MediaUpload{
		URL:          result.SecureURL,
		ThumbnailURL: thumbnail,
		Type:         result.ResourceType,
	}, nil
}

func buildThumbnailURL(cld *cloudinary.Cloudinary, publicID, resourceType string) (string, error) {
	if resourceType == "video" {
		video, err := cld.Video(publicID + ".jpg")
		if err != nil {
			return "", fmt.Errorf("failed to build video thumbnail: %w", err)
		}
		video.Transformation = "so_2,w_400,h_400,c_fill"
		url, err := video.String()
		if err != nil {
			return "", fmt.Errorf("failed to build video thumbnail url: %w", err)
		}
		return url, nil
	}

	image, err := cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to build image thumbnail: %w", err)
	}
	image.Transformation = "w_400,h_400,c_fill"
	url, err := image.String()
	if err != nil {
		return "", fmt.Errorf("failed to build image thumbnail url: %w", err)
	}
	return url, nil
}
