package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/google/uuid"
	"github.com/joshua-takyi/orange/internal/helpers"
	"github.com/joshua-takyi/orange/internal/models"
)

type UploadService struct {
	cld *cloudinary.Cloudinary
}

func NewUploadService(cld *cloudinary.Cloudinary) *UploadService {
	return &UploadService{cld: cld}
}

// Upload pushes a media file to the CDN on behalf of a user and returns the
// url/thumbnail/type triple for the caller to store in a media gallery.
func (us *UploadService) Upload(ctx context.Context, actor *models.User, file io.Reader) (*helpers.MediaUpload, error) {
	publicID := fmt.Sprintf("%s_%s", actor.ID, uuid.New().String())
	return helpers.UploadMedia(ctx, us.cld, file, publicID)
}
