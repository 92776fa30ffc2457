package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/orange/internal/config"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client

	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	RequestService *services.RequestService
	MessageService *services.MessageService
	UploadService  *services.UploadService
	SeedService    *services.SeedService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.DBName)
	guard := services.NewAccessGuard(repo)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		Cloudinary:    cld,
		MongoDBClient: mongoDBClient,

		AuthService:    services.NewAuthService(repo, cfg.JWTSecret),
		ProfileService: services.NewProfileService(repo, repo),
		RequestService: services.NewRequestService(repo, repo, guard),
		MessageService: services.NewMessageService(repo, repo, repo, guard),
		UploadService:  services.NewUploadService(cld),
		SeedService:    services.NewSeedService(repo, repo, repo, repo),
	}
}
