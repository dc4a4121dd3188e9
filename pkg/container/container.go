package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"caminodevida-backend/internal/config"
	"caminodevida-backend/internal/infrastructure/cache"
	"caminodevida-backend/internal/infrastructure/database"
	"caminodevida-backend/internal/infrastructure/storage"
	"caminodevida-backend/pkg/jwt"
	"caminodevida-backend/pkg/logger"

	"caminodevida-backend/internal/domains/chat"
	chatHandler "caminodevida-backend/internal/domains/chat/handler"
	chatService "caminodevida-backend/internal/domains/chat/service"
	"caminodevida-backend/internal/domains/church"
	churchHandler "caminodevida-backend/internal/domains/church/handler"
	churchRepo "caminodevida-backend/internal/domains/church/repository"
	churchService "caminodevida-backend/internal/domains/church/service"
	"caminodevida-backend/internal/domains/contact"
	contactHandler "caminodevida-backend/internal/domains/contact/handler"
	contactRepo "caminodevida-backend/internal/domains/contact/repository"
	contactService "caminodevida-backend/internal/domains/contact/service"
	"caminodevida-backend/internal/domains/content"
	contentHandler "caminodevida-backend/internal/domains/content/handler"
	"caminodevida-backend/internal/domains/event"
	eventHandler "caminodevida-backend/internal/domains/event/handler"
	eventRepo "caminodevida-backend/internal/domains/event/repository"
	eventService "caminodevida-backend/internal/domains/event/service"
	"caminodevida-backend/internal/domains/flags"
	flagsHandler "caminodevida-backend/internal/domains/flags/handler"
	flagsRepo "caminodevida-backend/internal/domains/flags/repository"
	"caminodevida-backend/internal/domains/region"
	regionHandler "caminodevida-backend/internal/domains/region/handler"
	regionRepo "caminodevida-backend/internal/domains/region/repository"
	regionService "caminodevida-backend/internal/domains/region/service"
	"caminodevida-backend/internal/domains/study"
	studyHandler "caminodevida-backend/internal/domains/study/handler"
	studyRepo "caminodevida-backend/internal/domains/study/repository"
	studyService "caminodevida-backend/internal/domains/study/service"
	"caminodevida-backend/internal/domains/user"
	userHandler "caminodevida-backend/internal/domains/user/handler"
	userRepo "caminodevida-backend/internal/domains/user/repository"
	userService "caminodevida-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *cache.RedisClient
	Storage     *storage.MinIOStorage
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	ContentResolver *content.Resolver
	FlagsCache      *flags.Cache

	RegionRepo  region.Repository
	FlagsRepo   flags.Repository
	ChurchRepo  church.Repository
	EventRepo   event.Repository
	ContactRepo contact.Repository
	StudyRepo   study.Repository
	UserRepo    user.Repository

	RegionService  region.Service
	ChurchService  church.Service
	EventService   event.Service
	ContactService contact.Service
	StudyService   study.Service
	ChatService    chat.Service
	UserService    user.Service

	ContentHandler *contentHandler.ContentHandler
	RegionHandler  *regionHandler.RegionHandler
	FlagsHandler   *flagsHandler.FlagsHandler
	ChurchHandler  *churchHandler.ChurchHandler
	EventHandler   *eventHandler.EventHandler
	ContactHandler *contactHandler.ContactHandler
	StudyHandler   *studyHandler.StudyHandler
	ChatHandler    *chatHandler.ChatHandler
	UserHandler    *userHandler.UserHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", map[string]interface{}{})
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.Redis = cache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Redis.Connect(context.Background()); err != nil {
		// Chat history and the job queue degrade without Redis, but the
		// site itself keeps serving.
		logger.Warn("Redis connection failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		c.Config.JWT.AccessTokenExpiry,
		c.Config.JWT.RefreshTokenExpiry,
	)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.RegionRepo = regionRepo.NewPostgresRepository(pool)
	c.FlagsRepo = flagsRepo.NewPostgresRepository(pool)
	c.ChurchRepo = churchRepo.NewPostgresRepository(pool)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.StudyRepo = studyRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ContentResolver = content.NewResolver(c.Config.Content.Dir, c.Config.Content.DefaultLocale)
	c.FlagsCache = flags.NewCache(c.FlagsRepo, c.Config.Flags.CacheTTLSeconds)

	c.RegionService = regionService.NewRegionService(c.RegionRepo, c.Config.Region)
	c.ChurchService = churchService.NewChurchService(c.ChurchRepo)
	c.EventService = eventService.NewEventService(c.EventRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.AsynqClient)
	c.StudyService = studyService.NewStudyService(c.StudyRepo)
	c.ChatService = chatService.NewChatService(c.Config.Chat, c.Redis.Client, c.FlagsCache)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentResolver)
	c.RegionHandler = regionHandler.NewRegionHandler(c.RegionService)
	c.FlagsHandler = flagsHandler.NewFlagsHandler(c.FlagsCache, c.FlagsRepo)
	c.ChurchHandler = churchHandler.NewChurchHandler(c.ChurchService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService, c.Storage)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.StudyHandler = studyHandler.NewStudyHandler(c.StudyService)
	c.ChatHandler = chatHandler.NewChatHandler(c.ChatService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases external connections. Called on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("Failed to close asynq client", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleaned up", map[string]interface{}{})
}
