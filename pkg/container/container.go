package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"sportcenter-backend/internal/config"
	infraCache "sportcenter-backend/internal/infrastructure/cache"
	"sportcenter-backend/internal/infrastructure/database"
	"sportcenter-backend/internal/infrastructure/realtime"
	"sportcenter-backend/internal/infrastructure/storage"
	"sportcenter-backend/pkg/cache"
	"sportcenter-backend/pkg/jwt"
	"sportcenter-backend/pkg/lock"

	activityHandler "sportcenter-backend/internal/domains/activity/handler"
	activityRepo "sportcenter-backend/internal/domains/activity/repository"
	bookingHandler "sportcenter-backend/internal/domains/booking/handler"
	bookingRepo "sportcenter-backend/internal/domains/booking/repository"
	bookingService "sportcenter-backend/internal/domains/booking/service"
	branchHandler "sportcenter-backend/internal/domains/branch/handler"
	branchRepo "sportcenter-backend/internal/domains/branch/repository"
	branchService "sportcenter-backend/internal/domains/branch/service"
	fieldHandler "sportcenter-backend/internal/domains/field/handler"
	fieldRepo "sportcenter-backend/internal/domains/field/repository"
	fieldService "sportcenter-backend/internal/domains/field/service"
	notificationHandler "sportcenter-backend/internal/domains/notification/handler"
	notificationRepo "sportcenter-backend/internal/domains/notification/repository"
	paymentHandler "sportcenter-backend/internal/domains/payment/handler"
	paymentRepo "sportcenter-backend/internal/domains/payment/repository"
	paymentService "sportcenter-backend/internal/domains/payment/service"
	promotionHandler "sportcenter-backend/internal/domains/promotion/handler"
	promotionRepo "sportcenter-backend/internal/domains/promotion/repository"
	promotionService "sportcenter-backend/internal/domains/promotion/service"
	userHandler "sportcenter-backend/internal/domains/user/handler"
	userRepo "sportcenter-backend/internal/domains/user/repository"
	userService "sportcenter-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Lock        lock.KeyLock
	Broadcaster realtime.Broadcaster
	Storage     *storage.MinIOStorage

	UserRepo         userRepo.UserRepository
	BranchRepo       branchRepo.BranchRepository
	FieldRepo        fieldRepo.FieldRepository
	BookingRepo      bookingRepo.BookingRepository
	PaymentRepo      paymentRepo.PaymentRepository
	ReconcileStore   paymentRepo.ReconcileStore
	PromotionRepo    promotionRepo.PromotionRepository
	NotificationRepo notificationRepo.NotificationRepository
	ActivityRepo     activityRepo.ActivityRepository

	AuthService      userService.AuthService
	BranchService    branchService.BranchService
	FieldService     fieldService.FieldService
	BookingService   bookingService.BookingService
	PaymentService   paymentService.PaymentService
	WebhookService   paymentService.WebhookService
	PromotionService promotionService.PromotionService

	AuthHandler         *userHandler.AuthHandler
	BranchHandler       *branchHandler.BranchHandler
	FieldHandler        *fieldHandler.FieldHandler
	BookingHandler      *bookingHandler.BookingHandler
	PaymentHandler      *paymentHandler.PaymentHandler
	WebhookHandler      *paymentHandler.WebhookHandler
	PromotionHandler    *promotionHandler.PromotionHandler
	NotificationHandler *notificationHandler.NotificationHandler
	ActivityHandler     *activityHandler.ActivityHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the whole graph in dependency order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("DI container initialized")
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

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	lockTTL := time.Duration(c.Config.Job.LockHoldSeconds) * time.Second
	if err := redisCache.Connect(context.Background()); err != nil {
		// Redis being down degrades caching, fan-out and cross-instance
		// locking but the API can still serve: fall back to in-process
		// variants.
		log.Printf("WARNING: redis connection failed, using in-process fallbacks: %v", err)
		c.Lock = lock.NewMemoryLock(lockTTL)
		c.Broadcaster = realtime.NopBroadcaster{}
	} else {
		c.Lock = lock.NewRedisLock(redisCache.Client, c.Config.App.Name, lockTTL)
		c.Broadcaster = realtime.NewRedisBroadcaster(redisCache.Client)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret)

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		// Image uploads are a side feature; the booking and payment paths
		// must not depend on object storage being reachable at boot.
		log.Printf("WARNING: minio unavailable, field image uploads disabled: %v", err)
	} else {
		c.Storage = minioStorage
	}

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.BranchRepo = branchRepo.NewPostgresBranchRepository(pool)
	c.FieldRepo = fieldRepo.NewPostgresFieldRepository(pool)
	c.BookingRepo = bookingRepo.NewPostgresBookingRepository(pool)
	c.PaymentRepo = paymentRepo.NewPaymentRepository(pool)
	c.ReconcileStore = paymentRepo.NewReconcileStore(pool)
	c.PromotionRepo = promotionRepo.NewPostgresPromotionRepository(pool)
	c.NotificationRepo = notificationRepo.NewPostgresNotificationRepository(pool)
	c.ActivityRepo = activityRepo.NewPostgresActivityRepository(pool)
}

func (c *Container) initServices() {
	c.AuthService = userService.NewAuthService(c.UserRepo, c.JWTManager)
	c.BranchService = branchService.NewBranchService(c.BranchRepo)

	availabilityTTL := time.Duration(c.Config.Job.AvailabilityTTLSec) * time.Second
	c.FieldService = fieldService.NewFieldService(
		c.FieldRepo,
		c.Cache,
		c.Storage,
		c.Broadcaster,
		availabilityTTL,
	)

	// The field service doubles as the booking flow's price lookup.
	pricing := c.FieldService.(bookingService.FieldPricingProvider)
	c.BookingService = bookingService.NewBookingService(c.BookingRepo, pricing)

	c.PaymentService = paymentService.NewPaymentService(c.PaymentRepo)
	c.WebhookService = paymentService.NewWebhookService(
		c.PaymentRepo,
		c.ReconcileStore,
		c.Lock,
		c.Broadcaster,
		c.Config.Midtrans.ServerKey,
	)
	c.PromotionService = promotionService.NewPromotionService(c.PromotionRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.AuthService)
	c.BranchHandler = branchHandler.NewBranchHandler(c.BranchService)
	c.FieldHandler = fieldHandler.NewFieldHandler(c.FieldService)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService)
	c.WebhookHandler = paymentHandler.NewWebhookHandler(c.WebhookService)
	c.PromotionHandler = promotionHandler.NewPromotionHandler(c.PromotionService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationRepo)
	c.ActivityHandler = activityHandler.NewActivityHandler(c.ActivityRepo)
}

// Close releases infrastructure connections.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("failed to close redis: %v", err)
		}
	}
}
