package container

import (
	"context"
	"fmt"
	"time"

	"photoblog-backend/internal/config"
	"photoblog-backend/internal/core/authz"
	infraCache "photoblog-backend/internal/infrastructure/cache"
	"photoblog-backend/internal/infrastructure/database"
	"photoblog-backend/internal/infrastructure/queue"
	"photoblog-backend/internal/infrastructure/storage"
	"photoblog-backend/internal/shared/entity"
	"photoblog-backend/pkg/cache"
	"photoblog-backend/pkg/jwt"
	"photoblog-backend/pkg/logger"

	"photoblog-backend/internal/domains/category"
	categoryHandler "photoblog-backend/internal/domains/category/handler"
	categoryRepo "photoblog-backend/internal/domains/category/repository"
	categoryService "photoblog-backend/internal/domains/category/service"
	"photoblog-backend/internal/domains/comment"
	commentHandler "photoblog-backend/internal/domains/comment/handler"
	commentRepo "photoblog-backend/internal/domains/comment/repository"
	commentService "photoblog-backend/internal/domains/comment/service"
	"photoblog-backend/internal/domains/image"
	imageHandler "photoblog-backend/internal/domains/image/handler"
	imageRepo "photoblog-backend/internal/domains/image/repository"
	imageService "photoblog-backend/internal/domains/image/service"
	"photoblog-backend/internal/domains/post"
	postHandler "photoblog-backend/internal/domains/post/handler"
	postRepo "photoblog-backend/internal/domains/post/repository"
	postService "photoblog-backend/internal/domains/post/service"
	"photoblog-backend/internal/domains/tag"
	tagHandler "photoblog-backend/internal/domains/tag/handler"
	tagRepo "photoblog-backend/internal/domains/tag/repository"
	tagService "photoblog-backend/internal/domains/tag/service"
	"photoblog-backend/internal/domains/user"
	userHandler "photoblog-backend/internal/domains/user/handler"
	userRepo "photoblog-backend/internal/domains/user/repository"
	userService "photoblog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in layer order.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    storage.ObjectStorage
	JWTManager *jwt.Manager
	Enqueuer   queue.Enqueuer
	Authorizer *authz.Authorizer

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	UserRepo     user.Repository
	PostRepo     post.Repository
	ImageRepo    image.Repository
	CommentRepo  comment.Repository
	TagRepo      tag.Repository
	CategoryRepo category.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================

	UserService     user.Service
	PostService     post.Service
	ImageService    image.Service
	CommentService  comment.Service
	TagService      tag.Service
	CategoryService category.Service

	// ========================================
	// HANDLER LAYER
	// ========================================

	UserHandler     *userHandler.UserHandler
	PostHandler     *postHandler.PostHandler
	ImageHandler    *imageHandler.ImageHandler
	CommentHandler  *commentHandler.CommentHandler
	TagHandler      *tagHandler.TagHandler
	CategoryHandler *categoryHandler.CategoryHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, then infrastructure, then repositories, services,
// handlers. A failure at any step aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// ========================================
	// STEP 2: CONNECT DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	// ========================================
	// STEP 3: CONNECT CACHE
	// ========================================
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	// Redis is an optimization, not a dependency: a connection failure is
	// logged and the app runs with a cold cache.
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("redis connection failed, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: OBJECT STORAGE
	// ========================================
	objectStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = objectStorage
	logger.Info("object storage ready", map[string]interface{}{
		"bucket": cfg.MinIO.Bucket,
	})

	// ========================================
	// STEP 5: TOKENS AND TASK QUEUE
	// ========================================
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)
	c.Enqueuer = queue.NewEnqueuer(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	// ========================================
	// STEP 6: REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 7: AUTHORIZER
	// ========================================
	// One authorizer shared by every service; each voter owns one subject
	// type, so registration order does not matter.
	c.Authorizer = authz.NewAuthorizer(
		user.Voter{},
		user.ProfileVoter{},
		post.Voter{},
		image.Voter{},
		comment.Voter{},
		tag.Voter{},
		category.Voter{},
	)

	// ========================================
	// STEP 8: SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 9: HANDLERS
	// ========================================
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	// Users, posts and images are read-heavy and cache by ID. Comments,
	// tags and categories go straight to Postgres.
	c.UserRepo = userRepo.NewPostgresRepository(pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache)
	c.ImageRepo = imageRepo.NewPostgresRepository(pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	gen := entity.UUIDGenerator{}

	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.Authorizer,
		c.JWTManager,
		c.Enqueuer,
		gen,
		time.Now,
	)
	c.PostService = postService.NewPostService(c.PostRepo, c.Authorizer, gen, time.Now)
	c.ImageService = imageService.NewImageService(
		c.ImageRepo,
		c.Authorizer,
		storage.NewImageProcessor(),
		c.Storage,
		gen,
		time.Now,
	)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.Authorizer, gen, time.Now)

	// Tag membership counts span posts and images, hence the cross-domain
	// repository dependencies.
	c.TagService = tagService.NewTagService(c.TagRepo, c.PostRepo, c.ImageRepo, c.Authorizer, gen, time.Now)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Authorizer, gen, time.Now)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases external connections. Called from the graceful
// shutdown path.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database connections closed", nil)
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis", err)
			} else {
				logger.Info("redis connections closed", nil)
			}
		}
	}
}
