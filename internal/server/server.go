// Package server contains the HTTP surface for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/media"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config      *config.Config
	db          *gorm.DB
	prom        *fiberprometheus.FiberPrometheus
	userRepo    repository.UserRepository
	blogRepo    repository.BlogRepository
	tokens      *token.Manager
	uploader    media.Uploader
	userService *service.UserService
	blogService *service.BlogService
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	uploader, err := media.NewMinioUploader(cfg)
	if err != nil {
		return nil, fmt.Errorf("media host client failed: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := uploader.EnsureBucket(ctx); err != nil {
		middleware.Logger.Warn("media bucket check failed", slog.String("error", err.Error()))
	}

	return NewServerWithDeps(cfg, db, uploader), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the DB and media client.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, uploader media.Uploader) *Server {
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry())

	return &Server{
		config:      cfg,
		db:          db,
		prom:        fiberprometheus.New("inkwell-api"),
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		tokens:      tokens,
		uploader:    uploader,
		userService: service.NewUserService(userRepo, tokens, uploader, cfg.DefaultAvatarURL),
		blogService: service.NewBlogService(blogRepo, uploader),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.prom != nil {
		app.Use(s.prom.Middleware)
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/register", s.Register)
	users.Post("/login", s.Login)
	users.Get("/me", s.AuthRequired(), s.GetMe)
	users.Put("/me", s.AuthRequired(), s.UpdateMe)

	blogs := api.Group("/blogs")
	blogs.Get("/", s.GetBlogs)
	blogs.Post("/", s.AuthRequired(), s.CreateBlog)
	// Specific /user/me route must be defined before the generic /:id route.
	blogs.Get("/user/me", s.AuthRequired(), s.GetMyBlogs)
	blogs.Get("/:id", s.GetBlog)
	blogs.Put("/:id", s.AuthRequired(), s.UpdateBlog)
	blogs.Delete("/:id", s.AuthRequired(), s.DeleteBlog)
}

// Shutdown releases server-held resources after the HTTP listener stops.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the access-control gate. It verifies the bearer token,
// resolves the user ID to a live credential record and attaches the identity
// to the request before business logic runs.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unauthorized access"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unauthorized access"))
		}

		userID, err := s.tokens.Verify(parts[1])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token"))
		}

		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil {
			if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeNotFound {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("User not found"))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		user.Password = ""

		c.Locals("userID", user.ID)
		c.Locals("currentUser", user)
		// Thread the identity through the request context for logging and services.
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
