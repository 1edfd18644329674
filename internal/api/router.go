package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/petsitting/pet-sitting-system/docs"
	"github.com/petsitting/pet-sitting-system/internal/api/handler"
	"github.com/petsitting/pet-sitting-system/internal/api/middleware"
	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
	"github.com/petsitting/pet-sitting-system/internal/core/service"
	mongodb "github.com/petsitting/pet-sitting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/petsitting/pet-sitting-system/internal/infrastructure/db/redis"
	"github.com/petsitting/pet-sitting-system/internal/pkg/config"
)

// RouterDeps carries everything the router needs to assemble the application.
type RouterDeps struct {
	DB     *mongo.Database
	Redis  *redis.Client // nil disables the directory cache and its readiness check
	Store  ports.Storage
	Clean  handler.CleanupDispatcher
	Config *config.Config
	Log    zerolog.Logger

	// StaticDir, when non-empty, is served at /uploads (disk storage backend).
	StaticDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.Config.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("petsitting"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(deps.DB)
	pets := mongodb.NewPetRepository(deps.DB)
	sitters := mongodb.NewSitterRepository(deps.DB)
	bookings := mongodb.NewBookingRepository(deps.DB)
	posts := mongodb.NewPostRepository(deps.DB)
	products := mongodb.NewProductRepository(deps.DB)
	orders := mongodb.NewOrderRepository(deps.DB)

	// --- Services ---
	var cache service.DirectoryCache
	if deps.Redis != nil {
		cache = redisdb.NewDirectoryCache(deps.Redis)
	}

	authService := service.NewAuthService(users, sitters, deps.Config.JWTSecret, 0, deps.Log)
	petService := service.NewPetService(pets, deps.Log)
	sitterService := service.NewSitterService(sitters, users, cache, deps.Log)
	bookingService := service.NewBookingService(bookings, sitters, pets, users, deps.Log)
	postService := service.NewPostService(posts, users, deps.Log)
	shopService := service.NewShopService(products, orders, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	petHandler := handler.NewPetHandler(petService)
	sitterHandler := handler.NewSitterHandler(sitterService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	postHandler := handler.NewPostHandler(postService, deps.Store, deps.Config.Upload.MaxBytes)
	uploadHandler := handler.NewUploadHandler(deps.Store, deps.Clean, deps.Config.Upload.MaxBytes)
	shopHandler := handler.NewShopHandler(shopService)

	auth := middleware.RequireAuth(deps.Config.JWTSecret)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.PUT("/auth/profile", authHandler.UpdateProfile, auth)
	api.GET("/user/profile", authHandler.Me, auth)

	// --- Pets ---
	api.POST("/pets", petHandler.Create, auth)
	api.GET("/pets/my", petHandler.ListMine, auth)
	api.PUT("/pets/:id", petHandler.Update, auth)
	api.DELETE("/pets/:id", petHandler.Delete, auth)

	// --- Sitters ---
	api.GET("/sitters", sitterHandler.List)
	api.GET("/sitters/my", sitterHandler.GetMine, auth)
	api.PUT("/sitters/my", sitterHandler.UpsertMine, auth)
	api.GET("/sitters/:id", sitterHandler.Get)

	// --- Bookings ---
	api.POST("/bookings", bookingHandler.Create, auth)
	api.GET("/bookings/my", bookingHandler.ListMine, auth)
	api.GET("/bookings/received", bookingHandler.ListReceived, auth)
	api.PATCH("/bookings/:id/accept", bookingHandler.Accept, auth)
	api.PATCH("/bookings/:id/reject", bookingHandler.Reject, auth)

	// --- Posts ---
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)
	api.POST("/posts", postHandler.Create, auth)
	api.PUT("/posts/:id", postHandler.Update, auth)
	api.DELETE("/posts/:id", postHandler.Delete, auth)
	api.POST("/posts/:id/like", postHandler.ToggleLike, auth)
	api.POST("/posts/:id/comments", postHandler.AddComment, auth)
	api.DELETE("/posts/:id/comments/:commentId", postHandler.DeleteComment, auth)

	// --- Upload ---
	api.POST("/upload", uploadHandler.Upload, auth)

	// --- Shop ---
	api.GET("/products", shopHandler.ListProducts)
	api.POST("/products", shopHandler.CreateProduct, auth, admin)
	api.PUT("/products/:id", shopHandler.UpdateProduct, auth, admin)
	api.DELETE("/products/:id", shopHandler.DeleteProduct, auth, admin)
	api.POST("/orders", shopHandler.PlaceOrder, auth)
	api.GET("/orders/my", shopHandler.ListMyOrders, auth)

	// --- Static uploads (disk backend only) ---
	if deps.StaticDir != "" {
		e.Static("/uploads", deps.StaticDir)
	}

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
