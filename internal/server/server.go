package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/itsfarrukhali/bathfitter-backend/internal/config"
	"github.com/itsfarrukhali/bathfitter-backend/internal/database"
	"github.com/itsfarrukhali/bathfitter-backend/internal/handlers"
	"github.com/itsfarrukhali/bathfitter-backend/internal/repositories"
	"github.com/itsfarrukhali/bathfitter-backend/internal/routes"
	"github.com/itsfarrukhali/bathfitter-backend/internal/services"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	// Test Redis connection and fail fast with a clear message
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", redisAddr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	uploadCfg, err := config.LoadUploadConfig()
	if err != nil {
		log.Fatalf("failed to load upload config: %v", err)
	}

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	projectTypeRepo := repositories.NewProjectTypeRepository(pool)
	showerTypeRepo := repositories.NewShowerTypeRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	subcategoryRepo := repositories.NewSubcategoryRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	variantRepo := repositories.NewVariantRepository(pool)
	templateRepo := repositories.NewTemplateRepository(pool)
	designRepo := repositories.NewDesignRepository(pool)
	redisRepo := repositories.NewRedisRepository(rdb)

	authService := services.NewAuthService(userRepo, redisRepo)
	catalogService := services.NewCatalogService(
		projectTypeRepo, showerTypeRepo, categoryRepo, subcategoryRepo, productRepo, variantRepo, redisRepo)
	categoryService := services.NewCategoryService(categoryRepo, subcategoryRepo, showerTypeRepo, redisRepo)
	productService := services.NewProductService(productRepo, variantRepo, subcategoryRepo, redisRepo)
	templateService := services.NewTemplateService(templateRepo, showerTypeRepo, categoryRepo, redisRepo)
	designService := services.NewDesignService(designRepo, showerTypeRepo, productRepo, variantRepo, redisRepo)
	uploadService := services.NewUploadService(uploadCfg)

	authHandler := handlers.NewAuthHandler(authService)
	showerTypeHandler := handlers.NewShowerTypeHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	designHandler := handlers.NewDesignHandler(designService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Initialize Gin router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization", handlers.DraftTokenHeader)
	router.Use(cors.New(corsConfig))

	routes.RegisterRoutes(router,
		authHandler, showerTypeHandler, categoryHandler, productHandler,
		templateHandler, designHandler, uploadHandler, userRepo)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
