package main

import (
	"log"
	"net/http"

	_ "github.com/sanjay-2003-ss/Projecthub-backend/docs" // swagger docs

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/cache"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/config"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/db"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/handler"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/repository"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title ProjectHub API
// @version 1.0
// @description CRUD backend for the project showcase site (Mongo, Redis)
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	mongoDB := db.InitMongo(cfg)
	redisCache := cache.InitRedis(cfg)

	// repos
	projectRepo := repository.NewProjectRepository(mongoDB)
	userRepo := repository.NewUserRepository(mongoDB)
	commentRepo := repository.NewCommentRepository(mongoDB)

	// services
	projectSvc := service.NewProjectService(projectRepo)
	userSvc := service.NewUserService(userRepo, projectRepo, redisCache)
	commentSvc := service.NewCommentService(commentRepo)
	analyticsSvc := service.NewAnalyticsService(projectRepo, userRepo, commentRepo)

	// handlers
	projectH := handler.NewProjectHandler(projectSvc)
	userH := handler.NewUserHandler(userSvc, projectSvc)
	commentH := handler.NewCommentHandler(commentSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// token verification + local user resolution (get-or-create)
	verifyToken := handler.VerifyToken(cfg.AuthJWTSecret)
	resolveUser := handler.ResolveUser(userSvc)

	r.Get("/api/health", handler.Health)
	r.Get("/api/analytics", analyticsH.Get)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", projectH.List)

		r.Group(func(r chi.Router) {
			r.Use(verifyToken, resolveUser)
			r.Post("/", projectH.Create)
			r.Get("/user/my-projects", projectH.MyProjects)
			r.Put("/{id}", projectH.Update)
			r.Delete("/{id}", projectH.Delete)
			r.Post("/{id}/like", projectH.ToggleLike)
			r.Post("/{id}/rate", projectH.Rate)
		})

		r.Get("/{id}", projectH.Get)
	})

	r.Route("/api/comments", func(r chi.Router) {
		r.Get("/project/{projectId}", commentH.ListByProject)

		r.Group(func(r chi.Router) {
			r.Use(verifyToken, resolveUser)
			r.Post("/", commentH.Create)
			r.Delete("/{id}", commentH.Delete)
		})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/profile/{uid}", userH.GetProfile)

		r.Group(func(r chi.Router) {
			r.Use(verifyToken)
			// profile upsert handles its own get-or-create
			r.Post("/profile", userH.UpsertProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(verifyToken, resolveUser)
			r.Get("/me", userH.Me)
			r.Post("/favorites/{projectId}", userH.ToggleFavorite)
			r.Get("/favorites", userH.Favorites)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP listening on :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
