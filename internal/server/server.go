package server

import (
	"context"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/platefinder/backend/config"
	"github.com/platefinder/backend/internal/api"
	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/database"
	"github.com/platefinder/backend/internal/recommend"
	"github.com/platefinder/backend/internal/router"
	"github.com/platefinder/backend/internal/search"
	"github.com/platefinder/backend/internal/service"
)

// Server wires the retrieval engine, recommender and HTTP surface together.
type Server struct {
	http *http.Server
}

// New assembles a server from configuration. The database and Redis are both
// optional at startup: without a database the catalog is the built-in seed
// set, and without Redis the recommender state is process-local. Either way
// every endpoint stays up.
func New(cfg *config.Config) (*Server, error) {
	store, db := openCatalog(cfg)

	recStore := openRecommendStore(cfg)
	recommender := recommend.NewRecommender(recStore)
	if err := recommender.Load(context.Background()); err != nil {
		return nil, err
	}
	if err := indexCatalog(recommender, store); err != nil {
		return nil, err
	}

	engine := search.NewEngine(store, search.Options{
		PageSize:           cfg.PageSize,
		MaxRelaxationSteps: cfg.MaxRelaxationSteps,
		PoolSize:           cfg.CandidatePoolSize,
		StoreTimeout:       cfg.StoreTimeout,
		MinMatchFraction:   cfg.PantryMinMatch,
	})

	auth := service.NewAuthService(cfg.JWTSecret)

	engineRouter := router.SetupRouter(
		api.NewAuthHandler(auth),
		api.NewSearchHandler(engine),
		api.NewRecipeHandler(store),
		api.NewRecommendHandler(recommender, store, db),
		auth,
		cfg.AllowedOrigins,
	)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engineRouter,
		},
	}, nil
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// openCatalog connects to the configured database, falling back to the seed
// catalog when no database is configured or reachable.
func openCatalog(cfg *config.Config) (catalog.Store, *gorm.DB) {
	if cfg.DBHost == "" {
		log.Printf("No database configured, serving the built-in seed catalog")
		return catalog.NewMemoryStore(catalog.SeedRecipes()), nil
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Printf("Database unavailable (%v), serving the built-in seed catalog", err)
		return catalog.NewMemoryStore(catalog.SeedRecipes()), nil
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Printf("Migrations failed (%v), serving the built-in seed catalog", err)
		return catalog.NewMemoryStore(catalog.SeedRecipes()), nil
	}
	return catalog.NewGormStore(db), db
}

// openRecommendStore connects to Redis for recommender persistence, falling
// back to an in-memory table.
func openRecommendStore(cfg *config.Config) recommend.Store {
	if cfg.RedisHost == "" && cfg.RedisURL == "" {
		log.Printf("No Redis configured, recommender state is process-local")
		return recommend.NewMemoryStore()
	}

	client, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable (%v), recommender state is process-local", err)
		return recommend.NewMemoryStore()
	}
	return recommend.NewRedisStore(client)
}

// indexCatalog refreshes recommender feature vectors from the live catalog so
// similarity reflects recipes added since the last snapshot.
func indexCatalog(recommender *recommend.Recommender, store catalog.Store) error {
	recipes, err := store.Find(context.Background(), nil, 0, 0)
	if err != nil {
		log.Printf("Catalog indexing skipped: %v", err)
		return nil
	}
	return recommender.IndexCatalog(context.Background(), recipes)
}
