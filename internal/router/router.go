package router

import (
	"net/http"

	"gleamgallery/internal/config"
	"gleamgallery/internal/handlers"
	"gleamgallery/internal/kv"
	"gleamgallery/internal/middleware"
	"gleamgallery/internal/services"
	"gleamgallery/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(
	cfg config.Config,
	products *store.ProductStore,
	categories *store.CategoryStore,
	users *store.UserStore,
	cartSlots kv.Store,
	generator services.DescriptionGenerator,
	logger zerolog.Logger,
) *mux.Router {
	productService := services.NewProductService(products, logger)
	categoryService := services.NewCategoryService(categories, logger)
	userService := services.NewUserService(users, logger)
	authService := services.NewAuthService(cfg.JWTSecret, logger)
	cartService := services.NewCartService(cartSlots, logger)
	descriptionService := services.NewDescriptionService(generator, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService, logger)
	cartHandler := handlers.NewCartHandler(cartService, productService, logger)
	generatorHandler := handlers.NewGeneratorHandler(descriptionService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api/v1").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(authService, logger))
	protectedAuth.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	// Public catalog reads. Filtering happens via ?category= and
	// ?material= query parameters.
	api.HandleFunc("/products", productHandler.GetProducts).Methods("GET")
	api.HandleFunc("/products/materials", productHandler.GetMaterials).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.GetCategories).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.GetCategory).Methods("GET")

	// Cart routes work for guests too: without a token the guest
	// bucket is used.
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.OptionalAuthentication(authService, logger))
	cart.HandleFunc("", cartHandler.GetCart).Methods("GET")
	cart.HandleFunc("", cartHandler.ClearCart).Methods("DELETE")
	cart.HandleFunc("/items", cartHandler.AddItem).Methods("POST")
	cart.HandleFunc("/items/{productId}", cartHandler.UpdateItem).Methods("PUT")
	cart.HandleFunc("/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Authentication(authService, logger))
	admin.Use(middleware.RequireRole("admin"))
	admin.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/categories", categoryHandler.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.DeleteCategory).Methods("DELETE")
	admin.HandleFunc("/generate-description", generatorHandler.GenerateDescription).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
