package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Sahil9505/JobFinder/internal/applications"
	"github.com/Sahil9505/JobFinder/internal/auth"
	"github.com/Sahil9505/JobFinder/internal/companies"
	"github.com/Sahil9505/JobFinder/internal/external"
	"github.com/Sahil9505/JobFinder/internal/feed"
	"github.com/Sahil9505/JobFinder/internal/jobs"
	"github.com/Sahil9505/JobFinder/pkg/database"
	"github.com/Sahil9505/JobFinder/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	srvCfg := utils.LoadServerConfig()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{srvCfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// uploaded resumes and profile images
	router.Static("/uploads", srvCfg.UploadDir)

	// live feed of external refreshes
	hub := feed.NewHub()
	router.GET("/ws", feed.WSHandler(hub))

	// external aggregation pipeline
	agg := external.NewAggregator(
		external.NewRemotiveSource(),
		external.NewArbeitnowSource(),
		external.NewJSearchSource(utils.RapidAPIKey()),
	)
	agg.OnRefresh = hub.BroadcastRefresh

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.WSClients,
			})
			return
		}

		cached, fetchedAt, expiresAt, ok := agg.CacheInfo()
		c.JSON(http.StatusOK, gin.H{
			"status":        "ready",
			"db":            "ok",
			"ws_clients":    stats.WSClients,
			"cached_jobs":   cached,
			"cache_fetched": fetchedAt,
			"cache_expires": expiresAt,
			"cache_warm":    ok,
		})
	})

	api := router.Group("/api")

	// internal jobs (public CRUD, as in the original)
	jobsRepo := jobs.NewRepo(db)
	if _, err := jobs.SeedIfEmpty(context.Background(), jobsRepo); err != nil {
		log.Printf("auto-seed failed: %v", err)
	}
	jobs.NewHandler(jobsRepo).RegisterRoutes(api.Group("/jobs"))

	// external jobs + companies aggregation
	external.NewHandler(agg).RegisterRoutes(api.Group("/external-jobs"))
	companies.NewHandler(jobsRepo, agg).RegisterRoutes(api.Group("/companies"))

	// auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	auth.NewHandler(authRepo, tokenSvc, srvCfg.UploadDir).RegisterRoutes(api.Group("/auth"))

	// applications (protected)
	protected := api.Group("")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))
	appsRepo := applications.NewRepo(db)
	applications.NewHandler(appsRepo, jobsRepo, srvCfg.UploadDir).RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
