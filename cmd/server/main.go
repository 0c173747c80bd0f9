package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tars-society/tars-club-api/api/swagger"
	"github.com/tars-society/tars-club-api/internal/handler"
	"github.com/tars-society/tars-club-api/internal/lifecycle"
	"github.com/tars-society/tars-club-api/internal/middleware"
	"github.com/tars-society/tars-club-api/internal/repository"
	"github.com/tars-society/tars-club-api/internal/service"
	"github.com/tars-society/tars-club-api/pkg/cache"
	"github.com/tars-society/tars-club-api/pkg/config"
	"github.com/tars-society/tars-club-api/pkg/database"
	"github.com/tars-society/tars-club-api/pkg/logger"
	"github.com/tars-society/tars-club-api/pkg/media"
	corsmiddleware "github.com/tars-society/tars-club-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tars-society/tars-club-api/pkg/middleware/requestid"
)

// @title TARS Club API
// @version 1.0.0
// @description Backend for the TARS club website
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Time.Zone)
	if err != nil {
		logr.Sugar().Fatalw("invalid timezone", "zone", cfg.Time.Zone, "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Home.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, home cache disabled", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close()
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Home.CacheTTL, logr, cacheRepo != nil)

	resolver := media.NewResolver(cfg.Media)
	engine := lifecycle.NewEngine(loc)

	settingsRepo := repository.NewSiteSettingsRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	socialLinkRepo := repository.NewSocialLinkRepository(db)
	classRepo := repository.NewClassRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	userRepo := repository.NewUserRepository(db)

	settingsSvc := service.NewSiteSettingsService(settingsRepo, cacheSvc, resolver, nil, logr)
	sponsorSvc := service.NewSponsorService(sponsorRepo, cacheSvc, resolver, nil, logr)
	socialLinkSvc := service.NewSocialLinkService(socialLinkRepo, cacheSvc, nil, logr)
	classSvc := service.NewClassService(classRepo, engine, resolver, nil, logr)
	resourceSvc := service.NewResourceService(resourceRepo, resolver, nil, logr)
	homeSvc := service.NewHomeService(settingsRepo, sponsorRepo, socialLinkRepo, cacheSvc, resolver, logr)
	exportSvc := service.NewExportService(sponsorRepo, resourceRepo, logr)
	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "tars-club-api",
		Audience:           []string{"tars-club"},
	})

	metaHandler := handler.NewMetaHandler()
	healthHandler := handler.NewHealthHandler(db)
	homeHandler := handler.NewHomeHandler(homeSvc)
	settingsHandler := handler.NewSiteSettingsHandler(settingsSvc)
	sponsorHandler := handler.NewSponsorHandler(sponsorSvc)
	socialLinkHandler := handler.NewSocialLinkHandler(socialLinkSvc)
	classHandler := handler.NewClassHandler(classSvc)
	resourceHandler := handler.NewResourceHandler(resourceSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", metaHandler.Root)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group("/api")
	{
		api.GET("/health/", healthHandler.Check)
		api.GET("/info/", metaHandler.Info)
		api.GET("/home/", homeHandler.Get)

		api.GET("/site-settings/", settingsHandler.List)
		api.GET("/site-settings/:id/", settingsHandler.Get)
		api.GET("/sponsors/", sponsorHandler.List)
		api.GET("/sponsors/:id/", sponsorHandler.Get)
		api.GET("/social-links/", socialLinkHandler.List)
		api.GET("/social-links/:id/", socialLinkHandler.Get)
		api.GET("/classes/", classHandler.List)
		api.GET("/classes/:id/", classHandler.Get)
		api.GET("/resources/", resourceHandler.List)
		api.GET("/resources/:id/", resourceHandler.Get)

		auth := api.Group("/auth")
		{
			auth.POST("/register/", authHandler.Register)
			auth.POST("/login/", authHandler.Login)
			auth.POST("/token/refresh/", authHandler.Refresh)

			protected := auth.Group("", middleware.JWT(authSvc))
			{
				protected.POST("/logout/", authHandler.Logout)
				protected.GET("/profile/", authHandler.Profile)
				protected.PUT("/profile/update/", authHandler.UpdateProfile)
			}
		}

		admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireAdmin())
		{
			admin.POST("/site-settings/", settingsHandler.Create)
			admin.PUT("/site-settings/:id/", settingsHandler.Update)

			admin.POST("/sponsors/", sponsorHandler.Create)
			admin.PUT("/sponsors/:id/", sponsorHandler.Update)
			admin.DELETE("/sponsors/:id/", sponsorHandler.Delete)

			admin.POST("/social-links/", socialLinkHandler.Create)
			admin.PUT("/social-links/:id/", socialLinkHandler.Update)
			admin.DELETE("/social-links/:id/", socialLinkHandler.Delete)

			admin.POST("/classes/", classHandler.Create)
			admin.PUT("/classes/:id/", classHandler.Update)
			admin.DELETE("/classes/:id/", classHandler.Delete)

			admin.POST("/resources/", resourceHandler.Create)
			admin.PUT("/resources/:id/", resourceHandler.Update)
			admin.DELETE("/resources/:id/", resourceHandler.Delete)

			admin.GET("/export/sponsors", exportHandler.Sponsors)
			admin.GET("/export/resources", exportHandler.Resources)
		}
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
