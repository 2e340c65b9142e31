package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/princepatel/folio/adapters/contentstore"
	"github.com/princepatel/folio/adapters/event"
	"github.com/princepatel/folio/adapters/forms"
	httpAdapter "github.com/princepatel/folio/adapters/http"
	"github.com/princepatel/folio/adapters/persistence"
	aboutUC "github.com/princepatel/folio/internal/application/usecase/about"
	contactUC "github.com/princepatel/folio/internal/application/usecase/contact"
	documentUC "github.com/princepatel/folio/internal/application/usecase/document"
	feedUC "github.com/princepatel/folio/internal/application/usecase/feed"
	homeUC "github.com/princepatel/folio/internal/application/usecase/home"
	postUC "github.com/princepatel/folio/internal/application/usecase/post"
	projectUC "github.com/princepatel/folio/internal/application/usecase/project"
	serviceUC "github.com/princepatel/folio/internal/application/usecase/serviceitem"
	"github.com/princepatel/folio/internal/application/service"
	"github.com/princepatel/folio/internal/config"
	"github.com/princepatel/folio/pkg/logger"
	"github.com/princepatel/folio/pkg/tracing"
)

func main() {
	fmt.Println("Start Folio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional; the server runs without a collector.
	if cfg.Otel.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "folio-server")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tp.Shutdown(ctx)
		}()
	}

	// Content store client + repositories
	contentClient := contentstore.NewClient(cfg, appLogger)
	assetResolver := contentstore.NewAssetResolver(cfg.Content.ProjectID, cfg.Content.Dataset)

	projectRepo := contentstore.NewContentProjectRepo(contentClient, assetResolver, appLogger)
	postRepo := contentstore.NewContentPostRepo(contentClient, assetResolver, appLogger)
	serviceRepo := contentstore.NewContentServiceRepo(contentClient, appLogger)
	aboutRepo := contentstore.NewContentAboutRepo(contentClient, assetResolver, appLogger)
	contactRepo := contentstore.NewContentContactRepo(contentClient, appLogger)
	timelineRepo := contentstore.NewContentTimelineRepo(contentClient, appLogger)
	documentRepo := contentstore.NewContentDocumentRepo(contentClient, assetResolver, appLogger)

	// View events are optional; without brokers detail views just skip them.
	var viewPublisher service.ViewPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := event.NewKafkaViewPublisher(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaPublisher.Close()
		viewPublisher = kafkaPublisher
	}

	// Forms gateway
	formsGateway, err := forms.NewWeb3FormsGateway(cfg)
	if err != nil {
		appLogger.Fatal("cannot init forms gateway", err)
	}

	// Redis backs the contact rate limit; without it the relay is unguarded.
	var rateLimiter *persistence.RateLimiter
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		rateLimiter = persistence.NewRateLimiter(redisClient, 5, time.Minute)
	}

	// Use Cases
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	listFeaturedProjectsUseCase := projectUC.NewListFeaturedProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo, viewPublisher, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	listRecentPostsUseCase := postUC.NewListRecentPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo, viewPublisher, appLogger)
	listServicesUseCase := serviceUC.NewListServicesUseCase(serviceRepo)
	getServiceUseCase := serviceUC.NewGetServiceUseCase(serviceRepo)
	getAboutUseCase := aboutUC.NewGetAboutUseCase(aboutRepo, timelineRepo, appLogger)
	listTimelineUseCase := aboutUC.NewListTimelineUseCase(timelineRepo)
	getContactInfoUseCase := contactUC.NewGetContactInfoUseCase(contactRepo)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(formsGateway, appLogger)
	listDocumentsUseCase := documentUC.NewListDocumentsUseCase(documentRepo)
	homeUseCase := homeUC.NewHomeUseCase(projectRepo, postRepo, serviceRepo, appLogger)
	sitemapUseCase := feedUC.NewSitemapUseCase(projectRepo, postRepo, cfg.App.SiteURL, appLogger)
	rssUseCase := feedUC.NewRSSUseCase(postRepo, cfg.App.SiteURL, "Prince Patel - Blog", appLogger)

	// HTTP Handlers
	projectHandler := httpAdapter.NewProjectHandler(listProjectsUseCase, listFeaturedProjectsUseCase, getProjectUseCase)
	postHandler := httpAdapter.NewPostHandler(listPostsUseCase, listRecentPostsUseCase, getPostUseCase)
	serviceHandler := httpAdapter.NewServiceHandler(listServicesUseCase, getServiceUseCase)
	aboutHandler := httpAdapter.NewAboutHandler(getAboutUseCase, listTimelineUseCase)
	contactHandler := httpAdapter.NewContactHandler(getContactInfoUseCase, submitContactUseCase)
	documentHandler := httpAdapter.NewDocumentHandler(listDocumentsUseCase)
	homeHandler := httpAdapter.NewHomeHandler(homeUseCase)
	feedHandler := httpAdapter.NewFeedHandler(sitemapUseCase, rssUseCase)
	schemaHandler := httpAdapter.NewSchemaHandler()

	// Setup Gin router
	router := gin.Default()

	router.GET("/sitemap.xml", feedHandler.GetSitemap)
	router.GET("/rss.xml", feedHandler.GetRSS)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/home", homeHandler.GetHome)

		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/featured", projectHandler.ListFeaturedProjects)
		api.GET("/projects/:slug", projectHandler.GetProject)

		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/recent", postHandler.ListRecentPosts)
		api.GET("/posts/:slug", postHandler.GetPost)

		api.GET("/services", serviceHandler.ListServices)
		api.GET("/services/featured", serviceHandler.ListFeaturedServices)
		api.GET("/services/:slug", serviceHandler.GetService)

		api.GET("/about", aboutHandler.GetAbout)
		api.GET("/timeline", aboutHandler.ListTimeline)
		api.GET("/contact-info", contactHandler.GetContactInfo)
		api.GET("/documents", documentHandler.ListDocuments)
		api.GET("/schema", schemaHandler.GetSchema)

		if rateLimiter != nil {
			api.POST("/contact", httpAdapter.RateLimitMiddleware(rateLimiter, appLogger), contactHandler.SubmitContact)
		} else {
			api.POST("/contact", contactHandler.SubmitContact)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
