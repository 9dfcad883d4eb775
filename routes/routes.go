package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krishnateja08/FII-DII-Pulse/client"
	"github.com/krishnateja08/FII-DII-Pulse/config"
	"github.com/krishnateja08/FII-DII-Pulse/controller"
	"github.com/krishnateja08/FII-DII-Pulse/middleware"
	"github.com/krishnateja08/FII-DII-Pulse/repository"
	"github.com/krishnateja08/FII-DII-Pulse/service"
	"github.com/krishnateja08/FII-DII-Pulse/util"
)

// SetupRouter wires clients, services and controllers. db may be nil when
// Mongo is not configured; the pipeline then runs without persistence.
func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.RateLimiter(cfg))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	nseClient := client.NewNseClient()
	munafaClient := client.NewMunafaClient()
	yahooClient := client.NewYahooClient()

	// --- 2. Repositories ---
	var snapshotRepo *repository.SnapshotRepository
	if db != nil {
		snapshotRepo = repository.NewSnapshotRepository(db)
	}

	// --- 3. Services (Dependency Injection) ---
	calendar := util.NewTradingCalendar(cfg.Market)
	classifier := service.NewClassifier(cfg.Market)
	dealSvc := service.NewDealService(nseClient, calendar)

	chain := service.NewStockSourceChain(
		service.NewNseDealSource(dealSvc, classifier),
		service.NewMunafaSource(munafaClient),
		service.NewStaticSource(cfg.Market),
	)

	technicalSvc := service.NewTechnicalService()
	marketSvc := service.NewMarketService(yahooClient)
	dashboardSvc := service.NewDashboardService(
		chain, technicalSvc, marketSvc, yahooClient,
		snapshotRepo, cfg.Config.FetchWorkers,
	)

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewDashboardController(dashboardSvc).RegisterRoutes(api)
		controller.NewMarketController(marketSvc, calendar).RegisterRoutes(api)
	}

	return r
}
