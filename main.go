package main

import (
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krishnateja08/FII-DII-Pulse/config"
	"github.com/krishnateja08/FII-DII-Pulse/database"
	"github.com/krishnateja08/FII-DII-Pulse/routes"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var db *mongo.Database
	if sysConfigs.Config.MongoUser != "" {
		_, db = database.InitMongoClient(sysConfigs)
	} else {
		log.Warn().Msg("Mongo not configured, runs will not be persisted")
	}

	if sysConfigs.Config.RedisUrl != "" {
		database.InitRedis(sysConfigs.Config.RedisUrl)
	}

	router := routes.SetupRouter(db, sysConfigs)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
