package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Jellal-17/puzzle-planner-api/api"
	api_i "github.com/Jellal-17/puzzle-planner-api/api/i"
	plannerapi "github.com/Jellal-17/puzzle-planner-api/api/planner"
	"github.com/Jellal-17/puzzle-planner-api/config"
	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/Jellal-17/puzzle-planner-api/infrastruture/plancache"
	"github.com/Jellal-17/puzzle-planner-api/infrastruture/repo"
	"github.com/Jellal-17/puzzle-planner-api/logger"
	"github.com/Jellal-17/puzzle-planner-api/service"
	"github.com/Jellal-17/puzzle-planner-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	puzzleRepo        i.PuzzleRepo
	planCache         i.PlanCache
	plannerService    i.Planner
	plannerController api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initPuzzleRepo(client *mongo.Client) {
	puzzleRepo = repo.NewPuzzleRepo(client, config.Envs.DBName, "puzzles")
	appLogger.Info("Puzzle repository initialized")
}

func initPlanCache() {
	var err error
	planCache, err = plancache.NewRedisPlanCache(redisClient, config.Envs.PlanCacheTTLSecs)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating plan cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Plan cache initialized")
}

func initPlannerService() {
	plannerLogger, err := logger.New("PLANNER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating planner logger: %v", err))
		os.Exit(1)
	}

	plannerService, err = service.NewPlannerService(puzzleRepo, planCache, plannerLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating planner service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Planner service initialized")
}

func initPlannerController() {
	controllerLogger, err := logger.New("API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating controller logger: %v", err))
		os.Exit(1)
	}

	plannerController, err = plannerapi.NewPlannerController(plannerService, controllerLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating planner controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Planner controller initialized")
}

// seedClassicPuzzle stores the bundled puzzle definition under a stable
// ID derived from its name, so restarts keep the same puzzle reachable.
func seedClassicPuzzle() {
	p, err := dmn.LoadPuzzleFile(config.Envs.PuzzleFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading default puzzle from %s: %v", config.Envs.PuzzleFile, err))
		os.Exit(1)
	}

	p.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(p.Name))
	if err := plannerService.CreatePuzzle(p); err != nil {
		appLogger.Error(fmt.Sprintf("Seeding default puzzle: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Default puzzle available: ID=%s Name=%q", p.ID, p.Name))
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{plannerController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initPuzzleRepo(mongoClient)
	initPlanCache()
	initPlannerService()
	initPlannerController()
	seedClassicPuzzle()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
