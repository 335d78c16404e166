package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/config"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/domain/fiber/handler"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/logger"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/middleware"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/repository"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/scoring"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/service"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/usecase"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/util"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	screeningConfig := config.LoadScreeningConfig()

	zapLogger, err := logger.New(appConfig.Env == "production", appConfig.Env != "production")
	if err != nil {
		log.Fatal(err)
	}
	defer zapLogger.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code, message := util.HTTPError(err)
			return util.ErrorResponse(ctx, code, message)
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	scorer := buildScorer(zapLogger, screeningConfig)
	candidateRepo := buildRepository(zapLogger)
	extractor := buildExtractor(zapLogger, screeningConfig)
	notifier := buildNotifier(zapLogger)

	uc := usecase.NewScreeningUsecase(candidateRepo, extractor, notifier, scorer, zapLogger, screeningConfig.ExtractTimeout)
	h := handler.NewCandidateHandler(uc, screeningConfig.MaxUploadBytes)
	h.RegisterRoutes(app)

	zapLogger.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func buildScorer(zapLogger *zap.Logger, cfg *config.ScreeningConfig) *scoring.Engine {
	if cfg.KeywordsFile == "" {
		return scoring.NewEngine()
	}
	sets, err := scoring.LoadKeywordSets(cfg.KeywordsFile)
	if err != nil {
		zapLogger.Fatal("could not load keyword sets", zap.String("file", cfg.KeywordsFile), zap.Error(err))
	}
	zapLogger.Info("loaded keyword sets", zap.String("file", cfg.KeywordsFile), zap.Int("titles", len(sets)))
	return scoring.NewEngineWithSets(sets)
}

func buildRepository(zapLogger *zap.Logger) repository.CandidateRepository {
	dbConfig := config.LoadDBConfig()
	if dbConfig.Driver != "postgres" {
		zapLogger.Info("using in-memory candidate store; contents vanish on restart")
		return repository.NewMemoryCandidateRepository()
	}
	return repository.NewGormCandidateRepository(connectDB(zapLogger, dbConfig))
}

func buildExtractor(zapLogger *zap.Logger, cfg *config.ScreeningConfig) service.TextExtractorInterface {
	if cfg.Extractor == "file" {
		return service.NewFileExtractor()
	}
	zapLogger.Info("using mock text extractor; uploads are not actually parsed")
	return service.NewMockExtractor()
}

func buildNotifier(zapLogger *zap.Logger) service.NotifierInterface {
	notifierConfig := config.LoadNotifierConfig()
	if notifierConfig.Driver == "webhook" && notifierConfig.WebhookURL != "" {
		return service.NewWebhookNotifier(notifierConfig.WebhookURL)
	}
	if notifierConfig.Driver == "webhook" {
		zapLogger.Warn("NOTIFIER_WEBHOOK_URL not set, falling back to log notifier")
	}
	return service.NewLogNotifier(zapLogger)
}

func connectDB(zapLogger *zap.Logger, dbConfig *config.DBConfig) *gorm.DB {
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Candidate{}); err != nil {
		zapLogger.Fatal("migration failed", zap.Error(err))
	}
	return db
}
