package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"trial-hand/config"
	"trial-hand/models"
	"trial-hand/services"
	"trial-hand/sources"
	"trial-hand/sources/ctis"
	"trial-hand/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	studiesImportedCounter prometheus.Counter
	importRunsCounter      prometheus.Counter
)

func init() {
	studiesImportedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studies_imported_total",
			Help: "Total number of studies written by import runs.",
		},
	)
	importRunsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "import_runs_total",
			Help: "Total number of completed import runs.",
		},
	)
	prometheus.MustRegister(studiesImportedCounter, importRunsCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to study database.")

	// Auto-Migration
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(
		&models.Study{},
		&models.Identifier{},
		&models.DataObject{},
		&models.ObjectDate{},
		&models.ObjectInstance{},
		&models.CountryStatus{},
		&models.Condition{},
		&models.Topic{},
		&models.Feature{},
		&models.Organisation{},
	)

	// Setup Sources
	enabledSourceNames := strings.Split(cfg.EnabledSources, ",")
	var enabledSources []sources.Source
	for _, name := range enabledSourceNames {
		switch strings.TrimSpace(name) {
		case "ctis":
			enabledSources = append(enabledSources, ctis.New(logging, cfg.DebugMaxRows))
		default:
			logging.Warn("Unknown source in config", zap.String("source_name", name))
		}
	}
	if len(enabledSources) == 0 {
		logging.Fatal("No valid sources enabled. Check ENABLED_SOURCES in .env")
	}
	logging.Info("Active sources loaded", zap.Strings("sources", enabledSourceNames))

	// Setup Services
	s3Client, err := storage.NewS3Client(context.Background(), cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}
	sink := storage.NewGormSink(db)
	importService := services.NewImportService(cfg, sink, s3Client, logging, enabledSources)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Routes
	setupStudyRoutes(router, db, logging)
	setupImportRoutes(router, importService)

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled import job...")
		count, err := importService.RunAll(context.Background())
		if err != nil {
			logging.Error("Cron job failed", zap.Error(err))
		} else {
			logging.Info("Cron job completed", zap.Int("studies", count))
			studiesImportedCounter.Add(float64(count))
			importRunsCounter.Inc()
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func setupStudyRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/studies")

	// Einfacher GET-Endpunkt, um alle Studien abzurufen (ohne Filter)
	rg.GET("/", func(c *gin.Context) {
		var studies []models.Study
		if err := db.Find(&studies).Error; err != nil {
			log.Error("Database query for all studies failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, studies)
	})

	// Body-gesteuerter Endpunkt für komplexe Abfragen
	rg.POST("/query", func(c *gin.Context) {
		type StudyQuery struct {
			SID     string `json:"sid"`
			Status  string `json:"status"`
			Country string `json:"country"`
			Phase   string `json:"phase"`
			Limit   int    `json:"limit"`
		}

		var req StudyQuery
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		query := db.Model(&models.Study{})

		if req.SID != "" {
			query = query.Where("sid = ?", req.SID)
		}
		if req.Status != "" {
			query = query.Where("status = ?", req.Status)
		}
		if req.Country != "" {
			query = query.Where(
				"id IN (?)",
				db.Model(&models.CountryStatus{}).Select("study_id").Where("country = ?", req.Country),
			)
		}
		if req.Phase != "" {
			query = query.Where(
				"id IN (?)",
				db.Model(&models.Feature{}).Select("study_id").Where("type = ? AND value = ?", "phase", req.Phase),
			)
		}
		if req.Limit > 0 {
			query = query.Limit(req.Limit)
		}

		var studies []models.Study
		if err := query.Order("created_at desc").Find(&studies).Error; err != nil {
			log.Error("Database query for studies failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		c.JSON(http.StatusOK, studies)
	})

	// GET-Endpunkt für eine Studie samt aller abhängigen Entitäten
	rg.GET("/:sid", func(c *gin.Context) {
		sid := c.Param("sid")

		var study models.Study
		err := db.
			Preload("Identifiers").
			Preload("DataObjects").
			Preload("DataObjects.Dates").
			Preload("DataObjects.Instances").
			Preload("Countries").
			Preload("Conditions").
			Preload("Topics").
			Preload("Features").
			Preload("Organisations").
			Where("sid = ?", sid).
			First(&study).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "study not found"})
				return
			}
			log.Error("DB error fetching study", zap.String("sid", sid), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		c.JSON(http.StatusOK, study)
	})
}

func setupImportRoutes(router *gin.Engine, importService *services.ImportService) {
	rg := router.Group("/import")
	rg.POST("/run", func(c *gin.Context) {
		go func() {
			count, err := importService.RunAll(context.Background())
			if err != nil {
				importService.Logger.Error("Async import failed", zap.Error(err))
			} else {
				studiesImportedCounter.Add(float64(count))
				importRunsCounter.Inc()
				importService.Logger.Info("Async import completed", zap.Int("studies", count))
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"message": "Import for all sources triggered."})
	})
}
