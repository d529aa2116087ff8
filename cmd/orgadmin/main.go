package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"orgadmin/db/migrations"
	"orgadmin/internal/blob"
	"orgadmin/internal/config"
	"orgadmin/internal/observability/logging"
	"orgadmin/internal/observability/metrics"
	"orgadmin/internal/qr"
	"orgadmin/internal/routes"
	"orgadmin/internal/service/impl"
	"orgadmin/internal/store"
	httpx "orgadmin/internal/transport/http"
	"orgadmin/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "orgadmin",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL, DisableFK: true})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("db handle", "error", err)
		os.Exit(1)
	}
	if err := migrations.Up(sqlDB); err != nil {
		logger.Error("migrations", "error", err)
		os.Exit(1)
	}

	photos, err := blob.NewMinioStore(blob.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
		PublicURL: cfg.MinioPublicURL,
	})
	if err != nil {
		logger.Error("minio init", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := photos.EnsureBucket(ctx); err != nil {
		logger.Warn("photo bucket unavailable, uploads will fail until it exists", "error", err)
	}
	cancel()

	metrics.MustRegister("orgadmin")

	st := store.New(gdb)
	passwords := impl.NewPasswordServiceBcrypt()
	codes := qr.New()

	router := httpx.NewRouter(httpx.Deps{
		Devices:        impl.NewDeviceService(st, codes, photos),
		Users:          impl.NewUserService(st, passwords, photos),
		Institutions:   impl.NewInstitutionService(st),
		Offers:         impl.NewOfferRequestService(st),
		Catalog:        impl.NewCatalogService(st),
		Routes:         routes.Default(),
		SigningKey:     []byte(cfg.SigningKey),
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
