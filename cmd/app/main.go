package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"workshop/cmd"
	httpadapter "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/blob"
	"workshop/internal/adapters/out/extraction"
	"workshop/internal/adapters/out/postgres/assignmentrepo"
	"workshop/internal/adapters/out/postgres/historyrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/selectionrepo"
	"workshop/internal/adapters/out/postgres/userrepo"
	"workshop/internal/jobs"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStalledAfterHours = 48

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	migrateSchema(gormDB)

	extractionClient, err := extraction.NewClient(configs.ExtractionBaseURL, configs.ExtractionToken)
	if err != nil {
		log.Fatalf("Failed to create extraction client: %v", err)
	}

	attachments := mustCreateAttachmentStore(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, extractionClient, attachments)

	jobManager := jobs.NewJobManager(
		app.CreateGetStalledOrdersQueryHandler(),
		stalledAfter(configs),
		slog.Default(),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		ExtractionBaseURL:   goDotEnvVariable("EXTRACTION_BASE_URL"),
		ExtractionToken:     goDotEnvVariable("EXTRACTION_TOKEN"),
		S3Region:            goDotEnvVariable("S3_REGION"),
		S3Endpoint:          goDotEnvVariable("S3_ENDPOINT"),
		S3AccessKey:         goDotEnvVariable("S3_ACCESS_KEY"),
		S3SecretKey:         goDotEnvVariable("S3_SECRET_KEY"),
		S3Bucket:            goDotEnvVariable("S3_BUCKET"),
		AttachmentPublicURL: goDotEnvVariable("ATTACHMENT_PUBLIC_URL"),
		StalledAfterHours:   goDotEnvVariable("STALLED_AFTER_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&selectionrepo.SelectionDTO{},
		&historyrepo.EntryDTO{},
		&assignmentrepo.AssignmentDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func mustCreateAttachmentStore(configs cmd.Config) *blob.S3AttachmentStore {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(configs.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			configs.S3AccessKey,
			configs.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		log.Fatalf("Failed to load S3 configuration: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if configs.S3Endpoint != "" {
			o.BaseEndpoint = &configs.S3Endpoint
			o.UsePathStyle = true
		}
	})

	store, err := blob.NewS3AttachmentStore(client, configs.S3Bucket, configs.AttachmentPublicURL)
	if err != nil {
		log.Fatalf("Failed to create attachment store: %v", err)
	}
	return store
}

func stalledAfter(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.StalledAfterHours)
	if err != nil || hours <= 0 {
		hours = defaultStalledAfterHours
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSaveSelectionCommandHandler(),
		app.CreateRequestTransitionCommandHandler(),
		app.CreateAssignEmployeeCommandHandler(),
		app.CreateClassifyArtifactQueryHandler(),
		app.CreateGetSelectionQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
		app.CreateGetRelevantAttachmentQueryHandler(),
		app.CreateGetUsersByDepartmentQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
