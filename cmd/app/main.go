package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agrikart/cmd"
	httpin "agrikart/internal/adapters/in/http"
	"agrikart/internal/adapters/out/postgres/cartrepo"
	"agrikart/internal/adapters/out/postgres/courierrepo"
	"agrikart/internal/adapters/out/postgres/orderrepo"
	"agrikart/internal/adapters/out/postgres/partyrepo"
	"agrikart/internal/adapters/out/postgres/producerepo"
	"agrikart/internal/jobs"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	gormDB := mustConnectDB(config)
	mustMigrateDB(gormDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(
		root.CreateAssignPendingOrdersCommandHandler(),
		root.JobLogger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&partyrepo.BuyerDTO{},
		&partyrepo.FarmerDTO{},
		&producerepo.ProduceDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateConfirmOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCreateCourierCommandHandler(),
		root.CreateAddCartItemCommandHandler(),
		root.CreateNearbyOrdersQueryHandler(),
		root.CreateAssignedOrdersQueryHandler(),
		root.SessionStore(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
