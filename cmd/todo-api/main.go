package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/appdotbuilder/simple-todo-app-99e5/configs"
	_ "github.com/appdotbuilder/simple-todo-app-99e5/docs"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/application/controller"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/application/middleware"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/gateway/db"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/usecase/health"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/usecase/todo"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/infra/database/gormdb"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/infra/database/sqldb"
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/log"
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/msg"
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/resource"
)

// @title todo-api
// @description Minimal todo-list RPC API
// @version 1.0
// @BasePath /todo
func main() {
	// Init config
	if err := resource.Init(configs.Env.PropertiesPath); err != nil {
		log.Fatal("failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesPath); err != nil {
		log.Fatal("failed to load messages", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init TodoGateway
	var todoGateway db.TodoGateway
	var healthGateway db.HealthDBGateway

	engine := resource.GetString("app.db.engine")
	switch engine {
	case "gorm":
		gormDB, err := gormdb.Connect()
		if err != nil {
			log.Fatal("failed to connect database", zap.Error(err))
		}
		defer func() {
			if err := gormdb.Close(gormDB); err != nil {
				log.Error("failed to close database", zap.Error(err))
			}
		}()
		todoGateway = db.NewGormTodoGateway(gormDB)
		healthGateway = db.NewGormHealthDBGateway(gormDB)
	case "sql":
		sqlDB, err := sqldb.Connect()
		if err != nil {
			log.Fatal("failed to connect database", zap.Error(err))
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				log.Error("failed to close database", zap.Error(err))
			}
		}()
		todoGateway = db.NewSQLTodoGateway(sqlDB)
		healthGateway = db.NewSQLHealthDBGateway(sqlDB)
	default:
		log.Fatalf("unsupported db engine: %q", engine)
	}
	log.Info(msg.GetMessage("db.connected", engine))

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(healthGateway)

	// Init Controller
	rpcController := controller.NewRPCController(api, todoUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	rpcController.InitRPCRoutes()
	healthController.InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Client UI
	e.Static("/", "web/static")

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.started", port))
	e.Logger.Fatal(e.Start(":" + port))
}
