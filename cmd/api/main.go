package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/reportes-ventas/internal/application/auth"
	"github.com/jhoicas/reportes-ventas/internal/application/report"
	infrakafka "github.com/jhoicas/reportes-ventas/internal/infrastructure/kafka"
	infrapdf "github.com/jhoicas/reportes-ventas/internal/infrastructure/pdf"
	"github.com/jhoicas/reportes-ventas/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/reportes-ventas/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/reportes-ventas/internal/interfaces/http"
	"github.com/jhoicas/reportes-ventas/internal/jobs"
	"github.com/jhoicas/reportes-ventas/pkg/clock"
	"github.com/jhoicas/reportes-ventas/pkg/config"
	"github.com/jhoicas/reportes-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Columna de cantidad entregada según la versión del esquema del ERP
	deliveredCol, err := postgres.ResolveDeliveredColumn(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("resolver columna de cantidad entregada en stock_moves")
	}
	log.Info().Str("column", deliveredCol).Msg("columna de cantidad entregada")

	loc, err := cfg.Report.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del reporte")
	}
	lang, err := language.Parse(cfg.Report.Lang)
	if err != nil {
		log.Warn().Err(err).Str("lang", cfg.Report.Lang).Msg("idioma de reporte inválido, se usa inglés")
		lang = language.English
	}

	userRepo := postgres.NewUserRepository(pool)
	requestRepo := postgres.NewReportRequestRepository(pool)
	orderRepo, err := postgres.NewSaleOrderRepository(pool, deliveredCol)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de pedidos")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	deps := report.WizardDeps{
		Requests: requestRepo,
		Orders:   orderRepo,
		Identity: authUC,
		Clock:    clock.New(loc),
		XLSX:     infraxlsx.NewExcelizeRenderer(),
		PDF:      infrapdf.NewMarotoReportRenderer(lang),
		Log:      log,
	}
	if cfg.Kafka.Enabled() {
		producer := infrakafka.NewProducer(cfg.Kafka)
		defer producer.Close()
		deps.Publisher = producer
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("eventos de reporte en Kafka")
	}
	wizardUC := report.NewWizardUseCase(deps)

	vacuumJob := jobs.NewReportVacuumJob(wizardUC, cfg.Report.VacuumSchedule, cfg.Report.MaxAge, log)
	if err := vacuumJob.Start(); err != nil {
		log.Fatal().Err(err).Msg("tarea de purga")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reportes de ventas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ReportUC:  wizardUC,
		JWTSecret: cfg.JWT.Secret,
		Health: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(pingCtx)
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	vacuumJob.Stop()

	log.Info().Msg("aplicación detenida")
}
