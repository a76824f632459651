package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gem-bid-tracker/internal/config"
	"gem-bid-tracker/internal/controller"
	"gem-bid-tracker/internal/gem"
	"gem-bid-tracker/internal/repo"
	"gem-bid-tracker/internal/service"
	"gem-bid-tracker/pkg/http_server"
	"gem-bid-tracker/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func migrateTables(driver database.Driver, sourceUrl string, databaseName string) {
	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	cfg := config.Load()

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: %w", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: cfg.DatabaseName})
	if err != nil {
		log.Fatal(err)
	}
	migrateTables(driver, "file://migrations", cfg.DatabaseName)

	categories, err := config.LoadCategories(cfg.CategoriesFile)
	if err != nil {
		log.Fatal("Error occurred while loading categories: %w", err)
	}
	log.Printf("Tracking %d categories", len(categories))

	gemClient := gem.NewClient(gem.DefaultConfig(cfg.GemBaseURL))

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(&service.Deps{
		Repos:      repositories,
		Fetcher:    gemClient,
		Documents:  gemClient,
		Categories: categories,
	})
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: %w", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: %w", err)
	} else {
		log.Println("Successful shutdown")
	}
}
