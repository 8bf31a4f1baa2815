package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"recipeshare/internal/handlers"
	"recipeshare/internal/logger"
	"recipeshare/internal/repository"
	"recipeshare/internal/server"
	"recipeshare/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	signingKey := viper.GetString("auth.signing_key")
	if signingKey == "" {
		log.Fatalw("auth.signing_key must be set; refusing to start with an empty token secret")
	}

	repos, db, err := buildRepository(log)
	if err != nil {
		log.Fatalw("failed to init storage", "err", err)
	}
	if db != nil {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}()
	}

	services := service.NewService(repos, service.Config{
		SigningKey: signingKey,
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
		BcryptCost: viper.GetInt("auth.bcrypt_cost"),
	}, log)

	if viper.GetBool("seed") {
		if err := service.SeedDemo(context.Background(), services, log); err != nil {
			log.Fatalw("failed to seed demo data", "err", err)
		}
	}

	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// buildRepository selects the storage backend. The sql handle is non-nil
// only for the sqlite driver.
func buildRepository(log *logger.Logger) (*repository.Repository, *sql.DB, error) {
	switch driver := viper.GetString("storage.driver"); driver {
	case "sqlite":
		dsn := viper.GetString("storage.dsn")
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		db, err := repository.InitDB(dsn)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("storage ready", "driver", driver, "dsn", dsn)
		return repository.NewSQLite(db), db, nil
	default:
		log.Infow("storage ready", "driver", "memory")
		return repository.NewMemory(), nil, nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks on termination signals and drains the server.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
