package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gestione-turni/backend/internal/config"
	"github.com/gestione-turni/backend/internal/repository"
	"github.com/gestione-turni/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operazione da eseguire (1: turni di default, 2: persone di prova)")
	flag.IntVar(&n, "n", 5, "numero di persone di prova da inserire")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("impossibile caricare la configurazione", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("impossibile creare il pool di connessioni", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open non apre davvero la connessione, serve un ping esplicito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("impossibile connettersi al database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("nessuna operazione specificata")
	case 1:
		created := seed.SeedShiftsIfMissing(repo)
		slog.Info("turni di default inseriti", slog.Int("count", created))
	case 2:
		if n <= 0 {
			slog.Error("numero di persone non valido")
			return
		}
		created := seed.SeedDemoPeople(repo, n)
		slog.Info("persone di prova inserite", slog.Int("count", created))
	default:
		slog.Error("operazione sconosciuta", slog.Int("op", op))
	}
}
