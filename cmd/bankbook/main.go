package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mfarghaly/bankbook/infra"
	"github.com/mfarghaly/bankbook/infra/initializer"
	infrarepo "github.com/mfarghaly/bankbook/infra/repository"
	"github.com/mfarghaly/bankbook/internal/cli"
	"github.com/mfarghaly/bankbook/pkg/config"
	"github.com/mfarghaly/bankbook/pkg/money"
	accountsvc "github.com/mfarghaly/bankbook/pkg/service/account"
	bankingsvc "github.com/mfarghaly/bankbook/pkg/service/banking"
)

func main() {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := initializer.SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DB.Path, "error", err)
		os.Exit(1)
	}

	minBalance, err := money.Parse(cfg.Bank.MinInitialBalance)
	if err != nil {
		logger.Error("invalid minimum initial balance", "value", cfg.Bank.MinInitialBalance, "error", err)
		os.Exit(1)
	}

	uow := infrarepo.NewUoW(db)
	accounts := accountsvc.New(uow, accountsvc.Config{
		MinInitialBalance: minBalance,
		BcryptCost:        cfg.Bank.BcryptCost,
	}, logger)
	banking := bankingsvc.New(uow, cfg.Bank.BcryptCost, logger)

	app := cli.New(accounts, banking, os.Stdin, os.Stdout, logger)
	if err := app.Run(context.Background()); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
