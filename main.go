package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/b3watch/stock-alert/internal/repo"
	"github.com/b3watch/stock-alert/internal/schedule"
	"github.com/b3watch/stock-alert/internal/service/market"
	"github.com/b3watch/stock-alert/internal/service/monitor"
	"github.com/b3watch/stock-alert/ioc"
	"github.com/b3watch/stock-alert/pkg/clockx"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() (symbol, sell, buy string) {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	symbolFlag := pflag.String("symbol", "", "ticker to monitor, e.g. PETR4")
	sellFlag := pflag.String("sell", "", "sell threshold price")
	buyFlag := pflag.String("buy", "", "buy threshold price")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}

	return *symbolFlag, *sellFlag, *buyFlag
}

func buildTarget(symbol, sell, buy string) (monitor.Target, error) {
	if symbol == "" {
		return monitor.Target{}, fmt.Errorf("usage: stock-alert --symbol PETR4 --sell 22.67 --buy 22.59")
	}
	sellPrice, err := decimal.NewFromString(sell)
	if err != nil {
		return monitor.Target{}, fmt.Errorf("invalid sell price %q: %w", sell, err)
	}
	buyPrice, err := decimal.NewFromString(buy)
	if err != nil {
		return monitor.Target{}, fmt.Errorf("invalid buy price %q: %w", buy, err)
	}
	return monitor.NewTarget(symbol, sellPrice, buyPrice)
}

func main() {
	symbol, sell, buy := initViper()

	target, err := buildTarget(symbol, sell, buy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	alertRepo := repo.NewAlertRepo(db)

	quoteSvc := ioc.InitQuoteService()
	notifiers := ioc.InitNotifiers()
	statusSvc := market.NewStatusService(viper.GetBool("monitor.ignore_market_hours"))
	ledger := monitor.NewNotificationLedger(clockx.System())

	stockMonitor := monitor.NewStockMonitor(quoteSvc, statusSvc, ledger,
		monitor.WithNotifiers(notifiers...),
		monitor.WithAlertRepo(alertRepo),
	)

	interval := viper.GetDuration("monitor.interval")
	if interval <= 0 {
		interval = time.Minute
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("monitoring started", "symbol", target.Symbol,
		"sell", target.SellPrice, "buy", target.BuyPrice, "interval", interval)

	task := monitor.NewMonitorTask(stockMonitor, target)
	schedule.NewIntervalRunner(task, interval).Start(ctx)
}
