package binance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/b3watch/stock-alert/internal/service/quote"
	"github.com/shopspring/decimal"
)

var _ quote.Service = (*Service)(nil)

// Service resolves quotes through the Binance spot API, for targets whose
// symbol is a trading pair like BTCUSDT. The SDK client already handles
// retries for transient failures.
type Service struct {
	cli *binance.Client
}

func NewService(cli *binance.Client) *Service {
	return &Service{cli: cli}
}

func (s *Service) GetPrice(ctx context.Context, symbol string) (quote.Quote, bool, error) {
	prices, err := s.cli.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return quote.Quote{}, false, fmt.Errorf("binance list prices %s: %w", symbol, err)
	}
	if len(prices) == 0 {
		slog.Warn("no price in binance response", "symbol", symbol)
		return quote.Quote{}, false, nil
	}

	price, err := decimal.NewFromString(prices[0].Price)
	if err != nil {
		return quote.Quote{}, false, fmt.Errorf("binance price %q for %s: %w", prices[0].Price, symbol, err)
	}
	return quote.Quote{
		Symbol: symbol,
		Price:  price,
		Time:   time.Now(),
	}, true, nil
}
