package ioc

import (
	"fmt"

	gobinance "github.com/adshao/go-binance/v2"
	"github.com/b3watch/stock-alert/internal/service/quote"
	"github.com/b3watch/stock-alert/internal/service/quote/binance"
	"github.com/b3watch/stock-alert/internal/service/quote/brapi"
	"github.com/spf13/viper"
)

// InitQuoteService builds the configured price provider. brapi covers
// B3 tickers, binance covers crypto pairs.
func InitQuoteService() quote.Service {
	type Config struct {
		Provider string `mapstructure:"provider"`
		Brapi    struct {
			Token string `mapstructure:"token"`
		} `mapstructure:"brapi"`
		Binance struct {
			ApiKey    string `mapstructure:"api_key"`
			ApiSecret string `mapstructure:"api_secret"`
		} `mapstructure:"binance"`
	}

	cfg := Config{Provider: "brapi"}
	if err := viper.UnmarshalKey("quote", &cfg); err != nil {
		panic(err)
	}

	switch cfg.Provider {
	case "brapi":
		return brapi.NewService(cfg.Brapi.Token)
	case "binance":
		return binance.NewService(gobinance.NewClient(cfg.Binance.ApiKey, cfg.Binance.ApiSecret))
	default:
		panic(fmt.Sprintf("unknown quote provider: %s", cfg.Provider))
	}
}
