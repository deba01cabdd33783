package main

import (
	"net/http"
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-webapp-go/connectors/wehttp"
	"github.com/weegigs/wee-webapp-go/counter"
	"github.com/weegigs/wee-webapp-go/message"
	"github.com/weegigs/wee-webapp-go/support"
)

func NewMessageService(cfg support.Config, c counter.Counter) *message.Service {
	return message.NewService(c, message.WithGreeting(message.Greeting(cfg.Greeting)))
}

func NewHandler(cfg support.Config, log *zerolog.Logger, messages *message.Service, c counter.Counter) http.Handler {
	options := []wehttp.HandlerOption{
		wehttp.Logger(log),
		wehttp.Static(os.DirFS(cfg.StaticDir), cfg.IndexFile),
	}

	if cfg.MetricsEnabled {
		options = append(options, wehttp.WithMetrics(wehttp.NewMetrics(c)))
	}

	return wehttp.NewHandler(messages, options...)
}

var Live = wire.NewSet(
	support.NewLogger,
	counter.NewLocalCounter,
	wire.Bind(new(counter.Counter), new(*counter.LocalCounter)),
	NewMessageService,
	NewHandler,
	support.NewServer,
)
