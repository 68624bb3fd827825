package main

import (
	"context"
	"imgsizer/internal/adapters/converter"
	"imgsizer/internal/adapters/handler"
	"imgsizer/internal/core/service"
	"os"
	"os/signal"

	"github.com/gofiber/contrib/fiberzerolog"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofrs/uuid/v5"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting imgsizer...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("server.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := fiber.New(fiber.Config{
		AppName:      "imgsizer",
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(
		recover.New(),
		requestid.New(requestid.Config{Generator: newRequestID}),
		fiberzerolog.New(fiberzerolog.Config{Logger: &log.Logger}),
	)

	resizer := service.NewResizer(converter.NewImagingCodec())
	handler.NewResize(app, resizer)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error during server shutdown")
		}
	}()

	addr := viper.GetString("server.host") + ":" + viper.GetString("server.port")
	log.Info().Str("addr", addr).Msg("server listening")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return requestid.ConfigDefault.Generator()
	}

	return id.String()
}
