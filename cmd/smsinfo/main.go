package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/handlers"
	"github.com/haisum/smsinfo/pkg/config"
	"github.com/haisum/smsinfo/pkg/errs"
	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/haisum/smsinfo/pkg/response"
	"github.com/haisum/smsinfo/pkg/services/message"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		logger.Get().Error("msg", "couldn't load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Setup(cfg.LogLevel); err != nil {
		logger.Get().Error("msg", "couldn't setup logger", "error", err)
		os.Exit(1)
	}
	log := logger.Get()
	httpLogger := log.With("component", "http")

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTPHost, strconv.Itoa(cfg.HTTPPort)),
		Handler: handlers.CombinedLoggingHandler(os.Stdout, accessControl(newMux(cfg, httpLogger))),
	}

	errc := make(chan error, 2)
	go func() {
		httpLogger.Info("address", srv.Addr, "msg", "listening")
		errc <- srv.ListenAndServe()
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	log.Info("terminated", <-errc)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("msg", "couldn't shutdown http server", "error", err)
	}
}

func newMux(cfg config.Config, httpLogger logger.WithLogger) http.Handler {
	respEncoder := response.NewEncoder(httpLogger, errs.ErrHandler, errs.ErrResponseHandler)
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(respEncoder.EncodeError),
		kithttp.ServerBefore(kithttp.PopulateRequestContext),
	}
	messageLogger := httpLogger.With("service", "message")
	messageSvc := message.NewService(messageLogger, cfg.MaxTextLength)

	mux := http.NewServeMux()
	mux.Handle("/message/v1/", message.MakeHandler(messageSvc, messageLogger, opts, respEncoder.EncodeSuccess))
	return mux
}

func accessControl(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type")

		if r.Method == "OPTIONS" {
			return
		}

		h.ServeHTTP(w, r)
	})
}
