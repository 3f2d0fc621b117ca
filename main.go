package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"github.com/rehiy/sms-text/config"
	"github.com/rehiy/sms-text/database"
	"github.com/rehiy/sms-text/router"
	"github.com/rehiy/sms-text/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.SetupLogger(cfg); err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}

	// 初始化数据库
	if err := database.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if !cfg.HistoryEnabled {
		if err := database.SetHistoryEnabled(false); err != nil {
			log.Fatalf("Failed to disable history: %v", err)
		}
	}

	// 监控指标
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	events := service.GetEventListener()
	rs := service.NewRecodeService(service.RecodeOptions{
		MaxCapacity: cfg.MaxCapacity,
		Persist:     true,
		Metrics:     service.NewMetrics(reg),
		Events:      events,
	})

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: router.Apply(router.Options{
			Recoder:     rs,
			Events:      events,
			MetricsPath: cfg.MetricsPath,
			Gatherer:    reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Infof("[Server] Listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Server] Listen failed: %v", err)
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("[Server] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("[Server] Shutdown failed: %v", err)
	}
}
