package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	idverifypb "github.com/docstack-labs/idverify/gen/proto/idverify/v1"
	"github.com/docstack-labs/idverify/internal/async"
	"github.com/docstack-labs/idverify/internal/common"
	"github.com/docstack-labs/idverify/internal/export"
	"github.com/docstack-labs/idverify/internal/ingest"
	"github.com/docstack-labs/idverify/internal/ocr"
	processor "github.com/docstack-labs/idverify/internal/pipeline"
	repo "github.com/docstack-labs/idverify/internal/repository"
	svc "github.com/docstack-labs/idverify/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if cfg.Database.SQLitePath != "" {
		// SQLite deployments self-migrate; Postgres is migrated out of band.
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	docsRepo := repo.NewDocumentRepository(entc, logger)

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	proc := processor.NewProcessor(logger, docsRepo, engine, nil)
	exporter := export.NewService(docsRepo, logger)

	documentsService := svc.NewDocumentsService(proc, docsRepo, exporter, logger)
	idverifypb.RegisterDocumentsServiceServer(grpcServer, documentsService)

	// Hot folder: new scans dropped into WATCH_DIR get processed without an
	// RPC call.
	var queue *async.ProcessorQueue
	if cfg.Ingest.WatchDir != "" {
		queue = async.NewProcessorQueue(proc, logger,
			async.WithWorkers(4),
			async.WithQueueSize(512),
		)
		paths, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{cfg.Ingest.WatchDir},
			Debounce: cfg.Ingest.Debounce,
		})
		if err != nil {
			logger.Error("failed to start watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range paths {
				_ = queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()})
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Error("watcher error", "error", err)
			}
		}()
		logger.Info("watching for new scans", "dir", cfg.Ingest.WatchDir)
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("idverifyd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if queue != nil {
		queue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}
