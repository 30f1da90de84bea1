package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"hermes/api/grpcserver"
	pb "hermes/api/pb"

	"hermes/domain/orderbook"
	"hermes/infra/config"
	"hermes/infra/logging"
	"hermes/infra/sequence"
	"hermes/infra/store"
	"hermes/jobs/broadcaster"
	"hermes/service"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// ---------------- Store ----------------

	st, err := store.Open(cfg.Store.Dir)
	if err != nil {
		logger.Fatal("store open failed", zap.Error(err))
	}
	defer st.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Domain ----------------

	eng := orderbook.NewEngine(cfg.Symbols)
	defer eng.Close()

	// ---------------- Restore ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.Restore(ctx, logger, eng, st, seqGen); err != nil {
		logger.Fatal("restore failed", zap.Error(err))
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(eng, st, service.NewTracker(), logger)

	// ---------------- Background Jobs ----------------

	producer, err := broadcaster.NewProducer(cfg.Kafka.Brokers)
	if err != nil {
		logger.Fatal("kafka producer init failed", zap.Error(err))
	}

	bc := broadcaster.New(st, producer, cfg.Kafka.Topic, cfg.Kafka.Interval, logger)
	defer bc.Close()
	go bc.Run(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		logger.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(svc, seqGen, logger))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		logger.Info("shutting down", zap.String("signal", s.String()))
		grpcSrv.GracefulStop()
		cancel()
	}()

	logger.Info("engine running",
		zap.String("addr", cfg.GRPC.Addr),
		zap.Strings("symbols", cfg.Symbols),
	)

	if err := grpcSrv.Serve(lis); err != nil {
		logger.Fatal("gRPC server exited", zap.Error(err))
	}
}
