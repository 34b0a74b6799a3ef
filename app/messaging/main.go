package main

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/ribgsilva/studyvault/app/api/handlers"
	"github.com/ribgsilva/studyvault/app/messaging/consumers/v1/notes"
	"github.com/ribgsilva/studyvault/platform/apm"
	"github.com/ribgsilva/studyvault/platform/env"
	"github.com/ribgsilva/studyvault/platform/logger"
	"github.com/ribgsilva/studyvault/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

func main() {

	log, err := logger.New("Notes-Messaging")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	if err := godotenv.Load(); err != nil {
		log.Infow("startup", "status", "no .env file loaded")
	}
	sys.Load(log, sys.Defaults{HttpPort: "8081", AppName: "notes-messaging"})
	sys.Configs.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	closeAll, err := sys.Open(context.Background(), log)
	if err != nil {
		return err
	}
	defer closeAll()

	// =======================================================================================================
	// NR

	nrApp, err := apm.Start(apm.Config{
		AppName:           sys.Configs.NewRelic.AppName,
		Licence:           sys.Configs.NewRelic.Licence,
		Enabled:           sys.Configs.NewRelic.Enabled,
		ConnectionTimeout: sys.Configs.NewRelic.ConnectionTimeout,
	})
	if err != nil {
		return err
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}

	sqsCli := sqs.NewFromConfig(cfg)

	subscription := awssnssqs.OpenSubscriptionV2(
		context.Background(),
		sqsCli,
		sys.Configs.Messaging.TopicName,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: sys.Configs.Messaging.WaitTime,
		})

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler: router,
	}

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in server http server: %s", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		cancelFunc()
	}()

	defer func() {
		svrCtx, svrCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer svrCancel()
		if err := svr.Shutdown(svrCtx); err != nil {
			log.Errorf("could not stop healthcheck server gracefully: %s", err)
		}
	}()

	if err := notes.Consume(withCancel, subscription, sys.Configs.Messaging.MaxWorkers); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}

	return nil
}
