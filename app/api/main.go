package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/ribgsilva/studyvault/app/api/docs"
	"github.com/ribgsilva/studyvault/app/api/handlers"
	"github.com/ribgsilva/studyvault/platform/apm"
	"github.com/ribgsilva/studyvault/platform/auth"
	"github.com/ribgsilva/studyvault/platform/env"
	"github.com/ribgsilva/studyvault/platform/logger"
	"github.com/ribgsilva/studyvault/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// @title StudyVault Note API
// @version 1.0
// @description Service to store, filter and summarize the notes of each user.
// @contact.name Gabriel Ribeiro Silva
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	log, err := logger.New("Notes-API")
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
	sys.Load(log, sys.Defaults{HttpPort: "8080", AppName: "notes-api"})
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Auth.Secret = env.Must(log, "AUTH_SECRET")
	sys.Configs.Auth.Issuer = env.OrDefault(log, "AUTH_ISSUER", "")

	// =======================================================================================================
	// Setup static resources

	closeAll, err := sys.Open(context.Background(), log)
	if err != nil {
		return err
	}
	defer closeAll()

	// identity
	sys.R.Auth = auth.NewVerifier(sys.Configs.Auth.Secret, sys.Configs.Auth.Issuer)

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
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))
	router.MaxMultipartMemory = int64(sys.Configs.Images.MaxSize) * 2

	handlers.MapDefaults(router)
	handlers.MapApi(router, sys.R.Auth)

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
