package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/kindy-portal/internal/handler"
	"github.com/noah-isme/kindy-portal/internal/middleware"
	"github.com/noah-isme/kindy-portal/internal/sentlog"
	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/internal/upstream"
	"github.com/noah-isme/kindy-portal/pkg/config"
	"github.com/noah-isme/kindy-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/kindy-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/kindy-portal/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	validate := validator.New()

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logr, metrics)
	prober := upstream.NewProber(cfg.Upstream.BaseURL, cfg.Upstream.ProbeTimeout, logr)
	adminAPI := upstream.NewAdminClient(client)
	studentAPI := upstream.NewStudentClient(client)
	orgAPI := upstream.NewOrgClient(client)

	var sentStore sentlog.Store = sentlog.NewMemoryStore()
	if cfg.SentLog.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sentStore = sentlog.NewRedisStore(rdb, cfg.SentLog.Key)
	}

	gateSvc := service.NewGateService(orgAPI, adminAPI, studentAPI, logr)
	navSvc := service.NewNavigationService(prober, logr)
	paymentSvc := service.NewPaymentService(adminAPI, cfg.FormFlow.TTL, validate, logr)
	invoiceSvc := service.NewInvoiceService(adminAPI, cfg.FormFlow.TTL, validate, logr)
	outstandingSvc := service.NewOutstandingService(adminAPI, logr)
	savingSvc := service.NewSavingService(adminAPI, logr)
	infaqSvc := service.NewInfaqService(adminAPI, logr)
	setorSvc := service.NewSetorService(adminAPI, cfg.FormFlow.TTL, validate, logr)
	stampSvc := service.NewStampService(adminAPI, sentStore, logr)
	openAsSvc := service.NewOpenAsService(adminAPI, logr)
	studentSvc := service.NewStudentService(studentAPI, orgAPI, validate, logr)
	exportSvc := service.NewExportService(adminAPI, cfg.Exports.Enabled, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Session())
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.Register(r, handler.Handlers{
		Gate:           handler.NewGateHandler(gateSvc),
		Navigation:     handler.NewNavigationHandler(navSvc),
		Payment:        handler.NewPaymentHandler(paymentSvc),
		Invoice:        handler.NewInvoiceHandler(invoiceSvc),
		Outstanding:    handler.NewOutstandingHandler(outstandingSvc),
		Saving:         handler.NewSavingHandler(savingSvc),
		Infaq:          handler.NewInfaqHandler(infaqSvc),
		Setor:          handler.NewSetorHandler(setorSvc),
		Stamp:          handler.NewStampHandler(stampSvc),
		OpenAs:         handler.NewOpenAsHandler(openAsSvc),
		Student:        handler.NewStudentHandler(studentSvc),
		Export:         handler.NewExportHandler(exportSvc),
		ExportsEnabled: cfg.Exports.Enabled,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
