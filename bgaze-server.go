package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	bgazegin "github.com/bgaze-labs/bgaze/adapters/gin"
	"github.com/bgaze-labs/bgaze/core"
	"github.com/bgaze-labs/bgaze/mail"
	memorylimiter "github.com/bgaze-labs/bgaze/ratelimit/memory"
	redislimiter "github.com/bgaze-labs/bgaze/ratelimit/redis"
	memorystore "github.com/bgaze-labs/bgaze/storage/memory"
	mongostore "github.com/bgaze-labs/bgaze/storage/mongo"
	redisstore "github.com/bgaze-labs/bgaze/storage/redis"
	s3store "github.com/bgaze-labs/bgaze/storage/s3"
)

func main() {
	// .env is a development convenience; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := core.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg *core.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(mongoCtx, mongooptions.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	profiles := mongostore.NewProfileStore(client.Database(cfg.MongoDB))
	// One-time schema setup: uniqueness of idName lives in this index.
	if err := profiles.EnsureIndexes(mongoCtx); err != nil {
		return err
	}

	objects, err := s3store.New(ctx, s3store.Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		return err
	}

	svc := core.NewService(core.Options{
		SessionSecret: []byte(cfg.SessionSecret),
		SessionTTL:    cfg.SessionTTL,
		OTPTTL:        cfg.OTPTTL,
	}).
		WithProfileStore(profiles).
		WithObjectStore(objects).
		WithEmailSender(&mail.SMTPSender{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})

	httpSvc := bgazegin.NewService(svc)

	scheduler := cron.New()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		svc.WithEphemeralStore(redisstore.NewKV(rdb, "bgaze:"))
		httpSvc.WithRateLimiter(redislimiter.New(rdb, map[string]redislimiter.Limit{
			"default":          {Limit: 120, Window: time.Minute},
			"send_email_otp":   {Limit: 6, Window: 10 * time.Minute},
			"verify_email_otp": {Limit: 10, Window: 10 * time.Minute},
		}))
		log.WithField("addr", cfg.RedisAddr).Info("OTP state and rate limits in Redis")
	} else {
		kv := memorystore.NewKV()
		svc.WithEphemeralStore(kv)
		httpSvc.WithRateLimiter(memorylimiter.New(map[string]memorylimiter.Limit{
			"default":          {Limit: 120, Window: time.Minute},
			"send_email_otp":   {Limit: 6, Window: 10 * time.Minute},
			"verify_email_otp": {Limit: 10, Window: 10 * time.Minute},
		}))
		// The memory store expires lazily on read; sweep on a schedule so
		// never-read keys do not accumulate.
		_, err := scheduler.AddFunc("@every 5m", func() {
			if n := kv.Sweep(); n > 0 {
				log.WithField("removed", n).Debug("swept expired OTP entries")
			}
		})
		if err != nil {
			return err
		}
		log.Warn("Redis not configured; OTP state is in-process and lost on restart")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if !core.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	httpSvc.Register(router)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("bgaze server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
