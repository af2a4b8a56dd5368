package config

import (
	"context"
	"fmt"

	"hotelbooking/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App holds the long-lived clients built at startup.
type App struct {
	Settings   Settings
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Melody     *melody.Melody
	Cron       *cron.Cron
}

func InitApp(ctx context.Context, s Settings, log logger.Logger) (*App, error) {
	if s.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	db, err := ConnectDB(s)
	if err != nil {
		return nil, err
	}
	if s.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	rdb, err := ConnectRedis(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if rdb == nil {
		log.Info("redis disabled, caching is off")
	}

	cld, err := ConnectCloudinary(s.CloudinaryURL)
	if err != nil {
		return nil, err
	}

	log.Info("all components initialized", "env", s.Env)
	return &App{
		Settings:   s,
		Router:     router,
		DB:         db,
		Redis:      rdb,
		Cloudinary: cld,
		Melody:     melody.New(),
		Cron:       cron.New(),
	}, nil
}

func (a *App) Close() {
	if a.Cron != nil {
		<-a.Cron.Stop().Done()
	}
	if a.Melody != nil {
		_ = a.Melody.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
