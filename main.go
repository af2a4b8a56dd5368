package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/config"
	"hotelbooking/controllers"
	"hotelbooking/jobs"
	"hotelbooking/repository"
	"hotelbooking/routes"
	"hotelbooking/services"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: could not load .env, using process environment: %v", err)
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(settings.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := config.InitApp(ctx, settings, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Close()

	if settings.Seed {
		if err := config.Seed(ctx, app.DB, settings.BcryptCost, appLogger); err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
	}

	users := repository.NewUserRepository(app.DB)
	hotels := repository.NewHotelRepository(app.DB)
	rooms := repository.NewRoomRepository(app.DB)
	bookings := repository.NewBookingRepository(app.DB)
	reviews := repository.NewReviewRepository(app.DB)
	cache := services.NewRedisCache(app.Redis)

	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     settings.SMTPHost,
		Port:     settings.SMTPPort,
		Username: settings.SMTPUser,
		Password: settings.SMTPPassword,
		From:     settings.FromEmail,
	})
	fanout := &services.EventFanout{
		Broadcaster: notification.NewMelodyService(app.Melody),
		Mailer:      mailer,
		Users:       users,
		Logger:      appLogger,
	}
	if settings.RabbitMQURL != "" {
		fanout.Publisher = notification.NewRabbitPublisher(settings.RabbitMQURL)
	}

	tokens := services.NewTokenService(settings.AccessTokenSecret, settings.AccessTokenTTL)
	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:      users,
		Tokens:     tokens,
		BcryptCost: settings.BcryptCost,
		Logger:     appLogger,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Rooms:          rooms,
		Bookings:       bookings,
		Events:         fanout,
		Logger:         appLogger,
		RejectOverlaps: settings.RejectOverlappingBookings,
	})
	reviewService := services.NewReviewService(services.ReviewServiceOptions{
		Reviews: reviews,
		Hotels:  hotels,
		Cache:   cache,
		Logger:  appLogger,
	})
	hotelService := services.NewHotelService(services.HotelServiceOptions{
		Hotels: hotels,
		Cache:  cache,
		Logger: appLogger,
	})
	adminOpts := services.AdminServiceOptions{
		Hotels:   hotels,
		Rooms:    rooms,
		Bookings: bookings,
		Users:    users,
		Reviews:  reviews,
		Cache:    cache,
		Logger:   appLogger,
	}
	if app.Cloudinary != nil {
		adminOpts.Uploader = services.NewCloudinaryUploader(app.Cloudinary)
	}
	adminService := services.NewAdminService(adminOpts)

	if settings.BookingCompletionJob {
		if err := jobs.InitCronJobs(app.Cron, bookingService, appLogger); err != nil {
			log.Fatalf("Failed to initialize cron jobs: %v", err)
		}
	}

	routes.SetupRoutes(app.Router, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Hotels:   controllers.NewHotelController(hotelService),
		Bookings: controllers.NewBookingController(bookingService),
		Reviews:  controllers.NewReviewController(reviewService),
		Contact:  controllers.NewContactController(services.NewContactService(mailer, settings.ContactEmail, appLogger)),
		Users:    controllers.NewUserController(services.NewProfileService(users)),
		Admin:    controllers.NewAdminController(adminService),
		Notification: controllers.NewNotificationController(controllers.NotificationControllerOptions{
			Logger: appLogger,
		}, app.Melody),
	}, tokens, appLogger)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("server starting", "port", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown", "error", err)
	}
	appLogger.Info("server stopped")
}
