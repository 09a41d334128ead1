package main

import (
	"os"
	"strconv"

	bannerhandler "eduportal-backend/internal/apps/banner/handler"
	bannermodels "eduportal-backend/internal/apps/banner/models"
	bannerrepo "eduportal-backend/internal/apps/banner/repository"
	bannerservice "eduportal-backend/internal/apps/banner/service"
	bloghandler "eduportal-backend/internal/apps/blog/handler"
	blogmodels "eduportal-backend/internal/apps/blog/models"
	blogrepo "eduportal-backend/internal/apps/blog/repository"
	blogservice "eduportal-backend/internal/apps/blog/service"
	coursehandler "eduportal-backend/internal/apps/course/handler"
	coursemodels "eduportal-backend/internal/apps/course/models"
	courserepo "eduportal-backend/internal/apps/course/repository"
	courseservice "eduportal-backend/internal/apps/course/service"
	faqhandler "eduportal-backend/internal/apps/faq/handler"
	faqmodels "eduportal-backend/internal/apps/faq/models"
	faqrepo "eduportal-backend/internal/apps/faq/repository"
	faqservice "eduportal-backend/internal/apps/faq/service"
	leadhandler "eduportal-backend/internal/apps/lead/handler"
	leadmodels "eduportal-backend/internal/apps/lead/models"
	leadrepo "eduportal-backend/internal/apps/lead/repository"
	leadservice "eduportal-backend/internal/apps/lead/service"
	mentorhandler "eduportal-backend/internal/apps/mentor/handler"
	mentormodels "eduportal-backend/internal/apps/mentor/models"
	mentorrepo "eduportal-backend/internal/apps/mentor/repository"
	mentorservice "eduportal-backend/internal/apps/mentor/service"
	otphandler "eduportal-backend/internal/apps/otp/handler"
	otpmodels "eduportal-backend/internal/apps/otp/models"
	otprepo "eduportal-backend/internal/apps/otp/repository"
	otpservice "eduportal-backend/internal/apps/otp/service"
	redirecthandler "eduportal-backend/internal/apps/redirect/handler"
	redirectmodels "eduportal-backend/internal/apps/redirect/models"
	redirectrepo "eduportal-backend/internal/apps/redirect/repository"
	redirectservice "eduportal-backend/internal/apps/redirect/service"
	universityhandler "eduportal-backend/internal/apps/university/handler"
	universitymodels "eduportal-backend/internal/apps/university/models"
	universityrepo "eduportal-backend/internal/apps/university/repository"
	universityservice "eduportal-backend/internal/apps/university/service"
	uploadhandler "eduportal-backend/internal/apps/upload/handler"
	userhandler "eduportal-backend/internal/apps/user/handler"
	usermodels "eduportal-backend/internal/apps/user/models"
	userrepo "eduportal-backend/internal/apps/user/repository"
	userservice "eduportal-backend/internal/apps/user/service"
	"eduportal-backend/internal/common/database"
	"eduportal-backend/internal/common/logger"
	"eduportal-backend/internal/common/middleware"
	"eduportal-backend/pkg/mail"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	}

	env := getEnv("APP_ENV", "development")
	log := logger.New(env)

	// Database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "eduportal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Connect to database
	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&usermodels.User{},
		&otpmodels.OtpRecord{},
		&leadmodels.WebsiteLead{},
		&faqmodels.FaqCategory{},
		&faqmodels.FaqQuestion{},
		&coursemodels.Domain{},
		&coursemodels.Course{},
		&coursemodels.Specialization{},
		&universitymodels.UniversityType{},
		&universitymodels.University{},
		&bannermodels.CourseBanner{},
		&blogmodels.Blog{},
		&mentormodels.Mentor{},
		&redirectmodels.Redirection{},
	); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// Mail transport: SMTP in production, logged no-op elsewhere
	var mailer mail.Sender
	if smtpHost := getEnv("SMTP_HOST", ""); smtpHost != "" {
		smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
		if err != nil {
			log.Fatal().Err(err).Msg("invalid SMTP_PORT")
		}
		mailer = mail.NewSMTPSender(mail.Config{
			Host:     smtpHost,
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@eduportal.io"),
		})
	} else {
		log.Warn().Msg("SMTP_HOST not set, email delivery disabled")
		mailer = mail.NewNoOpSender()
	}

	// Wire app dependencies
	userService := userservice.NewUserService(userrepo.NewUserRepository(db))
	userHandler := userhandler.NewUserHandler(userService)

	otpSvc := otpservice.NewOTPService(otprepo.NewOTPRepository(db), mailer, nil)
	otpHandler := otphandler.NewOTPHandler(otpSvc)

	leadService := leadservice.NewLeadService(leadrepo.NewLeadRepository(db))
	leadHandler := leadhandler.NewLeadHandler(leadService)

	faqService := faqservice.NewFaqService(faqrepo.NewFaqRepository(db))
	faqHandler := faqhandler.NewFaqHandler(faqService)

	catalogService := courseservice.NewCatalogService(courserepo.NewCatalogRepository(db))
	catalogHandler := coursehandler.NewCatalogHandler(catalogService)

	universityService := universityservice.NewUniversityService(universityrepo.NewUniversityRepository(db))
	universityHandler := universityhandler.NewUniversityHandler(universityService)

	bannerService := bannerservice.NewBannerService(bannerrepo.NewBannerRepository(db))
	bannerHandler := bannerhandler.NewBannerHandler(bannerService)

	blogService := blogservice.NewBlogService(blogrepo.NewBlogRepository(db))
	blogHandler := bloghandler.NewBlogHandler(blogService)

	mentorService := mentorservice.NewMentorService(mentorrepo.NewMentorRepository(db))
	mentorHandler := mentorhandler.NewMentorHandler(mentorService)

	redirectionService := redirectservice.NewRedirectionService(redirectrepo.NewRedirectionRepository(db))
	redirectionHandler := redirecthandler.NewRedirectionHandler(redirectionService)

	mediaDir := getEnv("MEDIA_DIR", "./media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", mediaDir).Msg("failed to create media directory")
	}
	uploadHandler := uploadhandler.NewUploadHandler(mediaDir)

	// Periodic cleanup of expired verification codes
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 10m", func() {
		removed, err := otpSvc.SweepExpired()
		if err != nil {
			log.Error().Err(err).Msg("otp sweep failed")
			return
		}
		if removed > 0 {
			log.Info().Int64("removed", removed).Msg("swept expired otp records")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule otp sweep")
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Setup Gin router
	ginMode := getEnv("GIN_MODE", "release")
	gin.SetMode(ginMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SetupCORS(env))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})

	// Uploaded media is served directly
	router.Static("/media", mediaDir)

	// API v1 routes
	v1 := router.Group("/api/v1")
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAuth())
	{
		userhandler.RegisterUserRoutes(v1, admin, userHandler)
		otphandler.RegisterOTPRoutes(v1, admin, otpHandler)
		leadhandler.RegisterLeadRoutes(v1, admin, leadHandler)
		faqhandler.RegisterFaqRoutes(v1, admin, faqHandler)
		coursehandler.RegisterCatalogRoutes(v1, admin, catalogHandler)
		universityhandler.RegisterUniversityRoutes(v1, admin, universityHandler)
		bannerhandler.RegisterBannerRoutes(v1, admin, bannerHandler)
		bloghandler.RegisterBlogRoutes(v1, admin, blogHandler)
		mentorhandler.RegisterMentorRoutes(v1, admin, mentorHandler)
		redirecthandler.RegisterRedirectionRoutes(v1, admin, redirectionHandler)
		uploadhandler.RegisterUploadRoutes(admin, uploadHandler)
	}

	// Start server
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Str("env", env).Msg("server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
