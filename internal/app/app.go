package app

import (
	"wellcrest-backend/internal/auth"
	"wellcrest-backend/internal/config"
	"wellcrest-backend/internal/constants"
	"wellcrest-backend/internal/distributions"
	"wellcrest-backend/internal/documents"
	"wellcrest-backend/internal/health"
	"wellcrest-backend/internal/infrastructure/database"
	"wellcrest-backend/internal/investors"
	"wellcrest-backend/internal/middleware"
	"wellcrest-backend/internal/projects"
	"wellcrest-backend/internal/stakes"
	"wellcrest-backend/internal/statements"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	var dbPinger health.DBPinger
	if db != nil {
		dbPinger = &gormDBPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             dbPinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", healthHandlers.Root)
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// Auth (no auth middleware)
	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{
		UserFinder: userFinder,
		DB:         db,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Protected modules need both stores.
	if db != nil && rdb != nil {
		projectHandlers := &projects.Handlers{Service: &projects.Service{DB: db}}
		projectGroup := app.Group("/api/v1/projects", middleware.RequireAuth())
		projectGroup.Post("/create-project", middleware.AuthorizePermission(constants.ManageProjects), projectHandlers.CreateProject)
		projectGroup.Patch("/update-project/:project_id", middleware.AuthorizePermission(constants.ManageProjects), projectHandlers.UpdateProject)
		projectGroup.Get("/get-project/:project_id", middleware.AuthorizePermission(constants.ViewPortfolio), projectHandlers.GetProject)
		projectGroup.Get("/get-all-projects", middleware.AuthorizePermission(constants.ViewPortfolio), projectHandlers.GetAllProjects)

		investorHandlers := &investors.Handlers{Service: &investors.Service{DB: db}}
		investorGroup := app.Group("/api/v1/investors", middleware.RequireAuth())
		investorGroup.Post("/create-investor", middleware.AuthorizePermission(constants.ManageInvestors), investorHandlers.CreateInvestor)
		investorGroup.Patch("/update-investor/:investor_id", middleware.AuthorizePermission(constants.ManageInvestors), investorHandlers.UpdateInvestor)
		investorGroup.Get("/view-investor/:investor_id", middleware.AuthorizePermission(constants.ManageInvestors), investorHandlers.ViewInvestor)
		investorGroup.Get("/get-all-investors", middleware.AuthorizePermission(constants.ManageInvestors), investorHandlers.GetAllInvestors)

		stakeHandlers := &stakes.Handlers{Service: &stakes.Service{DB: db}}
		stakeGroup := app.Group("/api/v1/stakes", middleware.RequireAuth())
		stakeGroup.Post("/add-stake", middleware.AuthorizePermission(constants.ManageStakes), stakeHandlers.AddStake)
		stakeGroup.Patch("/update-stake/:stake_id", middleware.AuthorizePermission(constants.ManageStakes), stakeHandlers.UpdateStake)
		stakeGroup.Delete("/remove-stake/:stake_id", middleware.AuthorizePermission(constants.ManageStakes), stakeHandlers.RemoveStake)
		stakeGroup.Get("/view-project-stakes/:project_id", middleware.AuthorizePermission(constants.ManageStakes), stakeHandlers.ViewProjectStakes)
		stakeGroup.Get("/view-my-stakes", middleware.AuthorizePermission(constants.ViewPortfolio), stakeHandlers.ViewMyStakes)

		distHandlers := &distributions.Handlers{Service: &distributions.Service{DB: db}}
		distGroup := app.Group("/api/v1/distributions", middleware.RequireAuth())
		distGroup.Post("/process-payout", middleware.AuthorizePermission(constants.ProcessPayouts), distHandlers.ProcessPayout)
		distGroup.Post("/preview-payout", middleware.AuthorizePermission(constants.ProcessPayouts), distHandlers.PreviewPayout)
		distGroup.Get("/view-period/:project_id/:year/:month", middleware.AuthorizePermission(constants.ProcessPayouts), distHandlers.ViewPeriod)
		distGroup.Get("/view-mine", middleware.AuthorizePermission(constants.ViewPortfolio), distHandlers.ViewMine)

		stmtHandlers := &statements.Handlers{Service: &statements.Service{DB: db}}
		stmtGroup := app.Group("/api/v1/statements", middleware.RequireAuth())
		stmtGroup.Get("/:investor_id/:year/:month", middleware.AuthorizePermission(constants.ViewStatements), stmtHandlers.GetStatement)

		storageClient := &documents.HTTPClient{
			BaseURL:   cfg.StorageURL,
			SecretKey: cfg.StorageSecretKey,
		}
		docHandlers := &documents.Handlers{Service: &documents.Service{
			Client:     storageClient,
			StorageURL: cfg.StorageURL,
		}}
		docGroup := app.Group("/api/v1/documents", middleware.RequireAuth())
		docGroup.Post("/statement", middleware.AuthorizePermission(constants.UploadDocuments), docHandlers.UploadStatement)
		docGroup.Post("/project-doc", middleware.AuthorizePermission(constants.UploadDocuments), docHandlers.UploadProjectDoc)
	}

	return app, db, rdb, nil
}
