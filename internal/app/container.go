package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/schema"
	dbsqlite "career-compass/internal/database/sqlite"
	"career-compass/internal/infrastructure/ai"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/jobapi"
	"career-compass/internal/infrastructure/oauth"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"
)

// Container wires config, storage, infrastructure clients and usecases.
// Construction fails fast; nothing here retries.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	JWT    jwt.Service
	OAuth  oauth.Provider
	States oauth.StateStore

	Auth      ucauth.AuthUsecase
	Resume    usecase.ResumeAnalysisUsecase
	Interview usecase.InterviewUsecase
	Courses   usecase.CourseUsecase
	JobSearch usecase.JobSearchUsecase
	SavedJobs usecase.SavedJobUsecase
	Reports   usecase.ReportUsecase
	Admin     usecase.AdminUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := schema.EnsureTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	google := oauth.NewGoogle(cfg.OAuth, cfg.App.BaseURL+"/api/v1/auth/google/callback")

	var states oauth.StateStore
	if redisCache.Available() {
		states = oauth.NewRedisStateStore(redisCache)
	} else {
		states = oauth.NewMemoryStateStore()
	}

	completer, err := ai.NewClient(cfg.AI, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ai client: %w", err)
	}
	adzuna := jobapi.NewAdzunaClient(cfg.Jobs, logger)

	userRepo := repository.NewSQLUserRepository(db)
	reportRepo := repository.NewSQLReportRepository(db)
	savedJobRepo := repository.NewSQLSavedJobRepository(db)
	jobCacheRepo := repository.NewSQLJobCacheRepository(db)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,

		JWT:    jwtSvc,
		OAuth:  google,
		States: states,

		Auth:      ucauth.NewService(userRepo, jwtSvc),
		Resume:    usecase.NewResumeAnalysisUsecase(reportRepo, completer, logger),
		Interview: usecase.NewInterviewUsecase(reportRepo, completer),
		Courses:   usecase.NewCourseUsecase(completer),
		JobSearch: usecase.NewJobSearchUsecase(jobCacheRepo, adzuna, cfg.Jobs.Country, logger),
		SavedJobs: usecase.NewSavedJobUsecase(savedJobRepo),
		Reports:   usecase.NewReportUsecase(reportRepo),
		Admin:     usecase.NewAdminUsecase(userRepo, reportRepo, db, redisCache, cfg.Admin.Email, logger),
	}, nil
}

func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return dbpostgres.Connect(ctx, cfg)
	case config.DriverSQLite:
		return dbsqlite.Connect(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
