package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/controller"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/service"
	"learntrack_backend/pkg/database"
	"learntrack_backend/pkg/logger"
	"learntrack_backend/pkg/monitoring"
	"learntrack_backend/pkg/security"
	"learntrack_backend/pkg/tracing"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	topic       *repository.TopicRepository
	resource    *repository.ResourceRepository
	note        *repository.NoteRepository
	progress    *repository.ProgressRepository
	streak      *repository.StreakRepository
	pomodoro    *repository.PomodoroRepository
	task        *repository.TaskRepository
	quiz        *repository.QuizRepository
	achievement *repository.AchievementRepository
	points      *repository.PointsRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	course       *service.CourseService
	note         *service.NoteService
	progress     *service.ProgressService
	gamification *service.GamificationService
	quiz         *service.QuizService
	pomodoro     *service.PomodoroService
	task         *service.TaskService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	note         *controller.NoteController
	progress     *controller.ProgressController
	quiz         *controller.QuizController
	gamification *controller.GamificationController
	pomodoro     *controller.PomodoroController
	task         *controller.TaskController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		topic:       repository.NewTopicRepository(db),
		resource:    repository.NewResourceRepository(db),
		note:        repository.NewNoteRepository(db),
		progress:    repository.NewProgressRepository(db),
		streak:      repository.NewStreakRepository(db),
		pomodoro:    repository.NewPomodoroRepository(db),
		task:        repository.NewTaskRepository(db),
		quiz:        repository.NewQuizRepository(db),
		achievement: repository.NewAchievementRepository(db),
		points:      repository.NewPointsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, storage)
	s.course = service.NewCourseService(repos.course, repos.topic, repos.resource, repos.progress, rdb)
	s.note = service.NewNoteService(repos.note, repos.topic)
	s.gamification = service.NewGamificationService(repos.achievement, repos.points, repos.user)
	s.progress = service.NewProgressService(repos.progress, repos.streak, repos.topic, repos.course, s.gamification)
	s.quiz = service.NewQuizService(repos.quiz, repos.topic, s.gamification)
	s.pomodoro = service.NewPomodoroService(repos.pomodoro)
	s.task = service.NewTaskService(repos.task)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		course:       controller.NewCourseController(s.course),
		note:         controller.NewNoteController(s.note),
		progress:     controller.NewProgressController(s.progress),
		quiz:         controller.NewQuizController(s.quiz),
		gamification: controller.NewGamificationController(s.gamification),
		pomodoro:     controller.NewPomodoroController(s.pomodoro),
		task:         controller.NewTaskController(s.task),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learntrack-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
