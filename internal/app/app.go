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

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/controller"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/database"
	"learnpath_backend/pkg/graphdb"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
	"learnpath_backend/pkg/security"
	"learnpath_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	SampleDB        *gorm.DB
	Redis           *redis.Client
	Graph           *graphdb.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        repository.UserRepository
	quizAttempt repository.QuizAttemptRepository
	weakArea    repository.WeakAreaRepository
	vark        repository.VarkRepository
	quest       repository.QuestRepository
	progress    repository.ProgressRepository
	content     repository.ContentRepository
	graph       *repository.GraphCurriculumRepository
}

type services struct {
	auth     *service.AuthService
	quiz     *service.QuizService
	vark     *service.VarkService
	progress *service.ProgressService
	content  *service.ContentService
	quest    *service.QuestService
	user     *service.UserService
	tutor    *service.TutorService
	sandbox  *service.SandboxService
	storage  service.StorageProvider
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	course   *controller.CourseController
	progress *controller.ProgressController
	quest    *controller.QuestController
	sandbox  *controller.SandboxController
	tutor    *controller.TutorController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered callbacks. Only
// settings the callbacks read take effect without a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// initRepositories wires either the gorm store or the in-memory store
// behind the repository interfaces, per database.driver.
func (a *App) initRepositories(db *gorm.DB, graph *graphdb.Client) *repositories {
	repos := &repositories{
		graph: repository.NewGraphCurriculumRepository(graph),
	}

	if db != nil {
		repos.user = repository.NewGormUserRepository(db)
		repos.quizAttempt = repository.NewGormQuizAttemptRepository(db)
		repos.weakArea = repository.NewGormWeakAreaRepository(db)
		repos.vark = repository.NewGormVarkRepository(db)
		repos.quest = repository.NewGormQuestRepository(db)
		repos.progress = repository.NewGormProgressRepository(db)
		repos.content = repository.NewGormContentRepository(db)
		return repos
	}

	store := repository.NewMemoryStore()
	store.SeedContent(database.DefaultContent())
	repos.user = store.Users()
	repos.quizAttempt = store.QuizAttempts()
	repos.weakArea = store.WeakAreas()
	repos.vark = store.Varks()
	repos.quest = store.Quests()
	repos.progress = store.Progress()
	repos.content = store.Contents()
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config, sampleDB *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage provider", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.quest = service.NewQuestService(repos.quest, repos.user)
	s.quiz = service.NewQuizService(repos.quizAttempt, repos.weakArea, repos.user, s.quest)
	s.vark = service.NewVarkService(repos.vark, repos.user)
	s.progress = service.NewProgressService(repos.progress, repos.graph)
	s.content = service.NewContentService(repos.content, rdb)
	s.user = service.NewUserService(repos.user, repos.quizAttempt, repos.weakArea, rdb)
	s.tutor = service.NewTutorService(context.Background(), cfg.AI)
	s.sandbox = service.NewSandboxService(sampleDB)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.quiz, s.vark, s.user),
		user:     controller.NewUserController(s.user, s.content, s.storage),
		course:   controller.NewCourseController(),
		progress: controller.NewProgressController(s.progress, s.user),
		quest:    controller.NewQuestController(s.quest, s.user, s.auth),
		sandbox:  controller.NewSandboxController(s.sandbox),
		tutor:    controller.NewTutorController(s.tutor),
		health:   controller.NewHealthController(db, repos.graph),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	var db *gorm.DB
	if cfg.Database.Driver != "memory" {
		var err error
		db, err = database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
	} else {
		logger.Log.Info("Running on the in-memory store")
	}

	sampleDB, err := database.InitSampleDB(&cfg.Sandbox)
	if err != nil {
		logger.Log.Fatal("Failed to initialize sample database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	graph, err := graphdb.New(&cfg.Graph)
	if err != nil {
		// The static curriculum covers everything the graph mirror does.
		logger.Log.Warn("Graph store unavailable, using static curriculum", zap.Error(err))
		graph = nil
	}

	app := &App{
		Config:   cfg,
		DB:       db,
		SampleDB: sampleDB,
		Redis:    rdb,
		Graph:    graph,
	}

	app.RegisterConfigCallback(func(updated *config.Config) {
		app.Config = updated
		logger.Log.Info("Configuration reloaded")
	})

	repos := app.initRepositories(db, graph)
	services := app.initServices(repos, cfg, sampleDB, rdb)
	controllers := app.initControllers(services, repos, db)

	repos.graph.SyncNodes(context.Background())

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnpath", cfg.Tracing.CollectorEndpoint); err != nil {
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

	if a.Graph != nil {
		if err := a.Graph.Close(ctx); err != nil {
			logger.Log.Warn("graph driver close failed", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
