package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"jobboard-be/internal/config"
	"jobboard-be/internal/constant"
	"jobboard-be/internal/controller"
	"jobboard-be/internal/pkg/logger"
	"jobboard-be/internal/repository/memory"
	"jobboard-be/internal/repository/unitofwork"
	"jobboard-be/internal/service"
	"jobboard-be/pkg/llm/factory"
	pktNats "jobboard-be/pkg/nats"

	"gorm.io/gorm"
)

// Container holds every wired component the server needs.
type Container struct {
	Logger logger.ILogger

	CompanyController controller.ICompanyController
	JobController     controller.IJobController
	ChatController    controller.IChatController

	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Collaborator
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS is optional; a nil publisher drops events.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis is optional; without it the listing is served from Postgres
	// on every request.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			rdb = nil
		}
	}

	lockRepo := memory.NewLockRepository()

	// 5. Services
	publisherService := service.NewPublisherService(constant.TopicChatTurnRecorded, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.TopicChatTurnRecorded, uowFactory)

	companyService := service.NewCompanyService(uowFactory)
	jobService := service.NewJobService(uowFactory, rdb, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		lockRepo,
		llmProvider,
		publisherService,
		natsPub,
		cfg.Chat,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		Logger:            sysLogger,
		CompanyController: controller.NewCompanyController(companyService),
		JobController:     controller.NewJobController(jobService),
		ChatController:    controller.NewChatController(chatService),
		ConsumerService:   consumerService,
	}
}
