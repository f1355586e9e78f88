package bootstrap

import (
	"log"

	"restobot-be/internal/config"
	"restobot-be/internal/controller"
	"restobot-be/internal/pkg/logger"
	"restobot-be/internal/repository/memory"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/internal/service"
	"restobot-be/internal/websocket"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/nlu"

	pktNats "restobot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	RestaurantController controller.IRestaurantController
	BotController        controller.IBotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Chat transport
	ChatService service.IChatService
	WsHub       *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Domain Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret)
	restaurantService := service.NewRestaurantService(uowFactory)
	orderService := service.NewOrderService(uowFactory)
	paymentService := service.NewPaymentService(uowFactory)
	reservationService := service.NewReservationService(uowFactory)
	recommendationService := service.NewRecommendationService(uowFactory)
	eventService := service.NewEventService(pubSub, cfg.App.EventTopic, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, sysLogger)

	// 4. Conversation Engine
	classifier := nlu.NewCLUClient(
		cfg.CLU.Endpoint,
		cfg.CLU.APIKey,
		cfg.CLU.ProjectName,
		cfg.CLU.DeploymentName,
	)
	engine := bot.NewEngine(classifier, bot.Collaborators{
		Auth:         authService,
		Restaurants:  restaurantService,
		Menus:        restaurantService,
		Orders:       orderService,
		Payments:     paymentService,
		Reservations: reservationService,
		Recommender:  recommendationService,
		Events:       eventService,
	}, sysLogger)

	profileRepo := memory.NewProfileRepository()
	chatService := service.NewChatService(engine, profileRepo, uowFactory, sysLogger)

	// 5. Chat Transport
	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		RestaurantController: controller.NewRestaurantController(restaurantService),
		BotController:        controller.NewBotController(chatService),

		ConsumerService: consumerService,

		ChatService: chatService,
		WsHub:       wsHub,

		Logger: sysLogger,
	}
}
