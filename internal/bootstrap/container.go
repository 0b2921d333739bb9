package bootstrap

import (
	"context"

	"character-chat-be/internal/config"
	"character-chat-be/internal/constant"
	"character-chat-be/internal/controller"
	"character-chat-be/internal/pkg/logger"
	"character-chat-be/internal/repository/memory"
	"character-chat-be/internal/repository/unitofwork"
	"character-chat-be/internal/seeder"
	"character-chat-be/internal/service"
	"character-chat-be/pkg/database"

	"gorm.io/gorm"
)

const bootstrapModule = "bootstrap"

type Container struct {
	Logger logger.ILogger

	// Services
	CharacterService service.ICharacterService
	ChatService      service.IChatService

	// Controllers
	CharacterController controller.ICharacterController
	ChatController      controller.IChatController
	HealthController    controller.IHealthController
}

// NewContainer wires the application. db is ignored when the configured driver is memory.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	var ping controller.Pinger
	if cfg.Database.Driver == constant.DatabaseDriverMemory {
		uowFactory = unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
		log.Warn(bootstrapModule, "using in-memory store, data is lost on restart", nil)

		if cfg.Database.SeedSystemCharacters {
			result, err := seeder.SeedSystemCharacters(context.Background(), uowFactory, seeder.DefaultSystemCharacters)
			if err != nil {
				log.Error(bootstrapModule, "failed to seed system characters", map[string]interface{}{"error": err.Error()})
			} else {
				log.Info(bootstrapModule, "system characters seeded", map[string]interface{}{"created": result.Created})
			}
		}
	} else {
		uowFactory = unitofwork.NewRepositoryFactory(db)
		ping = func() error { return database.Ping(db) }
	}

	// 2. Services
	characterService := service.NewCharacterService(uowFactory, log)
	chatService := service.NewChatService(uowFactory, log)

	// 3. Controllers
	return &Container{
		Logger:              log,
		CharacterService:    characterService,
		ChatService:         chatService,
		CharacterController: controller.NewCharacterController(characterService),
		ChatController:      controller.NewChatController(chatService),
		HealthController:    controller.NewHealthController(ping),
	}
}
