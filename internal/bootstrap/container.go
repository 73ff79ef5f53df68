package bootstrap

import (
	"subject-panel-be/internal/config"
	"subject-panel-be/internal/controller"
	"subject-panel-be/internal/pkg/logger"
	"subject-panel-be/internal/repository/memory"
	"subject-panel-be/internal/repository/unitofwork"
	"subject-panel-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SubjectController controller.ISubjectController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService

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

	// 3. Services
	listCache := memory.NewSubjectListCache(cfg.App.ListCacheTTL)

	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	auditService := service.NewAuditService(pubSub, cfg.App.ActivityTopic, sysLogger)

	subjectService := service.NewSubjectService(uowFactory, publisherService, listCache, sysLogger)

	// 4. Controllers
	return &Container{
		SubjectController: controller.NewSubjectController(subjectService),
		AuditService:      auditService,
		Logger:            sysLogger,
	}
}
