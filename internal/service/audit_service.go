package service

import (
	"context"
	"encoding/json"

	"subject-panel-be/internal/dto"
	"subject-panel-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditService interface {
	Consume(ctx context.Context) error
}

// auditService subscribes to the subject activity topic and writes each
// mutation to the structured log. It runs for the lifetime of the process.
type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *auditService) processMessage(msg *message.Message) {
	var payload dto.SubjectActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("audit", "Failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.log.Info("audit", "Subject activity", map[string]interface{}{
		"subject_id":   payload.SubjectId.String(),
		"action":       payload.Action,
		"lesson_count": payload.LessonCount,
	})
	msg.Ack()
}
