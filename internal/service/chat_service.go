package service

import (
	"context"
	"time"

	"restobot-be/internal/constant"
	"restobot-be/internal/dto"
	"restobot-be/internal/entity"
	"restobot-be/internal/pkg/logger"
	"restobot-be/internal/repository/memory"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	HandleMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	engine      *bot.Engine
	profileRepo *memory.ProfileRepository
	uowFactory  unitofwork.RepositoryFactory
	log         logger.ILogger
}

func NewChatService(
	engine *bot.Engine,
	profileRepo *memory.ProfileRepository,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IChatService {
	return &chatService{
		engine:      engine,
		profileRepo: profileRepo,
		uowFactory:  uowFactory,
		log:         log,
	}
}

// HandleMessage runs one conversational turn. Turns for the same
// conversation are serialized so concurrent websocket frames cannot
// interleave profile mutations.
func (s *chatService) HandleMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	unlock := s.profileRepo.Lock(conversationID)
	defer unlock()

	profile, found := s.profileRepo.Get(conversationID)
	if !found {
		if restored := s.restore(ctx, conversationID); restored != nil {
			profile = restored
		} else {
			profile = store.NewProfile(conversationID)
		}
	}
	replies := s.engine.HandleTurn(ctx, profile, req.Message)
	s.profileRepo.Save(profile)

	s.snapshot(ctx, profile)

	return &dto.ChatResponse{
		ConversationID: conversationID,
		Replies:        toChatReplies(replies),
	}, nil
}

// restore rehydrates a conversation from its persisted snapshot after a
// process restart. A miss or a read failure just means a fresh profile.
func (s *chatService) restore(ctx context.Context, conversationID string) *store.ConversationProfile {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	snap, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByConversationID{ConversationID: conversationID},
	)
	if err != nil {
		s.log.Warn(constant.ModuleChatService, "failed to restore conversation snapshot", map[string]interface{}{
			"conversation_id": conversationID,
			"error":           err.Error(),
		})
		return nil
	}
	if snap == nil {
		return nil
	}
	profile := snap.Profile
	return &profile
}

// snapshot persists the profile for auditing. Failure is logged, never
// surfaced; the in-memory store stays authoritative.
func (s *chatService) snapshot(ctx context.Context, profile *store.ConversationProfile) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err := uow.ConversationRepository().Save(ctx, &entity.ConversationSnapshot{
		ConversationID: profile.ConversationID,
		UserId:         profile.UserID,
		Profile:        *profile,
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		s.log.Warn(constant.ModuleChatService, "failed to snapshot conversation", map[string]interface{}{
			"conversation_id": profile.ConversationID,
			"error":           err.Error(),
		})
	}
}

func toChatReplies(replies []bot.Reply) []dto.ChatReply {
	out := make([]dto.ChatReply, 0, len(replies))
	for _, r := range replies {
		out = append(out, dto.ChatReply{
			Type:   r.Type,
			Title:  r.Title,
			Text:   r.Text,
			Images: r.Images,
		})
	}
	return out
}
