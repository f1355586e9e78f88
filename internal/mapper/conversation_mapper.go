package mapper

import (
	"encoding/json"

	"restobot-be/internal/entity"
	"restobot-be/internal/model"
	"restobot-be/pkg/store"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.ConversationSnapshot) (*entity.ConversationSnapshot, error) {
	if c == nil {
		return nil, nil
	}
	var profile store.ConversationProfile
	if len(c.Profile) > 0 {
		if err := json.Unmarshal(c.Profile, &profile); err != nil {
			return nil, err
		}
	}
	return &entity.ConversationSnapshot{
		Id:             c.Id,
		ConversationID: c.ConversationID,
		UserId:         c.UserId,
		Profile:        profile,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func (m *ConversationMapper) ToModel(c *entity.ConversationSnapshot) (*model.ConversationSnapshot, error) {
	if c == nil {
		return nil, nil
	}
	raw, err := json.Marshal(c.Profile)
	if err != nil {
		return nil, err
	}
	return &model.ConversationSnapshot{
		Id:             c.Id,
		ConversationID: c.ConversationID,
		UserId:         c.UserId,
		Profile:        raw,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}
