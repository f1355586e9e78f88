package service

import (
	"context"
	"testing"

	"restobot-be/internal/dto"
	"restobot-be/internal/entity"
	"restobot-be/internal/repository/contract"
	"restobot-be/internal/repository/memory"
	"restobot-be/internal/repository/specification"
	"restobot-be/internal/repository/unitofwork"
	"restobot-be/pkg/bot"
	"restobot-be/pkg/nlu"
	"restobot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noneClassifier struct{}

func (noneClassifier) Classify(context.Context, string) (*nlu.Result, error) {
	return &nlu.Result{TopIntent: nlu.IntentNone}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeConversationRepo struct {
	snapshots map[string]*entity.ConversationSnapshot
	saves     int
}

func (r *fakeConversationRepo) Save(_ context.Context, snap *entity.ConversationSnapshot) error {
	r.snapshots[snap.ConversationID] = snap
	r.saves++
	return nil
}

func (r *fakeConversationRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ConversationSnapshot, error) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByConversationID); ok {
			return r.snapshots[byID.ConversationID], nil
		}
	}
	return nil, nil
}

type fakeUow struct {
	conversations *fakeConversationRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return nil }
func (u *fakeUow) RestaurantRepository() contract.RestaurantRepository   { return nil }
func (u *fakeUow) MenuItemRepository() contract.MenuItemRepository       { return nil }
func (u *fakeUow) ItemReviewRepository() contract.ItemReviewRepository   { return nil }
func (u *fakeUow) OrderRepository() contract.OrderRepository             { return nil }
func (u *fakeUow) PaymentRepository() contract.PaymentRepository         { return nil }
func (u *fakeUow) ReservationRepository() contract.ReservationRepository { return nil }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newChatHarness() (IChatService, *memory.ProfileRepository, *fakeConversationRepo) {
	conversations := &fakeConversationRepo{snapshots: map[string]*entity.ConversationSnapshot{}}
	factory := &fakeUowFactory{uow: &fakeUow{conversations: conversations}}
	engine := bot.NewEngine(noneClassifier{}, bot.Collaborators{}, nopLogger{})
	profiles := memory.NewProfileRepository()
	return NewChatService(engine, profiles, factory, nopLogger{}), profiles, conversations
}

func TestHandleMessageMintsConversationID(t *testing.T) {
	chat, profiles, conversations := newChatHarness()

	resp, err := chat.HandleMessage(context.Background(), &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ConversationID)
	assert.NotEmpty(t, resp.Replies)

	profile, found := profiles.Get(resp.ConversationID)
	require.True(t, found)
	assert.False(t, profile.IsAuthenticated)
	assert.Equal(t, 1, conversations.saves)
}

func TestHandleMessageRestoresSnapshotAfterRestart(t *testing.T) {
	chat, profiles, conversations := newChatHarness()

	const conversationID = "0d6cce42-40a2-4218-95c1-05b8d455e01e"
	conversations.snapshots[conversationID] = &entity.ConversationSnapshot{
		ConversationID: conversationID,
		UserId:         42,
		Profile: store.ConversationProfile{
			ConversationID:  conversationID,
			IsAuthenticated: true,
			UserID:          42,
			Email:           "user@example.com",
			Cart: []store.CartLine{
				{ItemID: 10, ItemName: "Margherita Pizza", Quantity: 2, UnitPrice: 349, RestaurantName: "Pizza Palace"},
			},
		},
	}

	resp, err := chat.HandleMessage(context.Background(), &dto.ChatRequest{
		ConversationID: conversationID,
		Message:        "hello again",
	})
	require.NoError(t, err)
	assert.Equal(t, conversationID, resp.ConversationID)

	profile, found := profiles.Get(conversationID)
	require.True(t, found)
	assert.True(t, profile.IsAuthenticated)
	assert.Equal(t, uint(42), profile.UserID)
	require.Len(t, profile.Cart, 1)
	assert.Equal(t, "Margherita Pizza", profile.Cart[0].ItemName)
}
