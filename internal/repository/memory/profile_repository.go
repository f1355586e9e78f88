package memory

import (
	"sync"

	"github.com/patrickmn/go-cache"

	"restobot-be/pkg/store"
)

// ProfileRepository keeps conversation profiles in process memory for the
// lifetime of the server. Profiles never expire on their own; a conversation
// that goes quiet keeps its cart and step until the process restarts.
type ProfileRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		cache: cache.New(cache.NoExpiration, 0),
		locks: map[string]*sync.Mutex{},
	}
}

// GetOrCreate returns the profile for a conversation, creating the default
// unauthenticated one on first contact.
func (r *ProfileRepository) GetOrCreate(conversationID string) *store.ConversationProfile {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*store.ConversationProfile)
	}
	profile := store.NewProfile(conversationID)
	r.cache.Set(conversationID, profile, cache.NoExpiration)
	return profile
}

func (r *ProfileRepository) Get(conversationID string) (*store.ConversationProfile, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*store.ConversationProfile), true
	}
	return nil, false
}

func (r *ProfileRepository) Save(profile *store.ConversationProfile) {
	r.cache.Set(profile.ConversationID, profile, cache.NoExpiration)
}

func (r *ProfileRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}

// Lock serializes turns within one conversation. Turns from different
// conversations proceed in parallel.
func (r *ProfileRepository) Lock(conversationID string) func() {
	r.mu.Lock()
	l, ok := r.locks[conversationID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[conversationID] = l
	}
	r.mu.Unlock()
	l.Lock()
	return l.Unlock
}
