package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// SubscriberRepository persists the chats subscribed to daily reminders.
type SubscriberRepository struct {
	blob blob
}

func NewSubscriberRepository(store KeyValueStore, codec storage.Codec, logger *zap.Logger) *SubscriberRepository {
	return &SubscriberRepository{blob: blob{store: store, codec: codec, key: SubscribersKey, logger: logger}}
}

// Load returns subscriptions keyed by chat ID.
func (r *SubscriberRepository) Load(ctx context.Context) map[int64]entities.ReminderSubscription {
	var list []entities.ReminderSubscription
	subs := make(map[int64]entities.ReminderSubscription)
	if !r.blob.load(ctx, &list) {
		return subs
	}

	for _, s := range list {
		subs[s.ChatID] = s
	}
	return subs
}

// Save stores subscriptions ordered by chat ID.
func (r *SubscriberRepository) Save(ctx context.Context, subs map[int64]entities.ReminderSubscription) error {
	list := make([]entities.ReminderSubscription, 0, len(subs))
	for _, s := range subs {
		list = append(list, s)
	}
	slices.SortFunc(list, func(a, b entities.ReminderSubscription) int {
		return cmp.Compare(a.ChatID, b.ChatID)
	})

	if err := r.blob.save(ctx, list); err != nil {
		return fmt.Errorf("save subscribers: %w", err)
	}
	return nil
}
