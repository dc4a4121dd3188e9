package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// PruneSessionsHandler sweeps chat session keys that lost their TTL,
// which can happen after a Redis restore from an RDB snapshot.
type PruneSessionsHandler struct {
	redis *redis.Client
}

func NewPruneSessionsHandler(redisClient *redis.Client) *PruneSessionsHandler {
	return &PruneSessionsHandler{redis: redisClient}
}

func (h *PruneSessionsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var pruned int

	iter := h.redis.Scan(ctx, 0, "chat:session:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		ttl, err := h.redis.TTL(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("TTL check failed during chat session prune")
			continue
		}

		// -1 means the key has no expiry.
		if ttl == -1 {
			if err := h.redis.Del(ctx, key).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to delete orphaned chat session")
				continue
			}
			pruned++
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	log.Info().Int("pruned", pruned).Msg("Chat session prune completed")
	return nil
}
