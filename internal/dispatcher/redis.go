package dispatcher

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisNotifier appends each decision to a stream for activity-feed consumers.
type RedisNotifier struct {
	client streamAdder
	stream string
}

func NewRedisNotifier(url, stream string) (*RedisNotifier, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &RedisNotifier{client: redis.NewClient(options), stream: stream}, nil
}

func (n *RedisNotifier) Notify(ctx context.Context, outcome Outcome) error {
	_, err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]interface{}{
			"proposal_id":     outcome.ProposalID,
			"decision":        outcome.Decision.String(),
			"decision_method": outcome.Method.String(),
			"reasoning":       outcome.Reasoning,
		},
	}).Result()
	return err
}
