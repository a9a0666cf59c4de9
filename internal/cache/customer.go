package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/ordering/internal/domain/customer"
	"github.com/vmihailenco/msgpack/v5"
)

const cachedCustomerTimeToLive = 10 * time.Minute

type CustomerCache interface {
	FindByID(context.Context, string) (*customer.Customer, error)
	EvictByID(context.Context, string) error
	Cache(context.Context, *customer.Customer) error
}

type redisCustomerCache struct {
	client *redis.Client
}

func NewRedisCustomerCache(client *redis.Client) CustomerCache {
	return &redisCustomerCache{client: client}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap customer.Snapshot
	if err := msgpack.Unmarshal([]byte(res), &snap); err != nil {
		return nil, err
	}

	return customer.Restore(snap)
}

func (r *redisCustomerCache) EvictByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) Cache(ctx context.Context, c *customer.Customer) error {
	snap := c.Snapshot()

	encoded, err := msgpack.Marshal(&snap)
	if err != nil {
		return err
	}

	_, err = r.client.SetNX(ctx, r.key(snap.ID), encoded, cachedCustomerTimeToLive).Result()
	if err != nil {
		return err
	}
	return nil
}

func (r *redisCustomerCache) key(id string) string {
	return fmt.Sprintf("customer:%s", id)
}
