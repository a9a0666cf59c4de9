package infra

import (
	"context"
	"fmt"

	"github.com/umalmyha/ordering/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func MongoURI(cfg config.MongoCfg) string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.MaxPoolSize)
}

func Mongodb(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoURI(cfg)))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
