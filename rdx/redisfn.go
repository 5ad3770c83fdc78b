package rdx

import (
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"planetholiday/globals"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// RdxGet returns the cached value for key, or "" on miss or error.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Println("Redis GET error:", err)
		return "", err
	}
	return val, nil
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 60*time.Second).Err()
}

func RdxDel(keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(globals.Ctx, keys...).Err(); err != nil {
		log.Println("Redis DEL error:", err)
	}
}
