package client

import (
	"cinema_booking/config"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache read-through cho các GET catalog. Redis chết thì mọi request
// rơi thẳng xuống backend, không chặn luồng đặt vé.

var cacheClient *redis.Client
var cacheTTL = 60 * time.Second

// ConnectCache khởi tạo Redis cache, trả về nil client nếu không kết nối được
func ConnectCache() {
	addr := config.ConfigOr("REDIS_ADDR", "localhost:6379")
	db := 0
	if s := config.Config("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			db = n
		}
	}
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis cache disabled:", err)
		return
	}

	if s := config.Config("CATALOG_CACHE_TTL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cacheTTL = time.Duration(n) * time.Second
		}
	}
	cacheClient = c
	fmt.Println("Redis cache connected:", addr)
}

func cacheKey(path string) string {
	return "catalog:" + path
}

func cacheGet(ctx context.Context, path string) ([]byte, bool) {
	if cacheClient == nil {
		return nil, false
	}
	body, err := cacheClient.Get(ctx, cacheKey(path)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func cacheSet(ctx context.Context, path string, body []byte) {
	if cacheClient == nil {
		return
	}
	cacheClient.Set(ctx, cacheKey(path), body, cacheTTL)
}

// InvalidateCatalogCache xoá cache catalog, dùng khi cần refresh cưỡng bức
func InvalidateCatalogCache(ctx context.Context) {
	if cacheClient == nil {
		return
	}
	iter := cacheClient.Scan(ctx, 0, "catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		cacheClient.Del(ctx, iter.Val())
	}
}
