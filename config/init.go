package config

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	initComponents()

	c := cron.New()

	return router, c, nil
}

func initComponents() {
	LoadEnv()

	ConnectDB()

	// Redis is best-effort: without it the cache layer degrades to a
	// no-op and every request goes to the database.
	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		log.Printf("Warning: Redis unavailable, cache runs in degraded mode: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized")
}
