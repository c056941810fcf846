package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitApp khởi tạo router và các thành phần dùng chung
func InitApp() (*gin.Engine, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	return router, nil
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %v", err)
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// Không có Redis thì phiên chỉ sống trong bộ nhớ; gateway vẫn chạy được
		log.Printf("Warning: không kết nối được Redis, phiên sẽ không được khôi phục sau restart: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}
