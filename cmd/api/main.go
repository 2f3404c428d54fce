package main

import (
	"log"
	"net/http"
	"time"

	"github.com/BelezaStudio/salon-agenda-api/internal/config"
	dbpkg "github.com/BelezaStudio/salon-agenda-api/internal/db"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/infra/lock"
	"github.com/BelezaStudio/salon-agenda-api/internal/middleware"
	"github.com/BelezaStudio/salon-agenda-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var locker domain.Locker = lock.NewNoopLocker()
	if cfg.RedisAddr != "" {
		rdb, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		locker = lock.NewRedisSlotLocker(rdb, 10*time.Second)
	} else {
		log.Println("REDIS_ADDR not set, slot locking disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORS(middleware.DefaultCORS()))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
