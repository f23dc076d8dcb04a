package main

import (
	"ShowFolio/config"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/storage"
	"ShowFolio/router"
	"ShowFolio/utils"
)

// main initializes services and starts the HTTP server.
func main() {
	config.InitConfig()
	repo.InitMysql()
	repo.InitRedis()
	storage.InitMinio()
	utils.InitCacheManager()

	router := router.InitRouter()

	router.Run(":8000")
}
