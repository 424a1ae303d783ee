package main

import (
	"log"
	"os"

	"ChestVision/Cache"
	"ChestVision/CronJobs"
	"ChestVision/Models"
	"ChestVision/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Models.ConnectDataBase()
	Cache.InitRedis()

	if err := os.MkdirAll("uploads", os.ModePerm); err != nil {
		log.Fatal("cannot create uploads directory:", err)
	}
	if err := os.MkdirAll("reports", os.ModePerm); err != nil {
		log.Fatal("cannot create reports directory:", err)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"}, // Replace with your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)

	sweeper := CronJobs.NewFileSweeper(Models.DB)
	sweeper.StartSweepCron()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	router.Run(":" + port)
}
