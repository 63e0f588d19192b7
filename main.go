package main

import (
	"os"
	"time"

	"SIREKAP/controllers/analisis"
	"SIREKAP/controllers/auth"
	"SIREKAP/controllers/rekap"
	"SIREKAP/controllers/scheduler"
	"SIREKAP/middlewares"
	"SIREKAP/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	models.ConnectDatabase()
	router := gin.Default()

	//Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.POST("/login", authcontroller.Login)

		api := v1.Group("/api")
		api.Use(middlewares.AuthMiddleware())
		{
			api.POST("/rekap", rekapcontrollers.RekapBulananHandler)
			api.POST("/rekap/tahunan", rekapcontrollers.RekapTahunanHandler)
			api.GET("/rekap", rekapcontrollers.GetRekapHandler)
			api.GET("/rekap/excel", rekapcontrollers.ExportExcelHandler)
			api.GET("/rekap/csv", rekapcontrollers.ExportCsvHandler)
			api.GET("/analisis", analisiscontrollers.AnalisisKehadiranHandler)
		}
	}

	// Rekap otomatis tiap tanggal 1 pukul 01:00 untuk bulan yang baru lewat.
	go func() {
		for {
			time.Sleep(time.Until(scheduler.JadwalBerikutnya(time.Now())))
			scheduler.RekapBulanLalu()
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("Server berjalan")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server berhenti")
	}
}
