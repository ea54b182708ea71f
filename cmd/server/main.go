package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	logrus "github.com/sirupsen/logrus"

	"safari_tours/internal/config"
	"safari_tours/internal/controllers"
	"safari_tours/internal/logger"
	"safari_tours/internal/routes"
	"safari_tours/internal/seed"
	"safari_tours/internal/session"
	"safari_tours/internal/storage"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	env := config.LoadEnv()

	// Connect to the database
	config.InitDB()
	db := config.GetDB()

	store := storage.NewGormStore(db)
	if err := seed.Run(store); err != nil {
		logrus.WithError(err).Warn("seeding failed")
	}

	sessionStore := session.NewGormStore(db)
	sessions := session.NewManager(sessionStore, env.SessionSecret, 24*time.Hour)

	auth, err := controllers.NewAuthController(sessions, env.AdminUsername, env.AdminPassword, env.AdminEmail)
	if err != nil {
		log.Fatalf("failed to set up admin auth: %v", err)
	}

	// Expired sessions are pruned in the background.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 30m", func() {
		if err := sessionStore.Prune(); err != nil {
			logrus.WithError(err).Warn("session prune failed")
		}
	}); err != nil {
		log.Fatalf("failed to schedule session pruning: %v", err)
	}
	scheduler.Start()

	r := routes.SetupRouter(routes.Deps{
		Store:     store,
		Sessions:  sessions,
		Auth:      auth,
		UploadDir: env.UploadDir,
	})

	log.Printf("🚀 Server running at %s", env.Addr)
	log.Fatal(r.Run(env.Addr))
}
