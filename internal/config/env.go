package config

// Env holds the non-database settings the server needs at startup.
type Env struct {
	Addr          string
	SessionSecret string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	UploadDir     string
}

func LoadEnv() Env {
	return Env{
		Addr:          ":" + getEnv("PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "your-secret-key-change-this"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@safaritours.local"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
	}
}
