package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds all runtime configuration, loaded from the environment.
type App struct {
	// Network
	Addr string `envconfig:"ADDR" default:":5001"`
	// Store
	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	MongoDB  string `envconfig:"MONGODB_DATABASE" default:"foodbridge"`
	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// CORS: the single browser origin allowed to call the API
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	Env string `envconfig:"APP_ENV" default:"development"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// Production reports whether the process runs with production error masking.
func (c App) Production() bool {
	return c.Env == "production"
}
