package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
	uploadDirEnvKey     = "UPLOAD_DIR"
	adminUserEnvKey     = "ADMIN_USERNAME"
	adminPassEnvKey     = "ADMIN_PASSWORD"
)

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
	UploadDir       string
	// optional credentials for provisioning the initial user at startup
	AdminUsername string
	AdminPassword string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	uploadDir, ok := os.LookupEnv(uploadDirEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, uploadDirEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
		UploadDir:       uploadDir,
		AdminUsername:   os.Getenv(adminUserEnvKey),
		AdminPassword:   os.Getenv(adminPassEnvKey),
	}, nil
}
