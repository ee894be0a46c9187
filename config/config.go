package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func init() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("SWEETSHOP_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("SWEETSHOP_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("SWEETSHOP_LISTEN")
	if listen == "" {
		listen = "0.0.0.0"
	}
	return listen
}

func GetPort() string {
	port := os.Getenv("SWEETSHOP_PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("SWEETSHOP_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("SWEETSHOP_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "logs"
	}
	return logFolderPath
}

func GetResetSecret() string {
	secret := os.Getenv("SWEETSHOP_RESET_SECRET")
	if secret == "" {
		secret = "reset123"
	}
	return secret
}

func GetCORSOrigin() string {
	origin := os.Getenv("SWEETSHOP_CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}

// HashPasswords switches credential storage from the legacy plaintext scheme
// to bcrypt. Off by default to stay compatible with databases created by
// older versions.
func HashPasswords() bool {
	return os.Getenv("SWEETSHOP_HASH_PASSWORDS") == "true"
}
