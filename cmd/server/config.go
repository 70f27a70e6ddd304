package main

import "time"

type Config struct {
	Host           string        `env:"HOST,default=localhost"`
	Port           int           `env:"PORT,default=8080"`
	BackendURL     string        `env:"BACKEND_URL,required=true"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT,default=120s"`
	CookieSecret   string        `env:"COOKIE_SECRET,required=true"`
	CookieSecure   bool          `env:"COOKIE_SECURE,default=true"`
	SessionTTL     time.Duration `env:"SESSION_TTL,default=24h"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	MaxUploadSize  int64         `env:"MAX_UPLOAD_SIZE,default=10485760"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
}
