package config

import (
	"io"
	"net"
	"time"

	"github.com/charmbracelet/log"
)

// Settings are the process-level options read from the environment.
type Settings struct {
	LogLevel string
	LogFile  string // terminal client only, stderr shares the screen
	Sound    bool
	Seed     int64 // 0 picks a time based seed

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	WebHost string
	WebPort string
	WebRoot string
}

// Load reads Settings from the environment.
func Load() Settings {
	return Settings{
		LogLevel:   GetEnv("LOG_LEVEL", "info"),
		LogFile:    GetEnv("LOG_FILE", ""),
		Sound:      GetEnvBool("ASTEROIDS_SOUND", true),
		Seed:       GetEnvInt64("ASTEROIDS_SEED", 0),
		SSHHost:    GetEnv("SSH_HOST", "0.0.0.0"),
		SSHPort:    GetEnv("SSH_PORT", "23234"),
		SSHHostKey: GetEnv("SSH_HOST_KEY", ".ssh/id_ed25519"),
		WebHost:    GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort:    GetEnv("WEB_PORT", "8080"),
		WebRoot:    GetEnv("WEB_ROOT", "web"),
	}
}

// SSHAddr is the listen address of the SSH server.
func (s Settings) SSHAddr() string {
	return net.JoinHostPort(s.SSHHost, s.SSHPort)
}

// WebAddr is the listen address of the web server.
func (s Settings) WebAddr() string {
	return net.JoinHostPort(s.WebHost, s.WebPort)
}

// RandSeed returns Seed, or the current time when Seed is 0.
func (s Settings) RandSeed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger returns a timestamped logger writing to w at LogLevel. An
// unknown level falls back to info.
func (s Settings) NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
}
