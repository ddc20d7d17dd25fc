package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWT struct {
		Secret       string
		ExpiresHours int
	}

	SMTP struct {
		Host string
		Port int
		User string
		Pass string
		From string
	}

	OtpTTLMinutes int

	StorageBackend string
	UploadDir      string
	PublicBaseURL  string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "cashit"),
		MySQLUser: getenv("MYSQL_USER", "cashit"),
		MySQLPass: getenv("MYSQL_PASS", "cashit"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		OtpTTLMinutes: getenvInt("OTP_TTL_MINUTES", 10),

		StorageBackend: getenv("STORAGE_BACKEND", "local"),
		UploadDir:      getenv("UPLOAD_DIR", "public/uploads"),
		PublicBaseURL:  getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	c.JWT.Secret = getenv("JWT_SECRET", "")
	c.JWT.ExpiresHours = getenvInt("JWT_EXPIRES_HOURS", 24)

	c.SMTP.Host = getenv("SMTP_HOST", "smtp.gmail.com")
	c.SMTP.Port = getenvInt("SMTP_PORT", 587)
	c.SMTP.User = getenv("SMTP_USER", "")
	c.SMTP.Pass = getenv("SMTP_PASS", "")
	c.SMTP.From = getenv("SMTP_FROM", c.SMTP.User)

	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWT.Secret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
