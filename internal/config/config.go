package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Redis      Redis
	Prometheus Prometheus
	S3         S3
	Auth       Auth
}

type HTTPServer struct {
	Address        string
	Port           int
	AllowedOrigins []string
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Prometheus struct {
	Address string
	Port    int
}

type S3 struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

type Auth struct {
	JWTSecret string
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.allowed_origins", []string{"http://localhost:5173"})

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "blog-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "blogservice")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.region", "auto")
	viper.SetDefault("s3.access_key_id", "")
	viper.SetDefault("s3.secret_access_key", "")
	viper.SetDefault("s3.bucket", "blog-images")
	viper.SetDefault("s3.public_base_url", "http://localhost:9000/blog-images")

	viper.SetDefault("auth.jwt_secret", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        viper.GetString("http_server.address"),
			Port:           viper.GetInt("http_server.port"),
			AllowedOrigins: viper.GetStringSlice("http_server.allowed_origins"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		S3: S3{
			Endpoint:        viper.GetString("s3.endpoint"),
			Region:          viper.GetString("s3.region"),
			AccessKeyID:     viper.GetString("s3.access_key_id"),
			SecretAccessKey: viper.GetString("s3.secret_access_key"),
			Bucket:          viper.GetString("s3.bucket"),
			PublicBaseURL:   viper.GetString("s3.public_base_url"),
		},
		Auth: Auth{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
	}

	return config
}
