package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port    string `mapstructure:"port"`
		Env     string `mapstructure:"env"`
		SiteURL string `mapstructure:"site_url"`
	} `mapstructure:"app"`
	Content struct {
		ProjectID    string        `mapstructure:"project_id"`
		Dataset      string        `mapstructure:"dataset"`
		APIVersion   string        `mapstructure:"api_version"`
		Token        string        `mapstructure:"token"`
		UseCDN       bool          `mapstructure:"use_cdn"`
		BaseURL      string        `mapstructure:"base_url"`
		FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	} `mapstructure:"content"`
	Forms struct {
		Endpoint  string `mapstructure:"endpoint"`
		AccessKey string `mapstructure:"access_key"`
	} `mapstructure:"forms"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Otel struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"otel"`
}

func LoadConfig() (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("content.dataset", "production")
	viper.SetDefault("content.api_version", "2024-03-13")
	viper.SetDefault("content.use_cdn", true)
	viper.SetDefault("content.fetch_timeout", 10*time.Second)
	viper.SetDefault("forms.endpoint", "https://api.web3forms.com/submit")

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("app.site_url", "SITE_URL")
	viper.BindEnv("content.project_id", "CONTENT_PROJECT_ID")
	viper.BindEnv("content.dataset", "CONTENT_DATASET")
	viper.BindEnv("content.api_version", "CONTENT_API_VERSION")
	viper.BindEnv("content.token", "CONTENT_TOKEN")
	viper.BindEnv("content.use_cdn", "CONTENT_USE_CDN")
	viper.BindEnv("content.base_url", "CONTENT_BASE_URL")
	viper.BindEnv("content.fetch_timeout", "CONTENT_FETCH_TIMEOUT")
	viper.BindEnv("forms.endpoint", "FORMS_ENDPOINT")
	viper.BindEnv("forms.access_key", "FORMS_ACCESS_KEY")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("otel.otlp_endpoint", "OTEL_OTLP_ENDPOINT")

	err = viper.Unmarshal(&cfg)
	return
}
