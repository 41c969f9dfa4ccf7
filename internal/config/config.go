package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const ssmTokenParam = "/poweron-notifier/prod/telegram-token" //nolint:gosec // parameter name, not a credential

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/poweron-notifier.db"`

	APIURL       string `envconfig:"API_URL" default:"https://api-poweron.toe.com.ua/api/a_gpv_g"`
	CityID       int    `envconfig:"CITY_ID" default:"21005"`
	DefaultGroup string `envconfig:"DEFAULT_GROUP" default:"3.2"`
	Timezone     string `envconfig:"TIMEZONE" default:"Europe/Kyiv"`

	FetchInterval   time.Duration `envconfig:"FETCH_INTERVAL" default:"10m"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"30m"`
	SendDelay       time.Duration `envconfig:"SEND_DELAY" default:"50ms"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	BanDuration     time.Duration `envconfig:"BAN_DURATION" default:"5m"`

	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`

	CalendarEnabled         bool          `envconfig:"CALENDAR_ENABLED" default:"false"`
	CalendarID              string        `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string        `envconfig:"CALENDAR_CREDENTIALS_PATH"`
	CalendarSyncInterval    time.Duration `envconfig:"CALENDAR_SYNC_INTERVAL" default:"15m"`
}

func New(ctx context.Context) (*Config, error) {
	// .env is optional and dev-only; absence is not an error
	_ = godotenv.Load()

	res := &Config{}
	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev {
		if res.TelegramToken == "" {
			return nil, errors.New("telegram token is required")
		}
		return res, nil
	}

	token, err := getSSMToken(ctx)
	if err != nil {
		return nil, err
	}
	res.TelegramToken = token

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(ssmTokenParam),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM token not found")
	}

	return *param.Parameter.Value, nil
}
