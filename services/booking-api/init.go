package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/im-hotel/booking-backend/pkg/db"
	emailsending "github.com/im-hotel/booking-backend/pkg/messaging/email-sending"
	smtpclient "github.com/im-hotel/booking-backend/pkg/smtp-client"
	usermanagement "github.com/im-hotel/booking-backend/pkg/user-management"
	"github.com/im-hotel/booking-backend/pkg/user-management/pwhash"
	"github.com/im-hotel/booking-backend/pkg/utils"

	bookingDB "github.com/im-hotel/booking-backend/pkg/db/booking"
	userDB "github.com/im-hotel/booking-backend/pkg/db/user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_USER_DB_USERNAME    = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD    = "USER_DB_PASSWORD"
	ENV_BOOKING_DB_USERNAME = "BOOKING_DB_USERNAME"
	ENV_BOOKING_DB_PASSWORD = "BOOKING_DB_PASSWORD"

	ENV_SMTP_USERNAME = "SMTP_USERNAME"
	ENV_SMTP_PASSWORD = "SMTP_PASSWORD"

	ENV_USER_JWT_SIGN_KEY = "USER_JWT_SIGN_KEY"
)

type BookingApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			BcryptCost int `json:"bcrypt_cost" yaml:"bcrypt_cost"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		UserJWTConfig struct {
			SignKey   string        `json:"sign_key" yaml:"sign_key"`
			ExpiresIn time.Duration `json:"expires_in" yaml:"expires_in"`
		} `json:"user_jwt_config" yaml:"user_jwt_config"`
		MaxNewUsersPer5Minutes int `json:"max_new_users_per_5_minutes" yaml:"max_new_users_per_5_minutes"`
	} `json:"user_management_config" yaml:"user_management_config"`

	// DB configs
	DBConfigs struct {
		UserDB    db.DBConfigYaml `json:"user_db" yaml:"user_db"`
		BookingDB db.DBConfigYaml `json:"booking_db" yaml:"booking_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Website configs, used in outgoing emails
	WebsiteConfigs struct {
		BaseURL  string `json:"base_url" yaml:"base_url"`
		Currency string `json:"currency" yaml:"currency"`
	} `json:"website_configs" yaml:"website_configs"`

	MessagingConfigs struct {
		SmtpServers smtpclient.SmtpServerList `json:"smtp_servers" yaml:"smtp_servers"`
	} `json:"messaging_configs" yaml:"messaging_configs"`
}

var (
	userDBService    *userDB.UserDBService
	bookingDBService *bookingDB.BookingDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	if conf.UserManagementConfig.UserJWTConfig.SignKey == "" {
		slog.Error("JWT sign key not set")
		panic("JWT sign key not set")
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	pwhash.InitBcryptCost(conf.UserManagementConfig.PWHashing.BcryptCost)

	// init user management
	usermanagement.Init(userDBService)

	// init message sending config
	initMessageSendingConfig()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_BOOKING_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.BookingDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_BOOKING_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.BookingDB.Password = dbPassword
	}

	if smtpUsername := os.Getenv(ENV_SMTP_USERNAME); smtpUsername != "" {
		for i := range conf.MessagingConfigs.SmtpServers.Servers {
			conf.MessagingConfigs.SmtpServers.Servers[i].SetUsername(smtpUsername)
		}
	}

	if smtpPassword := os.Getenv(ENV_SMTP_PASSWORD); smtpPassword != "" {
		for i := range conf.MessagingConfigs.SmtpServers.Servers {
			conf.MessagingConfigs.SmtpServers.Servers[i].SetPassword(smtpPassword)
		}
	}

	if jwtSignKey := os.Getenv(ENV_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.UserManagementConfig.UserJWTConfig.SignKey = jwtSignKey
	}
}

func initDBs() {
	var err error
	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		panic(err)
	}

	bookingDBService, err = bookingDB.NewBookingDBService(db.DBConfigFromYamlObj(conf.DBConfigs.BookingDB))
	if err != nil {
		slog.Error("Error connecting to Booking DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initMessageSendingConfig() {
	smtpClients, err := smtpclient.NewSmtpClients(conf.MessagingConfigs.SmtpServers)
	if err != nil {
		slog.Error("Error setting up smtp clients", slog.String("error", err.Error()))
		panic(err)
	}

	emailsending.InitMessageSendingVariables(
		smtpClients,
		map[string]string{
			"websiteURL": conf.WebsiteConfigs.BaseURL,
			"currency":   conf.WebsiteConfigs.Currency,
		},
	)
}
