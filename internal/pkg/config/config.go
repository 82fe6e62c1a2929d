package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, API keys)
// - default: Values common across all environments (timezone, timeouts, freshness windows)
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"

	DealsSourceCatalog  = "catalog"
	DealsSourceProvider = "provider"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	SerpAPI SerpAPIConfig
	Cache   CacheConfig
	Deals   DealsConfig
	Scraper ScraperConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type MongoConfig struct {
	URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"MONGO_DATABASE" default:"shopcompare"`
}

// Empty Addr disables the shared provider-call budget.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
	File           string `envconfig:"LOG_FILE"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"64"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"7"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN"`
	Secure        bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite      string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	SessionMaxAge time.Duration `envconfig:"COOKIE_SESSION_MAX_AGE" default:"720h"`
}

type SerpAPIConfig struct {
	APIKey       string        `envconfig:"SERP_API_KEY" required:"true"`
	BaseURL      string        `envconfig:"SERP_API_BASE_URL" default:"https://serpapi.com/search.json"`
	Timeout      time.Duration `envconfig:"SERP_API_TIMEOUT" default:"15s"`
	Location     string        `envconfig:"SERP_API_LOCATION" default:"India"`
	Language     string        `envconfig:"SERP_API_HL" default:"en"`
	Country      string        `envconfig:"SERP_API_GL" default:"in"`
	Budget       int           `envconfig:"SERP_API_BUDGET" default:"100"`
	BudgetWindow time.Duration `envconfig:"SERP_API_BUDGET_WINDOW" default:"1h"`
}

// One freshness policy per cached resource type.
type CacheConfig struct {
	ProductFreshness time.Duration `envconfig:"CACHE_PRODUCT_FRESHNESS" default:"1h"`
	DealRecent       time.Duration `envconfig:"CACHE_DEAL_RECENT" default:"6h"`
	DealRetention    time.Duration `envconfig:"CACHE_DEAL_RETENTION" default:"24h"`
}

type DealsConfig struct {
	Source        string `envconfig:"DEALS_SOURCE" default:"catalog"`
	PruneSchedule string `envconfig:"DEALS_PRUNE_SCHEDULE" default:"@hourly"`
	TimeZone      string `envconfig:"DEALS_TIMEZONE" default:"Asia/Kolkata"`
}

type ScraperConfig struct {
	Timeout   time.Duration `envconfig:"ORDER_SCRAPER_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"ORDER_SCRAPER_USER_AGENT" default:"Mozilla/5.0 (compatible; shopcompare/1.0)"`
	// AllowPrivateNetworks lets the scraper dial loopback, private and
	// link-local addresses. Only local setups should enable it.
	AllowPrivateNetworks bool `envconfig:"ORDER_SCRAPER_ALLOW_PRIVATE_NETWORKS" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMongo, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Deals.Source {
	case DealsSourceCatalog, DealsSourceProvider:
	default:
		return fmt.Errorf("unknown DEALS_SOURCE %q", c.Deals.Source)
	}

	if c.Cache.DealRecent > c.Cache.DealRetention {
		return fmt.Errorf("CACHE_DEAL_RECENT (%s) must not exceed CACHE_DEAL_RETENTION (%s)", c.Cache.DealRecent, c.Cache.DealRetention)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			SessionMaxAge: 30 * 24 * time.Hour,
		},
		SerpAPI: SerpAPIConfig{
			APIKey:       "test-key",
			BaseURL:      "http://127.0.0.1:0/search.json",
			Timeout:      2 * time.Second,
			Location:     "India",
			Language:     "en",
			Country:      "in",
			Budget:       100,
			BudgetWindow: time.Hour,
		},
		Cache: CacheConfig{
			ProductFreshness: time.Hour,
			DealRecent:       6 * time.Hour,
			DealRetention:    24 * time.Hour,
		},
		Deals: DealsConfig{
			Source:        DealsSourceCatalog,
			PruneSchedule: "@hourly",
			TimeZone:      "UTC",
		},
		Scraper: ScraperConfig{
			Timeout:   2 * time.Second,
			UserAgent: "shopcompare-test",
		},
	}
}
