package config

import (
	"strings"

	"github.com/spf13/viper"
)

// AppConfig is the full application configuration tree.
type AppConfig struct {
	System   SysConfig      `mapstructure:"system" yaml:"system" json:"system"`
	Web      WebConfig      `mapstructure:"web" yaml:"web" json:"web"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" json:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog" json:"catalog"`
	Cart     CartConfig     `mapstructure:"cart" yaml:"cart" json:"cart"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger" json:"logger"`
}

type SysConfig struct {
	Appid    string `mapstructure:"appid" yaml:"appid" json:"appid"`
	Location string `mapstructure:"location" yaml:"location" json:"location"`
}

type WebConfig struct {
	Host      string `mapstructure:"host" yaml:"host" json:"host"`
	Port      int    `mapstructure:"port" yaml:"port" json:"port"`
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir" json:"static_dir"`
}

// DatabaseConfig points at the MongoDB instance backing the catalog
// and cart collections.
type DatabaseConfig struct {
	URL  string `mapstructure:"url" yaml:"url" json:"url"`
	Name string `mapstructure:"name" yaml:"name" json:"name"`
}

type CatalogConfig struct {
	// MaxFetch caps a single catalog listing; a larger catalog is
	// silently truncated.
	MaxFetch int64 `mapstructure:"max_fetch" yaml:"max_fetch" json:"max_fetch"`
}

type CartConfig struct {
	// TTLDays enables the daily purge of carts untouched for this many
	// days. Zero disables expiry entirely.
	TTLDays int `mapstructure:"ttl_days" yaml:"ttl_days" json:"ttl_days"`
}

type LoggerConfig struct {
	Mode       string `mapstructure:"mode" yaml:"mode" json:"mode"`
	FileEnable bool   `mapstructure:"file_enable" yaml:"file_enable" json:"file_enable"`
	Filename   string `mapstructure:"filename" yaml:"filename" json:"filename"`
}

// Load reads configuration from an optional YAML file plus environment
// variables. Environment keys use the DEVSHOP_ prefix with underscores
// (DEVSHOP_WEB_PORT, DEVSHOP_DATABASE_URL, ...). MONGO_URL and DB_NAME
// are also honored for compatibility with existing deployments.
func Load(cfile string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("system.appid", "devshop")
	v.SetDefault("system.location", "Europe/Moscow")
	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", 8001)
	v.SetDefault("web.static_dir", "static")
	v.SetDefault("database.url", "mongodb://127.0.0.1:27017")
	v.SetDefault("database.name", "devshop")
	v.SetDefault("catalog.max_fetch", 1000)
	v.SetDefault("cart.ttl_days", 0)
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "devshop.log")

	v.SetEnvPrefix("DEVSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfile != "" {
		v.SetConfigFile(cfile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Compatibility with the legacy dotenv deployment keys.
	legacy := viper.New()
	legacy.AutomaticEnv()
	if s := legacy.GetString("MONGO_URL"); s != "" {
		cfg.Database.URL = s
	}
	if s := legacy.GetString("DB_NAME"); s != "" {
		cfg.Database.Name = s
	}

	return &cfg, nil
}
