package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS      CORSConfig
	Log       LogConfig
	Schedules SchedulesConfig
	Geography GeographyConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SchedulesConfig governs schedule session retention and the standby pool.
type SchedulesConfig struct {
	SessionTTL time.Duration
	PoolDJs    []string
}

// GeographyConfig carries the venue/area layout and travel-time tables.
// When File is set it is read as YAML and replaces the built-in defaults.
type GeographyConfig struct {
	File                 string
	DefaultTravelMinutes int               `mapstructure:"defaultTravelMinutes"`
	IntraAreaMinutes     int               `mapstructure:"intraAreaMinutes"`
	VenueAreas           map[string]string `mapstructure:"venueAreas"`
	AreaTravel           []TravelPair      `mapstructure:"areaTravel"`
	VenueTravel          []TravelPair      `mapstructure:"venueTravel"`
}

// TravelPair is one directed entry of a travel table; tables are
// symmetrized at construction time.
type TravelPair struct {
	From    string `mapstructure:"from"`
	To      string `mapstructure:"to"`
	Minutes int    `mapstructure:"minutes"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Schedules = SchedulesConfig{
		SessionTTL: parseDuration(v.GetString("SCHEDULE_SESSION_TTL"), 2*time.Hour),
		PoolDJs:    splitAndTrim(v.GetString("POOL_DJS")),
	}

	geo, err := loadGeography(v.GetString("GEOGRAPHY_FILE"))
	if err != nil {
		return nil, err
	}
	cfg.Geography = *geo

	return cfg, nil
}

// loadGeography reads the travel layout from a YAML file, falling back to
// the built-in Seoul club layout when no file is configured.
func loadGeography(path string) (*GeographyConfig, error) {
	geo := defaultGeography()
	if path == "" {
		return geo, nil
	}

	gv := viper.New()
	gv.SetConfigFile(path)
	gv.SetConfigType("yaml")
	if err := gv.ReadInConfig(); err != nil {
		return nil, err
	}
	loaded := &GeographyConfig{}
	if err := gv.Unmarshal(loaded); err != nil {
		return nil, err
	}
	if loaded.DefaultTravelMinutes <= 0 {
		loaded.DefaultTravelMinutes = geo.DefaultTravelMinutes
	}
	if loaded.IntraAreaMinutes <= 0 {
		loaded.IntraAreaMinutes = geo.IntraAreaMinutes
	}
	loaded.File = path
	return loaded, nil
}

func defaultGeography() *GeographyConfig {
	return &GeographyConfig{
		DefaultTravelMinutes: 30,
		IntraAreaMinutes:     5,
		VenueAreas: map[string]string{
			"Day and Night": "Itaewon",
			"Code Lounge":   "Apgujeong",
			"A.P. Lounge":   "Apgujeong",
		},
		AreaTravel: []TravelPair{
			{From: "Itaewon", To: "Apgujeong", Minutes: 30},
		},
		VenueTravel: []TravelPair{
			{From: "Code Lounge", To: "Day and Night", Minutes: 10},
			{From: "Code Lounge", To: "Stay Lounge", Minutes: 15},
			{From: "Day and Night", To: "Stay Lounge", Minutes: 20},
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SCHEDULE_SESSION_TTL", "2h")
	v.SetDefault("POOL_DJS", "Xiid")
	v.SetDefault("GEOGRAPHY_FILE", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
