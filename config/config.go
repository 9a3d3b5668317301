package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config estructura global de configuración de la aplicación
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Planilla PlanillaConfig `mapstructure:"planilla"`
	Semana   SemanaConfig   `mapstructure:"semana"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	BodyLimit int64      `mapstructure:"body_limit"`
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig orígenes permitidos para el front
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// PlanillaConfig planilla Excel que respalda todas las tablas
type PlanillaConfig struct {
	// Path ruta al archivo .xlsx; su ausencia es fatal al arrancar
	Path string `mapstructure:"path"`
	// CacheTTL vida de la caché de lectura por tabla
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// SemanaConfig convención de ventana semanal
// "lunes": semana lunes-domingo (por defecto); "domingo": ancla al domingo
type SemanaConfig struct {
	Convencion string `mapstructure:"convencion"`
}

// CacheConfig driver de la caché de lectura (memory | redis)
type CacheConfig struct {
	Driver string `mapstructure:"driver"`
}

// RedisConfig conexión Redis (sólo si cache.driver = redis)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig configuración de logs
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carga la configuración desde archivo y variables de entorno
// Prioridad: variables de entorno > archivo > valores por defecto
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── valores por defecto ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("planilla.path", "")
	v.SetDefault("planilla.cache_ttl", "30s")

	v.SetDefault("semana.convencion", "lunes")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── archivo de configuración ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── variables de entorno ──
	v.SetEnvPrefix("PRESTAMOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("no se pudo leer el archivo de configuración: %w", err)
		}
		// sin archivo: sólo defaults y variables de entorno
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("no se pudo interpretar la configuración: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate valida las claves críticas antes de arrancar
func (c *Config) Validate() error {
	if c.Planilla.Path == "" {
		return fmt.Errorf("configuración inválida: falta planilla.path (o la variable PRESTAMOS_PLANILLA_PATH)")
	}
	if c.Semana.Convencion != "lunes" && c.Semana.Convencion != "domingo" {
		return fmt.Errorf("configuración inválida: semana.convencion debe ser \"lunes\" o \"domingo\", recibido %q", c.Semana.Convencion)
	}
	if c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("configuración inválida: cache.driver debe ser \"memory\" o \"redis\", recibido %q", c.Cache.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuración inválida: server.port debe estar entre 1 y 65535")
	}
	if c.Planilla.CacheTTL < 0 {
		return fmt.Errorf("configuración inválida: planilla.cache_ttl no puede ser negativo")
	}
	return nil
}
