package support

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/weegigs/wee-webapp-go/we"
)

type Config struct {
	Port      int    `envconfig:"PORT" default:"8080"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./static"`
	IndexFile string `envconfig:"INDEX_FILE" default:"index.html"`
	Greeting  string `envconfig:"GREETING" default:"Hello from the wee web app"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// TraceExporter is one of none, console, otlp or jaeger.
	TraceExporter  string `envconfig:"TRACE_EXPORTER" default:"none"`
	OTLPEndpoint   string `envconfig:"OTLP_ENDPOINT" default:"localhost:4317"`
	OTLPSecure     bool   `envconfig:"OTLP_SECURE" default:"false"`
	JaegerEndpoint string `envconfig:"JAEGER_ENDPOINT" default:"http://localhost:14268/api/traces"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`

	ListenAttempts  uint          `envconfig:"LISTEN_ATTEMPTS" default:"3"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// LoadConfig reads the process environment. It does not validate; see Config.Validate.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, we.Startup("config", errors.Wrap(err, "failed to process environment"))
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return we.Startup("config", errors.Errorf("invalid port %d", cfg.Port))
	}

	switch cfg.TraceExporter {
	case "none", "console", "otlp", "jaeger":
	default:
		return we.Startup("config", errors.Errorf("unknown trace exporter %q", cfg.TraceExporter))
	}

	if cfg.ListenAttempts == 0 {
		return we.Startup("config", errors.New("listen attempts must be at least 1"))
	}

	info, err := os.Stat(cfg.StaticDir)
	if err != nil {
		return we.Startup("static", errors.Wrapf(err, "static directory %s unavailable", cfg.StaticDir))
	}
	if !info.IsDir() {
		return we.Startup("static", errors.Errorf("static directory %s is not a directory", cfg.StaticDir))
	}

	return nil
}
