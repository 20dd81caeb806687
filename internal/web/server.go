package web

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"gopkg.in/yaml.v3"

	"snippetkit/internal/convert"
)

const (
	defaultLogoURL         = "https://get.nicejob.com/hubfs/raw_assets/public/atomhq-com/assets/images/nicejob_logo.svg"
	defaultLogoFallbackURL = "https://placehold.co/200x40/007bff/ffffff?text=NiceJob"
	defaultMaxBodyBytes    = 1 << 20
	defaultRate            = 5
	defaultBurst           = 20
)

// Parser backends selectable per request.
const (
	ParserHTML    = "html"
	ParserBrowser = "browser"
)

// Config describes server wiring and runtime behaviour.
type Config struct {
	IndexHTML       string
	LogoURL         string
	LogoFallbackURL string
	Parser          string
	ChromePath      string
	RateLimit       float64
	RateBurst       int
	CORSOrigins     []string
	MaxBodyBytes    int64
	LogoTTL         time.Duration
	Logger          *log.Logger
	Clock           func() time.Time
	HTTPClient      *http.Client
}

// fileConfig is the YAML shape accepted by LoadConfigFile.
type fileConfig struct {
	LogoURL         string   `yaml:"logo_url"`
	LogoFallbackURL string   `yaml:"logo_fallback_url"`
	Parser          string   `yaml:"parser"`
	ChromePath      string   `yaml:"chrome_path"`
	RateLimit       *float64 `yaml:"rate_limit"`
	RateBurst       *int     `yaml:"rate_burst"`
	CORSOrigins     []string `yaml:"cors_origins"`
	MaxBodyBytes    int64    `yaml:"max_body_bytes"`
	LogoTTL         string   `yaml:"logo_ttl"`
}

// DefaultConfig populates configuration from environment variables. When
// SNIPPETKIT_CONFIG names a YAML file, its values override the environment.
func DefaultConfig() Config {
	cfg := Config{
		IndexHTML:       indexHTML,
		LogoURL:         envOr("SNIPPETKIT_LOGO_URL", defaultLogoURL),
		LogoFallbackURL: envOr("SNIPPETKIT_LOGO_FALLBACK", defaultLogoFallbackURL),
		Parser:          strings.ToLower(envOr("SNIPPETKIT_PARSER", ParserHTML)),
		ChromePath:      strings.TrimSpace(os.Getenv("SNIPPETKIT_CHROME")),
		RateLimit:       defaultRate,
		RateBurst:       defaultBurst,
		MaxBodyBytes:    defaultMaxBodyBytes,
		LogoTTL:         logoTTL,
		Logger:          log.Default(),
		Clock:           time.Now,
	}
	if v := strings.TrimSpace(os.Getenv("SNIPPETKIT_RATE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.RateLimit = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("SNIPPETKIT_BURST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateBurst = n
		}
	}
	if raw := strings.TrimSpace(os.Getenv("SNIPPETKIT_CORS_ORIGINS")); raw != "" {
		cfg.CORSOrigins = splitList(raw)
	}
	if path := strings.TrimSpace(os.Getenv("SNIPPETKIT_CONFIG")); path != "" {
		if err := LoadConfigFile(path, &cfg); err != nil {
			cfg.Logger.Printf("config: %v", err)
		}
	}
	return cfg
}

// LoadConfigFile overlays the YAML file at path onto cfg. Absent keys keep
// their current values.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.LogoURL != "" {
		cfg.LogoURL = fc.LogoURL
	}
	if fc.LogoFallbackURL != "" {
		cfg.LogoFallbackURL = fc.LogoFallbackURL
	}
	if fc.Parser != "" {
		cfg.Parser = strings.ToLower(strings.TrimSpace(fc.Parser))
	}
	if fc.ChromePath != "" {
		cfg.ChromePath = fc.ChromePath
	}
	if fc.RateLimit != nil && *fc.RateLimit >= 0 {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.RateBurst != nil && *fc.RateBurst > 0 {
		cfg.RateBurst = *fc.RateBurst
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = fc.MaxBodyBytes
	}
	if fc.LogoTTL != "" {
		ttl, err := time.ParseDuration(fc.LogoTTL)
		if err != nil {
			return fmt.Errorf("parse %s: logo_ttl: %w", path, err)
		}
		cfg.LogoTTL = ttl
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Server exposes the page, the JSON API and the logo endpoint.
type Server struct {
	cfg      Config
	router   chi.Router
	handler  http.Handler
	logger   *log.Logger
	validate *validator.Validate
	limiter  *clientLimiter
	logo     *logoSource
	clock    func() time.Time

	converter *convert.Converter

	browserMu   sync.Mutex
	browser     *convert.BrowserParser
	browserConv *convert.Converter
}

// New wires a new server with the provided configuration.
func New(cfg Config) *Server {
	if cfg.IndexHTML == "" {
		cfg.IndexHTML = indexHTML
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Parser != ParserBrowser {
		cfg.Parser = ParserHTML
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 8 * time.Second}
	}
	s := &Server{
		cfg:       cfg,
		router:    chi.NewRouter(),
		logger:    cfg.Logger,
		validate:  validator.New(),
		limiter:   newClientLimiter(cfg.RateLimit, cfg.RateBurst, cfg.Clock),
		logo:      newLogoSource(cfg.LogoURL, cfg.LogoFallbackURL, cfg.HTTPClient, cfg.Logger, cfg.LogoTTL),
		clock:     cfg.Clock,
		converter: convert.New(),
	}
	s.registerRoutes()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	s.handler = withLogging(s.logger, c.Handler(s.router))
	return s
}

// NewServer builds a server from DefaultConfig.
func NewServer() *Server {
	return New(DefaultConfig())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close releases the headless browser, if one was started.
func (s *Server) Close() {
	s.browserMu.Lock()
	defer s.browserMu.Unlock()
	if s.browser != nil {
		s.browser.Close()
	}
}

func (s *Server) registerRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/ping", s.handlePing)
	s.router.Get("/logo", s.handleLogo)
	s.router.Route("/api", func(r chi.Router) {
		r.Use(rateLimit(s.limiter))
		r.Post("/encode", s.handleEncode)
		r.Post("/convert", s.handleConvert)
	})
}

// converterFor picks the backend for a request; empty means the
// configured default.
func (s *Server) converterFor(parser string) *convert.Converter {
	if parser == "" {
		parser = s.cfg.Parser
	}
	if parser != ParserBrowser {
		return s.converter
	}
	s.browserMu.Lock()
	defer s.browserMu.Unlock()
	if s.browserConv == nil {
		s.browser = convert.NewBrowserParser(s.cfg.ChromePath, s.logger)
		s.browserConv = convert.New(convert.WithParser(s.browser))
	}
	return s.browserConv
}
