package internal

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultRunAddress  = "localhost:8080"
	defaultDatabaseURI = "host=localhost port=5432 user=postgres password=12345 dbname=pedidos sslmode=disable"
	defaultLoginPath   = "/b1s/v1/Login"
	defaultOrdersPath  = "/b1s/v1/Orders"
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	HanaURI     string `env:"HANA_URI"`

	SapBaseURL    string `env:"SAP_BASE_URL"`
	SapLoginPath  string `env:"SAP_LOGIN_PATH"`
	SapOrdersPath string `env:"SAP_ORDERS_PATH"`
	SapCompanyDB  string `env:"SAP_COMPANY_DB"`
	SapUser       string `env:"SAP_USER"`
	SapPassword   string `env:"SAP_PASSWORD"`

	// Fallback document dates, used when the order timestamps are NULL.
	// Empty means "today".
	DocDate    string `env:"SAP_DOC_DATE"`
	DocDueDate string `env:"SAP_DOC_DUE_DATE"`

	HTTPTimeout   time.Duration `env:"SAP_HTTP_TIMEOUT"`
	SkipTLSVerify bool          `env:"SAP_SKIP_TLS_VERIFY"`
	SyncInterval  time.Duration `env:"SYNC_INTERVAL"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	flag.StringVar(&c.RunAddress, "a", defaultRunAddress, "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", defaultDatabaseURI, "postgres connection string")
	flag.StringVar(&c.HanaURI, "h", "", "SAP HANA connection string, empty disables catalog sync")
	flag.StringVar(&c.SapBaseURL, "s", "", "SAP Service Layer base url")
	flag.Parse()

	c.SapLoginPath = defaultLoginPath
	c.SapOrdersPath = defaultOrdersPath
	c.SapCompanyDB = "SBO_EC_SL_TEST"
	c.SapUser = "SISTEMAS2"
	c.SapPassword = "2022"
	c.HTTPTimeout = 30 * time.Second
	c.SkipTLSVerify = true // Service Layer runs with a self-signed cert
	c.SyncInterval = 5 * time.Minute

	if err := env.Parse(c); err != nil {
		return nil, err
	}

	if c.DocDate == "" {
		c.DocDate = time.Now().Format("2006-01-02")
	}
	if c.DocDueDate == "" {
		c.DocDueDate = time.Now().Format("2006-01-02")
	}

	return c, nil
}
