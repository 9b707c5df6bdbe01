package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// SystemAccountCodes holds the chart-of-accounts codes the posting rules
// resolve at runtime. Seeded by the initial migration; a deployment may remap
// them through environment variables.
type SystemAccountCodes struct {
	Cash               string
	AccountsReceivable string
	TaxReceivable      string
	Inventory          string
	AccountsPayable    string
	TaxPayable         string
	SalesRevenue       string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Posting defaults
	DefaultTaxRate decimal.Decimal
	SystemAccounts SystemAccountCodes

	// Cash flow statement tuning: accounts whose code starts with this
	// prefix, or whose name contains "cash" or "bank", count as cash.
	CashAccountCodePrefix string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "openbooks")
	viper.SetDefault("DEFAULT_TAX_RATE", "0.11")
	viper.SetDefault("ACCOUNT_CODE_CASH", "1000")
	viper.SetDefault("ACCOUNT_CODE_ACCOUNTS_RECEIVABLE", "1200")
	viper.SetDefault("ACCOUNT_CODE_TAX_RECEIVABLE", "1300")
	viper.SetDefault("ACCOUNT_CODE_INVENTORY", "1400")
	viper.SetDefault("ACCOUNT_CODE_ACCOUNTS_PAYABLE", "2100")
	viper.SetDefault("ACCOUNT_CODE_TAX_PAYABLE", "2300")
	viper.SetDefault("ACCOUNT_CODE_SALES_REVENUE", "4000")
	viper.SetDefault("CASH_ACCOUNT_CODE_PREFIX", "10")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION %q, defaulting to 1h\n", jwtExpiryStr)
		jwtExpiry = time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry

	taxRateStr := viper.GetString("DEFAULT_TAX_RATE")
	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil || taxRate.IsNegative() {
		log.Printf("Warning: invalid DEFAULT_TAX_RATE %q, defaulting to 0.11\n", taxRateStr)
		taxRate = decimal.NewFromFloat(0.11)
	}
	cfg.DefaultTaxRate = taxRate

	cfg.SystemAccounts = SystemAccountCodes{
		Cash:               viper.GetString("ACCOUNT_CODE_CASH"),
		AccountsReceivable: viper.GetString("ACCOUNT_CODE_ACCOUNTS_RECEIVABLE"),
		TaxReceivable:      viper.GetString("ACCOUNT_CODE_TAX_RECEIVABLE"),
		Inventory:          viper.GetString("ACCOUNT_CODE_INVENTORY"),
		AccountsPayable:    viper.GetString("ACCOUNT_CODE_ACCOUNTS_PAYABLE"),
		TaxPayable:         viper.GetString("ACCOUNT_CODE_TAX_PAYABLE"),
		SalesRevenue:       viper.GetString("ACCOUNT_CODE_SALES_REVENUE"),
	}
	cfg.CashAccountCodePrefix = viper.GetString("CASH_ACCOUNT_CODE_PREFIX")

	return cfg, nil
}
