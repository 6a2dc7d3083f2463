package config

import "time"

type ServiceConfig struct {
	Name                string  `yaml:"name"`
	Environment         string  `yaml:"environment"`
	Version             string  `yaml:"version"`
	ClientURL           string  `yaml:"client_url"`
	JWTSecret           string  `yaml:"jwt_secret"`
	StripeSecretKey     string  `yaml:"stripe_secret_key"`
	StripeWebhookSecret string  `yaml:"stripe_webhook_secret"`
	PlatformFeePercent  float64 `yaml:"platform_fee_percent"`
	ProcessorFeePercent float64 `yaml:"processor_fee_percent"`
	ProcessorFeeFixed   float64 `yaml:"processor_fee_fixed"`
	GeoDBPath           string  `yaml:"geo_db_path"`
}

type StorageConfig struct {
	Region        string `yaml:"region"`
	Bucket        string `yaml:"bucket"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// FraudConfig controls the donation admission heuristics.
type FraudConfig struct {
	MaxDonationsPerIP    int           `yaml:"max_donations_per_ip"`
	IPWindow             time.Duration `yaml:"ip_window"`
	LargeAmountThreshold float64       `yaml:"large_amount_threshold"`
	StaleDonationAge     time.Duration `yaml:"stale_donation_age"`
	SweepInterval        time.Duration `yaml:"sweep_interval"`
}

func (c *FraudConfig) applyDefaults() {
	if c.MaxDonationsPerIP == 0 {
		c.MaxDonationsPerIP = 5
	}
	if c.IPWindow == 0 {
		c.IPWindow = time.Hour
	}
	if c.LargeAmountThreshold == 0 {
		c.LargeAmountThreshold = 10000
	}
	if c.StaleDonationAge == 0 {
		c.StaleDonationAge = 24 * time.Hour
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = time.Hour
	}
}
