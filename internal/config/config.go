package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when neither the environment nor the config file sets a
// value. The client and fallback product ids come from the invoicing side.
const (
	DefaultBaseURL    = "https://api.jotform.com"
	DefaultClientID   = "1754"
	DefaultProductID  = "2215"
	DefaultDBPath     = "orders.db"
	DefaultOutputDir  = "outputs"
	DefaultListenAddr = ":8080"
)

// Config carries everything one pipeline run needs. It is built once at
// startup and passed in explicitly; nothing in the pipeline reads globals.
type Config struct {
	APIKey       string `toml:"api_key"`
	BaseURL      string `toml:"base_url"`
	FormID       string `toml:"form_id"`
	SubmissionID string `toml:"submission_id"`
	ClientID     string `toml:"client_id"`

	// ProductIDs maps product-code prefixes (text before '-') to the
	// invoicing system's product ids.
	ProductIDs       map[string]string `toml:"product_ids"`
	DefaultProductID string            `toml:"default_product_id"`

	// LineListCustomers are emails that must receive per-row line lists
	// instead of collapsed bulk orders.
	LineListCustomers []string `toml:"line_list_customers"`

	DBPath     string `toml:"db_path"`
	OutputDir  string `toml:"output_dir"`
	ListenAddr string `toml:"listen_addr"`

	lineListSet map[string]struct{}
}

// Load builds a Config from an optional TOML file overlaid with environment
// variables. Environment values win over file values.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:          DefaultBaseURL,
		ClientID:         DefaultClientID,
		DefaultProductID: DefaultProductID,
		DBPath:           DefaultDBPath,
		OutputDir:        DefaultOutputDir,
		ListenAddr:       DefaultListenAddr,
		ProductIDs:       map[string]string{},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.buildLineListSet()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&c.APIKey, "JOTFORM_API_KEY")
	setIfPresent(&c.BaseURL, "JOTFORM_BASE_URL")
	setIfPresent(&c.FormID, "FORM_ID")
	setIfPresent(&c.SubmissionID, "SUBMISSION_ID")
	setIfPresent(&c.ClientID, "CLIENT_ID")
	setIfPresent(&c.DefaultProductID, "DEFAULT_PRODUCT_ID")
	setIfPresent(&c.DBPath, "DB_PATH")
	setIfPresent(&c.OutputDir, "OUTPUT_DIR")
	setIfPresent(&c.ListenAddr, "LISTEN_ADDR")

	// PRODUCT_IDS is a JSON object, the shape the workflow platform passes
	if v := os.Getenv("PRODUCT_IDS"); v != "" {
		ids := map[string]string{}
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			return fmt.Errorf("PRODUCT_IDS is not a valid JSON object: %w", err)
		}
		c.ProductIDs = ids
	}

	// LINE_LIST_CUSTOMERS is a comma-delimited email list
	if v := os.Getenv("LINE_LIST_CUSTOMERS"); v != "" {
		c.LineListCustomers = nil
		for _, email := range strings.Split(v, ",") {
			if email = strings.TrimSpace(email); email != "" {
				c.LineListCustomers = append(c.LineListCustomers, email)
			}
		}
	}

	return nil
}

func (c *Config) buildLineListSet() {
	c.lineListSet = make(map[string]struct{}, len(c.LineListCustomers))
	for _, email := range c.LineListCustomers {
		c.lineListSet[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}
}

// IsLineListCustomer reports whether the email belongs to the exemption
// set. Membership is case-insensitive.
func (c *Config) IsLineListCustomer(email string) bool {
	if c.lineListSet == nil {
		c.buildLineListSet()
	}
	_, ok := c.lineListSet[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// ProductID resolves a product code to its invoicing id, falling back to
// the default id for unknown (or empty) codes.
func (c *Config) ProductID(code string) string {
	if id, ok := c.ProductIDs[code]; ok {
		return id
	}
	return c.DefaultProductID
}
