package configs

import (
	"fmt"
	"strings"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Dataset selects the backing store for the two input ledgers. With Source
// "file" the ledgers are read from SalesPath and CampaignsPath (CSV or
// XLSX, chosen by extension). With Source "postgres" they are read from the
// database configured by Postgres.
type Dataset struct {
	Source        string `env:"SOURCE" envDefault:"file"`
	SalesPath     string `env:"SALES_PATH" envDefault:"data-1.csv"`
	CampaignsPath string `env:"CAMPAIGNS_PATH" envDefault:"data-2.csv"`
}

// Validate normalises Source and rejects unknown values.
func (c *Dataset) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	switch c.Source {
	case SourceFile, SourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown dataset source %q", c.Source)
	}
}
