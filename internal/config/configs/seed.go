package configs

// Seed configures the synthetic dataset generator. Equal values always
// produce the same ledgers.
type Seed struct {
	Value     uint64 `env:"VALUE" envDefault:"42"`
	Sales     int    `env:"SALES" envDefault:"1000"`
	Campaigns int    `env:"CAMPAIGNS" envDefault:"40"`
	Year      int    `env:"YEAR" envDefault:"2024"`
}
