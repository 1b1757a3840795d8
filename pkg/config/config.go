package config

// DB configures the embedded SQLite store.
type DB struct {
	Path string `envconfig:"PATH" default:"bankbook.db"`
}

// Bank holds the business-rule knobs.
type Bank struct {
	// MinInitialBalance is the smallest opening balance accepted at
	// account creation, as a decimal string.
	MinInitialBalance string `envconfig:"MIN_INITIAL_BALANCE" default:"2000"`
	// BcryptCost is the work factor for password hashing.
	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`
}

// Log configures the structured logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankbook]"`
}

// App is the root application configuration.
type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	DB   DB     `envconfig:"DB"`
	Bank Bank   `envconfig:"BANK"`
	Log  Log    `envconfig:"LOG"`
}
