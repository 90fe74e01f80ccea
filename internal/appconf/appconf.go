package appconf

import "strings"

// Environment is the operating environment the server was started in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the value of the -env flag to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// DefaultDataURL is the published launch records dataset.
const DefaultDataURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/spacex_launch_dash.csv"

// Config holds all the configuration settings for the Application.
type Config struct {
	Port      int
	Env       Environment
	RateLimit int    // requests per second per client
	DataURL   string // URL or local path of the launch records CSV
	DBPath    string // SQLite path for the launch mirror, ":memory:" by default
	Verbose   bool
}

// DefaultConfig returns the settings used when no flag or config file overrides them.
func DefaultConfig() Config {
	return Config{
		Port:      8050,
		Env:       Development,
		RateLimit: 100,
		DataURL:   DefaultDataURL,
		DBPath:    ":memory:",
	}
}
