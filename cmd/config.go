package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/etnz/finance"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// settings is the configuration that can be set in the YAML configuration
// file, the environment, or the global flags.
type settings struct {
	LedgerFile string `yaml:"ledger_file"`
	Currency   string `yaml:"currency"`
	Verbose    bool   `yaml:"verbose"`
}

// Configure resolves the global flags against the environment and the
// configuration file, then sets up the logger. It must be called after the
// flags have been parsed.
//
// Values are taken from, in order of precedence: command line flags,
// environment variables (a .env file in the working directory is loaded
// first), the YAML configuration file, and the defaults.
func Configure() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cli := settings{LedgerFile: *ledgerFile, Currency: *currency, Verbose: *Verbose}
	s, err := resolve(*configFile, explicit, cli, os.Getenv)
	if err != nil {
		return err
	}
	cur, err := finance.ParseCurrency(s.Currency)
	if err != nil {
		return err
	}

	*ledgerFile, *currency, *Verbose = s.LedgerFile, cur, s.Verbose
	setupLogger(*Verbose)
	log.Debug("configuration", "ledger-file", *ledgerFile, "currency", *currency)
	return nil
}

// resolve merges the configuration sources. explicit holds the names of the
// flags set on the command line, whose values are in cli.
func resolve(configPath string, explicit map[string]bool, cli settings, getenv func(string) string) (settings, error) {
	s := settings{LedgerFile: defaultLedgerFile, Currency: finance.DefaultCurrency}

	if err := readConfig(configPath, &s); err != nil {
		// The default configuration file is optional.
		if !errors.Is(err, fs.ErrNotExist) || explicit["config"] {
			return s, err
		}
	}

	if v := getenv(EnvLedgerFile); v != "" {
		s.LedgerFile = v
	}
	if v := getenv(EnvCurrency); v != "" {
		s.Currency = v
	}
	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		s.Verbose = b
	}

	if explicit["ledger-file"] {
		s.LedgerFile = cli.LedgerFile
	}
	if explicit["currency"] {
		s.Currency = cli.Currency
	}
	if explicit["v"] {
		s.Verbose = cli.Verbose
	}
	return s, nil
}

// readConfig reads the YAML configuration file at path into s. Keys missing
// from the file leave s unchanged.
func readConfig(path string, s *settings) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read configuration file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("could not parse configuration file %q: %w", path, err)
	}
	return nil
}

func setupLogger(verbose bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "fin",
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}
