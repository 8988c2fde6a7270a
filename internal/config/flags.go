package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the command-line arguments into a partial
// [StructuredConfig]. Unset flags leave zero values so that they do not
// override other sources when merged.
//
// Flags:
//
//	-c/-config     json file path with configs
//	-data-dir      directory holding the catalog files
//	-cards         card catalog file
//	-apms          APM catalog file
//	-ptps          PTP list file
//	-prefs         preferences file
//	-base-url      fallback API base URL
//	-timeout       request timeout (e.g. "30s")
//	-user-agent    User-Agent header value
//	-log-dir       log directory
//	-debug         write debug-level log entries
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		jsonConfigPath  string
		dataDir         string
		cardsFile       string
		apmFile         string
		ptpFile         string
		preferencesFile string
		baseURL         string
		requestTimeout  time.Duration
		userAgent       string
		logDir          string
		debug           bool
	)

	fs := flag.NewFlagSet("ptp-tester", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dataDir, "data-dir", "", "Directory holding the catalog files")
	fs.StringVar(&cardsFile, "cards", "", "Card catalog file")
	fs.StringVar(&apmFile, "apms", "", "APM catalog file")
	fs.StringVar(&ptpFile, "ptps", "", "PTP list file")
	fs.StringVar(&preferencesFile, "prefs", "", "Preferences file")
	fs.StringVar(&baseURL, "base-url", "", "Fallback API base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.StringVar(&logDir, "log-dir", "", "Log directory")
	fs.BoolVar(&debug, "debug", false, "Write debug-level log entries")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogDir: logDir,
			Debug:  debug,
		},
		Storage: Storage{
			DataDir:         dataDir,
			CardsFile:       cardsFile,
			APMFile:         apmFile,
			PTPFile:         ptpFile,
			PreferencesFile: preferencesFile,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
