package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/gosom/google-maps-coordinates/tlmt"
	"github.com/gosom/google-maps-coordinates/tlmt/gonoop"
	"github.com/gosom/google-maps-coordinates/tlmt/goposthog"
)

const (
	RunModeCLI = iota + 1
	RunModeWeb
)

var (
	ErrInvalidRunMode = errors.New("invalid run mode")
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	Query       string
	InputFile   string
	ResultsFile string
	JSON        bool
	PreferExact bool
	Web         bool
	Addr        string
	DataFolder  string
	RedisAddr   string
	Debug       bool
	APIKey      string
	RunMode     int
}

func ParseConfig() *Config {
	cfg := Config{}

	flag.StringVar(&cfg.Query, "q", "", "a single input: a Google Maps URL, a place name or a place ID")
	flag.StringVar(&cfg.InputFile, "input", "", "path to a file with inputs (one per line), or 'stdin'")
	flag.StringVar(&cfg.ResultsFile, "results", "stdout", "path to the results file [default: stdout]")
	flag.BoolVar(&cfg.JSON, "json", false, "produce JSON output instead of plain text")
	flag.BoolVar(&cfg.PreferExact, "prefer-exact", false, "prefer the !3d!4d exact marker over the @ viewport marker")
	flag.BoolVar(&cfg.Web, "web", false, "run the web UI instead of a one-shot extraction")
	flag.StringVar(&cfg.Addr, "addr", ":8080", "address to listen on for the web UI")
	flag.StringVar(&cfg.DataFolder, "data-folder", "coordsdata", "data folder for persisted history")
	flag.StringVar(&cfg.RedisAddr, "redis", "", "redis address for persisted history (empty uses local sqlite)")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable verbose logging")

	flag.Parse()

	cfg.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	if cfg.Query != "" && cfg.InputFile != "" {
		panic("provide either -q or -input, not both")
	}

	switch {
	case cfg.Web || (cfg.Query == "" && cfg.InputFile == ""):
		cfg.RunMode = RunModeWeb
	default:
		cfg.RunMode = RunModeCLI
	}

	return &cfg
}

var (
	telemetryOnce sync.Once
	telemetry     tlmt.Telemetry
)

// Telemetry returns the process-wide telemetry sink. It is a noop unless a
// PostHog key is configured, and always a noop with DISABLE_TELEMETRY=1.
func Telemetry() tlmt.Telemetry {
	telemetryOnce.Do(func() {
		if os.Getenv("DISABLE_TELEMETRY") == "1" {
			telemetry = gonoop.New()

			return
		}

		key := os.Getenv("POSTHOG_API_KEY")
		if key == "" {
			telemetry = gonoop.New()

			return
		}

		endpoint := os.Getenv("POSTHOG_ENDPOINT")
		if endpoint == "" {
			endpoint = "https://eu.i.posthog.com"
		}

		val, err := goposthog.New(key, endpoint)
		if err != nil || val == nil {
			telemetry = gonoop.New()

			return
		}

		telemetry = val
	})

	return telemetry
}

func banner(messages []string, width int) string {
	if width <= 0 {
		var err error

		width, _, err = term.GetSize(0)
		if err != nil {
			width = 80
		}
	}

	if width < 20 {
		width = 20
	}

	contentWidth := width - 4

	var builder strings.Builder

	builder.WriteString("╔" + strings.Repeat("═", width-2) + "╗\n")

	for _, message := range messages {
		padding := contentWidth - runewidth.StringWidth(message)
		if padding < 0 {
			padding = 0
		}

		builder.WriteString(fmt.Sprintf("║ %s%s ║\n", message, strings.Repeat(" ", padding)))
	}

	builder.WriteString("╚" + strings.Repeat("═", width-2) + "╝\n")

	return builder.String()
}

func Banner() {
	fmt.Fprintln(os.Stderr, banner([]string{"📍 Google Maps Coordinates Extractor"}, 0))
}
