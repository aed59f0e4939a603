package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-gpswox"
	"github.com/lexfrei/go-gpswox/internal/config"
	"github.com/lexfrei/go-gpswox/observability"
)

// annotationClient marks subcommands that talk to the server.
const annotationClient = "gpswox/client"

// needsClient is the annotation set of subcommands that talk to the server.
func needsClient() map[string]string {
	return map[string]string{annotationClient: "true"}
}

// app carries state shared by the subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	baseURL    string
	apiHash    string
	insecure   bool
	debug      bool

	cfg    *config.Config
	client *gpswox.Client
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "gpswox",
		Short:         "Command line client for the GPSWox tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationClient] == "" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&a.baseURL, "base-url", "", "server URL, e.g. https://gps.example.com/")
	flags.StringVar(&a.apiHash, "api-hash", "", "API hash (user_api_hash)")
	flags.BoolVar(&a.insecure, "insecure", false, "skip TLS certificate verification")
	flags.BoolVar(&a.debug, "debug", false, "log HTTP requests to stderr")

	rootCmd.AddCommand(
		a.loginCmd(),
		a.checkCmd(),
		a.timezoneCmd(),
	)

	return rootCmd
}

// setup resolves the configuration (flags over environment over file) and
// builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	path, optional := a.configPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("api-hash") {
		cfg.APIHash = a.apiHash
	}
	if flags.Changed("insecure") {
		cfg.InsecureSkipVerify = a.insecure
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	client, err := gpswox.NewWithConfig(&gpswox.ClientConfig{
		BaseURL:            cfg.BaseURL,
		APIHash:            cfg.APIHash,
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Logger:             observability.NewSlogLogger(logger),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create client")
	}

	a.cfg = cfg
	a.client = client

	return nil
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, errors.Newf("unknown log level %q", name)
}
