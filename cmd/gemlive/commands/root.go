package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaron-wade/gemlive/pkg/cli"
	"github.com/aaron-wade/gemlive/pkg/logstore"
)

const appName = "gemlive"

var (
	// Global flags
	cfgFile     string
	contextName string
	outputFile  string
	outputJSON  bool
	verbose     bool

	// Global configuration
	globalConfig *cli.Config

	// sessionStore collects the session trace: live client events plus, in
	// verbose mode, the app log. chat dumps it via --dump-logs.
	sessionStore = logstore.New(0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemlive",
	Short: "Gemini Live API CLI tool",
	Long: `gemlive - A command line interface for the Gemini Live API.

This tool allows you to interact with Gemini models:
  - Interactive live sessions over WebSocket (chat)
  - One-shot text generation (generate)
  - Configuration management (config)

Configuration is stored in ~/.gemlive/gemlive/ and supports multiple
contexts, similar to kubectl's context management.

Examples:
  # Set up a new context
  gemlive config add-context myctx --api-key YOUR_API_KEY

  # Start a live chat session
  gemlive -c myctx chat

  # One-shot generation, JSON output for piping
  gemlive -c myctx generate "explain websockets" --json | jq .text
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "config file (default is ~/.gemlive/gemlive/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context name to use")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(generateCmd)
}

func initConfig() {
	if verbose {
		// mirror debug logs into the session store so --dump-logs captures them
		w := io.MultiWriter(os.Stderr, cli.NewLogWriter(sessionStore))
		slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var err error
	globalConfig, err = cli.LoadConfigWithPath(appName, cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// getConfig returns the global configuration
func getConfig() *cli.Config {
	return globalConfig
}

// getContext returns the context configuration to use
func getContext() (*cli.Context, error) {
	cfg := getConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	ctx, err := cfg.ResolveContext(contextName)
	if err != nil {
		if contextName == "" {
			return nil, fmt.Errorf("no context specified. Use -c flag or set a default context with 'gemlive config use-context'")
		}
		return nil, err
	}

	return ctx, nil
}

// outputResult outputs the result using cli package
func outputResult(result any, outputPath string, asJSON bool) error {
	format := cli.FormatYAML
	if asJSON {
		format = cli.FormatJSON
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputPath,
	})
}
