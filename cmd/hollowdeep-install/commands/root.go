// Package commands implements the CLI commands for the hollowdeep installer.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hollowdeep/bootstrap/internal/bootstrap"
	"github.com/hollowdeep/bootstrap/internal/build"
	"github.com/hollowdeep/bootstrap/internal/cli/prompt"
	"github.com/hollowdeep/bootstrap/internal/config"
	"github.com/hollowdeep/bootstrap/internal/doctor"
	"github.com/hollowdeep/bootstrap/internal/errors"
	"github.com/hollowdeep/bootstrap/internal/install"
	"github.com/hollowdeep/bootstrap/internal/logging"
	"github.com/hollowdeep/bootstrap/internal/platform"
	"github.com/hollowdeep/bootstrap/internal/shortcut"
	"github.com/hollowdeep/bootstrap/internal/toolchain"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// pickChannel opens an interactive picker for the toolchain channel.
var pickChannel bool

// cfg is the run configuration loaded during initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a config file (default: ./config.yaml if present)")

	rootCmd.Flags().String("prefix", platform.DefaultInstallRoot(),
		"install root; bin/ and data/ are created beneath it")
	rootCmd.Flags().String("source", ".",
		"path to the source checkout to build")
	rootCmd.Flags().Bool("skip-rust", false,
		"never install the Rust toolchain, fail if it is absent")
	rootCmd.Flags().Bool("build-only", false,
		"build the release binary and stop before installing")
	rootCmd.Flags().BoolP("yes", "y", false,
		"answer yes to every confirmation prompt")
	rootCmd.Flags().String("channel", "stable",
		"Rust toolchain channel to install when absent: stable, beta, nightly")
	rootCmd.Flags().BoolVar(&pickChannel, "pick-channel", false,
		"choose the toolchain channel interactively")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("hollowdeep-install version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	// Flags layer over environment and config file values.
	_ = viper.BindPFlag("prefix", rootCmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("source", rootCmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("skip_rust", rootCmd.Flags().Lookup("skip-rust"))
	_ = viper.BindPFlag("build_only", rootCmd.Flags().Lookup("build-only"))
	_ = viper.BindPFlag("assume_yes", rootCmd.Flags().Lookup("yes"))
	_ = viper.BindPFlag("channel", rootCmd.Flags().Lookup("channel"))

	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "hollowdeep-install",
	Short: "Build and install Hollowdeep from source",
	Long: `hollowdeep-install builds Hollowdeep from a source checkout and
installs it for the current user.

It checks for the Rust toolchain and offers to install it when absent,
audits build prerequisites like a C compiler and the ALSA headers, runs
a release build, and copies the binary and game data into place. The
install directory is added to PATH, and on Windows a Start Menu
shortcut can be created.

Every step that changes the system is gated behind a confirmation
prompt; pass --yes for a fully non-interactive run.`,
	Example: `  # Build and install from the current directory
  hollowdeep-install

  # Build only, leaving the artifact in target/release
  hollowdeep-install --build-only

  # Non-interactive install from another checkout
  hollowdeep-install --source ~/src/hollowdeep --yes

  # Check build prerequisites without building anything
  hollowdeep-install doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: runInstall,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewFatal(errors.New("cannot use --quiet and --verbose together"),
			"pick one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("HOLLOWDEEP_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewFatal(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// channelDescriptions feeds the interactive channel picker.
var channelDescriptions = map[string]string{
	"stable":  "The latest stable release. Recommended.",
	"beta":    "The upcoming stable release, updated every six weeks.",
	"nightly": "Built every night from master. May break.",
}

func runInstall(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewFatal(configLoadErr, "fix or remove the config file and re-run")
	}

	if pickChannel {
		channel, err := prompt.SelectChannel(
			[]string{"stable", "beta", "nightly"}, channelDescriptions)
		switch {
		case errors.Is(err, prompt.ErrSelectionCancelled):
			// Keep the configured channel.
		case err != nil:
			return errors.NewFatal(err, "pass --channel instead")
		default:
			cfg.Channel = channel
		}
	}

	if err := cfg.Validate(); err != nil {
		return errors.NewFatal(err, "see 'hollowdeep-install --help' for valid values")
	}

	log := logging.FromContext(cmd.Context())

	info, err := platform.Probe()
	if err != nil {
		return errors.NewFatal(err, "could not determine the current user's home directory")
	}
	log.Debug("platform probed", "family", info.Family, "home", info.Home)

	manifest, err := build.LoadManifest(cfg.Source)
	if err != nil {
		return errors.NewFatal(err,
			"run from a Hollowdeep checkout or point --source at one")
	}

	confirmer := prompt.NewConfirmer()
	confirmer.AssumeYes = cfg.AssumeYes

	runner := &bootstrap.Runner{
		Config:    cfg,
		Platform:  info,
		Manifest:  manifest,
		Toolchain: toolchain.NewManager(info.Home, cfg.Channel, log),
		Auditor:   newAuditor(info.Home),
		Builder:   build.NewOrchestrator(cfg.Source, log),
		Installer: install.NewManager(log),
		Shortcut:  desktopIntegrator{},
		Prompter:  confirmer,
		Log:       log,
	}

	status, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	switch status {
	case bootstrap.StatusInstalled:
		binary := install.InstalledBinary(cfg.Prefix, manifest.ArtifactName())
		fmt.Fprintf(cmd.OutOrStdout(),
			"\n%s %s installed to %s\nOpen a new terminal and run %q to play.\n",
			manifest.Package.Name, manifest.Package.Version, binary, manifest.Package.Name)
	case bootstrap.StatusBuiltOnly:
		fmt.Fprintf(cmd.OutOrStdout(), "\nBuild complete: %s\n",
			manifest.ArtifactPath(cfg.Source))
	case bootstrap.StatusDeclined:
		fmt.Fprintf(cmd.OutOrStdout(), "\nNothing installed. The built artifact is at %s\n",
			manifest.ArtifactPath(cfg.Source))
	case bootstrap.StatusNewSessionRequired:
		// Already explained by the runner's warning.
	}
	return nil
}

// prereqAuditor adapts the doctor runner to the bootstrap flow.
type prereqAuditor struct {
	runner *doctor.Runner
}

func (a prereqAuditor) Audit() *doctor.Report {
	return a.runner.Run()
}

func newAuditor(home string) prereqAuditor {
	r := doctor.NewRunner()
	r.AddCheck(doctor.NewCompilerCheck())
	r.AddCheck(doctor.NewAudioCheck())
	r.AddCheck(doctor.NewToolchainHomesCheck(home))
	return prereqAuditor{runner: r}
}

// desktopIntegrator adapts the shortcut package to the bootstrap flow.
type desktopIntegrator struct{}

func (desktopIntegrator) Supported() bool { return shortcut.Supported() }
func (desktopIntegrator) Create(target string) error { return shortcut.Create(target) }

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
