// Bitread extracts the set configuration bits from Xilinx Series-7
// bitstreams.
//
// The bits command decodes a Vivado .bit file into the list of
// configuration memory bits whose value is 1, one bit_<frame>_<word>_<bit>
// line each, and writes it next to the input (design.bit -> design.bits).
// Frame layouts come from a prjxray database, located with --db, the
// database.dir config setting, or XRAY_DATABASE_DIR.
//
// The sample command draws a random fault-injection bit list from a
// Vivado logic location (.ll) file.
//
// See 'bitread --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/bitread/internal/config"
	"github.com/muurk/bitread/internal/frames"
	"github.com/muurk/bitread/internal/logging"
	"github.com/muurk/bitread/internal/ui"
	"github.com/muurk/bitread/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	dbDir      string
	logLevel   string
	logFile    string
	quiet      bool
)

// cfg is the effective configuration: the config file with flag overrides
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bitread",
	Short: "Series-7 bitstream high-bit extractor",
	Long: `Decode Xilinx Series-7 (Artix-7, Kintex-7, Spartan-7, Zynq-7000)
configuration bitstreams into the list of set configuration memory bits.

Frame address layouts are read from a prjxray database. Point bitread at it
with --db, the database.dir config setting, or XRAY_DATABASE_DIR.

Compressed, encrypted and partial bitstreams are not supported.`,
	Version: version.Version,
	Example: `  # Decode design.bit into design.bits
  bitread bits design.bit --db ~/prjxray-db

  # Show the part and payload size without decoding
  bitread info design.bit

  # List the frame addresses of a part
  bitread frames xc7a35tcpg236-1

  # Sample 100 fault bits from a logic location file
  bitread sample design.ll 100`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config directory)")
	rootCmd.PersistentFlags().StringVar(&dbDir, "db", "", "prjxray database directory (overrides config and "+config.DatabaseEnv+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent, or "+logging.LogLevelEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress styled output")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if dbDir != "" {
		cfg.Database.Dir = dbDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logging.Initialize(logging.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	logging.Debug("configuration loaded",
		zap.String("database", cfg.Database.Dir),
		zap.String("command", cmd.CommandPath()),
	)
	return nil
}

// openDatabase opens the configured prjxray database.
func openDatabase() (*frames.Database, error) {
	return frames.OpenDatabase(cfg.Database.Dir, logging.GetLogger())
}

// newPrinter returns the printer for styled output, honoring --quiet.
func newPrinter() *ui.Printer {
	if quiet {
		return ui.NewQuietPrinter()
	}
	return ui.NewPrinter(os.Stdout)
}

// stdoutIsTerminal reports whether live progress can be drawn.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bitread %s\n", version.Full())
	},
}
