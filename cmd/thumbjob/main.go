package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "thumbjob",
	Short: "thumbjob - inspect thumbnail jobs",
	Long: "thumbjob validates image sources for thumbnailing and reports job state.\n\n" +
		"Environment variables:\n" +
		"  THUMBJOB_LOG_LEVEL=debug    Enable debug logging",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging to stderr (stdout is for MCP protocol and results)
		log.SetOutput(os.Stderr)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv("THUMBJOB_LOG_LEVEL"),
		"log level (debug enables tracing)")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.AddCommand(versionCmd, serveCmd, inspectCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "thumbjob %s\n", Version)
		fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	},
}

// debugLogger returns a logger for job tracing, or nil unless debug is on.
func debugLogger() *log.Logger {
	if logLevel != "debug" {
		return nil
	}
	return log.New(os.Stderr, "[debug] ", log.Ldate|log.Ltime|log.Lshortfile)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
