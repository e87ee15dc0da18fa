package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/thumbjob/internal/thumb"
)

var detectFormat bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>...",
	Short: "Validate image sources and print their job state",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		failed := 0
		for _, path := range args {
			job := inspectPath(path)
			if job.HasError() {
				failed++
			}
			if err := enc.Encode(job.Snapshot()); err != nil {
				return err
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&detectFormat, "detect-format", false, "sniff the mime-type of local images")
}

// inspectPath builds a job for path. Errors are left in the job state.
func inspectPath(path string) *thumb.Job {
	job, err := thumb.New(path, thumb.WithLogger(debugLogger()))
	if err != nil || !detectFormat {
		return job
	}
	_, _ = job.DetectFormat()
	return job
}
