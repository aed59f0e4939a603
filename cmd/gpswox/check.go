package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-gpswox"
)

// checkResult is the outcome of one endpoint probe.
type checkResult struct {
	Endpoint   string
	Success    bool
	Error      string
	Duration   time.Duration
	JSONSample string
}

// probe is a read-only call exercised by the check command.
type probe struct {
	endpoint string
	call     func(ctx context.Context, c *gpswox.Client) (any, error)
}

func readOnlyProbes() []probe {
	return []probe{
		{"api/get_devices", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Devices.ListDevices(ctx, nil)
		}},
		{"api/get_devices_latest", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Devices.GetDevicesLatest(ctx)
		}},
		{"api/get_alerts", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Alerts.GetAlerts(ctx, nil)
		}},
		{"api/get_geofences", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Geofences.GetGeofences(ctx, nil)
		}},
		{"api/get_events", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Events.GetEvents(ctx, nil)
		}},
		{"api/get_reports_types", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Reports.GetReportTypes(ctx, nil)
		}},
		{"api/get_tasks", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Tasks.GetTasks(ctx, nil)
		}},
		{"api/edit_setup_data", func(ctx context.Context, c *gpswox.Client) (any, error) {
			return c.Setup.GetEditSetupData(ctx, "", nil)
		}},
	}
}

func (a *app) checkCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:         "check",
		Short:       "Run the read-only endpoints against the server and report failures",
		Args:        cobra.NoArgs,
		Annotations: needsClient(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := a.runProbes(cmd.Context(), readOnlyProbes())

			failed := a.printSummary(results, verbose)
			if failed > 0 {
				return errors.Newf("%d of %d checks failed", failed, len(results))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "print full JSON responses")

	return cmd
}

func (a *app) runProbes(ctx context.Context, probes []probe) []checkResult {
	results := make([]checkResult, 0, len(probes))

	for _, p := range probes {
		start := time.Now()
		resp, err := p.call(ctx, a.client)
		result := checkResult{
			Endpoint: p.endpoint,
			Success:  err == nil,
			Duration: time.Since(start),
		}

		if err != nil {
			result.Error = err.Error()
		} else if data, err := json.MarshalIndent(resp, "", "  "); err == nil {
			result.JSONSample = string(data)
		}

		results = append(results, result)
	}

	return results
}

// printSummary writes one line per result and returns the number of failures.
func (a *app) printSummary(results []checkResult, verbose bool) int {
	failed := 0
	for _, result := range results {
		status := "ok  "
		if !result.Success {
			status = "FAIL"
			failed++
		}

		fmt.Fprintf(a.stdout, "%s %s (%v)\n", status, result.Endpoint, result.Duration.Round(time.Millisecond))

		if result.Error != "" {
			fmt.Fprintf(a.stdout, "     error: %s\n", result.Error)
		}

		if verbose && result.JSONSample != "" {
			fmt.Fprintln(a.stdout, indent(result.JSONSample, "     "))
		}
	}

	fmt.Fprintln(a.stdout, strings.Repeat("=", 60))
	fmt.Fprintf(a.stdout, "%d passed, %d failed\n", len(results)-failed, failed)

	return failed
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}
