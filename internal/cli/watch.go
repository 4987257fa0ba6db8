package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/genc-murat/chunkflow/config"
	"github.com/genc-murat/chunkflow/internal/metrics"
	"github.com/genc-murat/chunkflow/internal/telemetry"
	"github.com/genc-murat/chunkflow/pkg/sysmem"
	util "github.com/genc-murat/chunkflow/pkg/utils"
)

func newWatchCmd(cfg *config.Config) *cobra.Command {
	var (
		maxRAMMB float64
		interval time.Duration
		samples  int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the RAM threshold at a fixed cadence",
		Long:  "Takes one synchronous memory reading per tick and reports whether the process exceeds the RAM ceiling. The cadence lives in this command; the library itself only ever answers point-in-time queries.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max-ram-mb") {
				maxRAMMB = cfg.Memory.MaxRAMMB
			}
			if !cmd.Flags().Changed("interval") {
				interval = cfg.Watch.Interval
			}
			if !cmd.Flags().Changed("samples") {
				samples = cfg.Watch.Samples
			}

			var tlog *telemetry.Log
			if cfg.Telemetry.Enabled {
				var err error
				tlog, err = telemetry.NewLog(cfg.Telemetry.Path)
				if err != nil {
					return err
				}
				defer tlog.Close()
			}

			session := metrics.NewMetrics()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			taken := 0
		loop:
			for {
				exceeded := sysmem.ThresholdExceeded(maxRAMMB)
				info := sysmem.ReadSystemInfo()
				session.RecordSample(info.UsedRAMMB, exceeded)

				evt := logger.Info()
				if exceeded {
					evt = logger.Warn()
				}
				evt.Float64("process_mb", info.UsedRAMMB).
					Float64("available_mb", info.AvailableRAMMB).
					Float64("threshold_mb", maxRAMMB).
					Bool("exceeded", exceeded).
					Msg("memory sample")

				if tlog != nil {
					sample := telemetry.Sample{
						Time:        time.Now(),
						ProcessMB:   info.UsedRAMMB,
						TotalMB:     info.TotalRAMMB,
						AvailableMB: info.AvailableRAMMB,
						ThresholdMB: maxRAMMB,
						Exceeded:    exceeded,
					}
					// Telemetry is best-effort; a write failure must not
					// stop the watch.
					if err := tlog.Append(sample); err != nil {
						logger.Error().Err(err).Msg("telemetry append failed")
					}
				}

				taken++
				if samples > 0 && taken >= samples {
					break
				}

				select {
				case <-ctx.Done():
					break loop
				case <-ticker.C:
				}
			}

			cmd.Print(util.FormatReport(session.GetStats()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&maxRAMMB, "max-ram-mb", 0, "RAM ceiling in MiB (default from config)")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "time between samples")
	cmd.Flags().IntVar(&samples, "samples", 0, "stop after this many samples (0 = run until interrupted)")

	return cmd
}
