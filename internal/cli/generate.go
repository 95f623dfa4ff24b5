package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/qrgrid/internal/config"
	"github.com/youruser/qrgrid/internal/doc"
	"github.com/youruser/qrgrid/internal/pipeline"
	"github.com/youruser/qrgrid/internal/util"
)

func newGenerateCmd() *cobra.Command {
	var (
		cfgPath string
		csvPath string
		outPath string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a batch of QR codes into a printable HTML grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if csvPath != "" {
				if err := cfg.ImportItemsFile(csvPath); err != nil {
					return err
				}
				logger.Info("imported items", "file", csvPath, "count", len(cfg.Items))
			}

			res, err := pipeline.Run(ctx, logger, pipeline.Options{
				Config:  cfg,
				Workers: workers,
			})
			if err != nil {
				return err
			}

			// Emit to memory first so a failure leaves no partial file.
			var buf bytes.Buffer
			if err := doc.Emit(&buf, res.Document); err != nil {
				return err
			}
			if dir := filepath.Dir(outPath); dir != "." {
				if err := util.EnsureDir(dir); err != nil {
					return err
				}
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			logger.Info(fmt.Sprintf("wrote %s (%s)", outPath, res.Elapsed.Round(time.Millisecond)),
				"items", res.Items, "pages", res.Pages)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "urls.json", "path to the batch configuration file")
	cmd.Flags().StringVar(&csvPath, "csv", "", "optional (name, url) CSV replacing the configured items")
	cmd.Flags().StringVarP(&outPath, "out", "o", "qr_grid.html", "output HTML file")
	cmd.Flags().IntVar(&workers, "workers", 0, "compose worker limit (0 = number of CPUs)")
	return cmd
}
