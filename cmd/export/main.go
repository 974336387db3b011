package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flow7/internal/config"
	"flow7/internal/logging"
	"flow7/internal/publish"
	"flow7/internal/storage"
)

const uploadTimeout = 30 * time.Second

type options struct {
	dir       string
	upload    bool
	key       string
	presign   time.Duration
	skipLocal bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "flow7-export",
		Short: "Render the FLOW7 landing page to static files",
		Long: `Renders the landing page once and writes index.html plus its stylesheet
to a local directory. With --upload the same files are put into the
MinIO/S3 bucket configured through MINIO_* environment variables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logging.New(cfg.Debug, cfg.Location())
			defer func() { _ = log.Sync() }()

			return runExport(cmd.Context(), cfg, log, opts, func(ctx context.Context) (storage.Storage, error) {
				return storage.NewMinIO(ctx, cfg.MinIO)
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "dist", "output directory for the static files")
	cmd.Flags().BoolVar(&opts.skipLocal, "no-local", false, "skip writing files to --dir")
	cmd.Flags().BoolVar(&opts.upload, "upload", false, "upload the files to the configured bucket")
	cmd.Flags().StringVar(&opts.key, "key", publish.DefaultIndexKey, "object key / file name of the page")
	cmd.Flags().DurationVar(&opts.presign, "presign", 0, "print a pre-signed preview URL valid for this long (requires --upload)")

	return cmd
}

type storeFactory func(ctx context.Context) (storage.Storage, error)

type report struct {
	Local      *publish.Result `json:"local,omitempty"`
	Remote     *publish.Result `json:"remote,omitempty"`
	PreviewURL string          `json:"preview_url,omitempty"`
}

func runExport(ctx context.Context, cfg *config.AppConfig, log *zap.Logger, opts *options, newStore storeFactory, out io.Writer) error {
	if opts.skipLocal && !opts.upload {
		return fmt.Errorf("nothing to do: --no-local requires --upload")
	}
	if opts.presign > 0 && !opts.upload {
		return fmt.Errorf("--presign requires --upload")
	}

	arts, err := publish.Artifacts(opts.key)
	if err != nil {
		return err
	}

	var rep report
	if !opts.skipLocal {
		rep.Local, err = publish.WriteDir(opts.dir, arts)
		if err != nil {
			log.Error("export_local_failed", zap.String("dir", opts.dir), zap.Error(err))
			return err
		}
		log.Info("export_local_done", zap.String("dir", opts.dir), zap.Int("files", len(rep.Local.Files)))
	}

	if opts.upload {
		ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
		defer cancel()

		store, err := newStore(ctx)
		if err != nil {
			log.Error("export_storage_init_failed", zap.Error(err))
			return err
		}
		up := publish.NewUploader(store)

		rep.Remote, err = up.Upload(ctx, arts)
		if err != nil {
			log.Error("export_upload_failed", zap.String("bucket", cfg.MinIO.Bucket), zap.Error(err))
			return err
		}
		log.Info("export_upload_done", zap.String("bucket", cfg.MinIO.Bucket), zap.Int("files", len(rep.Remote.Files)))

		if opts.presign > 0 {
			rep.PreviewURL, err = up.PreviewURL(ctx, opts.key, opts.presign)
			if err != nil {
				return fmt.Errorf("presign %s: %w", opts.key, err)
			}
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
