// Package predictcli implements the footrisk-predict command line tool.
package predictcli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/okian/footrisk/internal/adapters/predictor"
	"github.com/okian/footrisk/internal/config"
	"github.com/okian/footrisk/pkg/logger"
	"github.com/spf13/cobra"
)

// File permission constants.
const (
	filePermission      = 0o600
	directoryPermission = 0o750
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "footrisk-predict",
		Short: "Talk to the diabetic foot prediction service",
		Long: `footrisk-predict submits measurements to the prediction service and prints
its answers. The base URL comes from --url, then FOOTRISK_API_URL, then
http://localhost:5000.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "url", "", "prediction service base URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (0 means none)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request")

	root.AddCommand(
		newHealthCommand(opts),
		newPredictCommand(opts),
		newDataFormatCommand(opts),
		newBatchCommand(opts),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

// resolve fills unset flags from the configuration layers and sets up logging.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if o.baseURL == "" {
		o.baseURL = cfg.APIURL
	}
	if !cmd.Flags().Changed("timeout") {
		o.timeout = cfg.ClientTimeout()
	}

	if err := logger.InitWith(cmd.ErrOrStderr(), cfg.LogFormat); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	level := cfg.LogLevel
	if o.verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

func (o *globalOptions) client() *predictor.Client {
	return predictor.New(
		predictor.WithBaseURL(o.baseURL),
		predictor.WithHTTPClient(&http.Client{Timeout: o.timeout}),
		predictor.WithLogger(logger.Named("predictor")),
	)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONFile writes v to path, or to w when path is empty.
func writeJSONFile(w io.Writer, path string, v any) error {
	if path == "" {
		return writeJSON(w, v)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeJSON(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
