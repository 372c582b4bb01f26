package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/danielmtavares/crittercism-tools/config"
	"github.com/danielmtavares/crittercism-tools/logging"
	"github.com/danielmtavares/crittercism-tools/upload"
)

// BuildDate is provided at compile-time; DO NOT MODIFY.
var BuildDate = "no timestamp"

// Version is provided at compile-time; DO NOT MODIFY.
var Version = "local-build"

var (
	flagToken    string
	flagAppID    string
	flagFile     string
	flagFilesURL string
	flagAppURL   string
	flagTimeout  time.Duration
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "symbol-upload",
	Short: "Upload a debug-symbol archive to Crittercism",
	Long: `symbol-upload sends an Android mapping file or an iOS dSYM archive to the
Crittercism crash-reporting API and registers a processing job for it, so
that incoming crash reports can be symbolicated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logging.SetDebug()
	}
	log := logging.Logger("symbol-upload")
	log.Infof("symbol-upload version %s (%s)", Version, BuildDate)

	cfg, err := config.GetConfig(config.Overrides{
		Token:    flagToken,
		AppID:    flagAppID,
		FilesURL: flagFilesURL,
		AppURL:   flagAppURL,
		Timeout:  flagTimeout,
	})
	if err != nil {
		return err
	}
	if err := cfg.Valid(); err != nil {
		return errors.Wrap(err, "incomplete configuration")
	}
	if flagFile == "" {
		return errors.New("no symbol file given (-f)")
	}

	client, err := upload.New(cfg)
	if err != nil {
		return err
	}

	job, err := client.Upload(cmd.Context(), flagFile)
	if err != nil {
		return err
	}
	log.Infow("symbol upload registered",
		"status", job.CompletionStatus,
		"uuid", job.UploadUUID,
		"filename", job.Filename)
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&flagToken, "token", "t", "", "bearer token authorizing API access")
	rootCmd.Flags().StringVarP(&flagAppID, "app_id", "a", "", "application identifier the symbols belong to")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "path to the symbol archive (dSYM zip or mapping file)")
	rootCmd.Flags().StringVar(&flagFilesURL, "files-url", "", "override the file-resource API base URL")
	rootCmd.Flags().StringVar(&flagAppURL, "app-url", "", "override the application API base URL")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-request HTTP timeout (0 = transport default)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.AddCommand(licensesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Logger("symbol-upload").Error(err)
		os.Exit(1)
	}
}
