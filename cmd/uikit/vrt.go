package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/vrt"
)

type vrtOptions struct {
	Port    string
	EnvFile string
	Dir     string
}

var vrtCmdRunner = runVRT

func newVRTCmd(root *rootFlags) *cobra.Command {
	opts := vrtOptions{}

	cmd := &cobra.Command{
		Use:   "vrt [-- -p PORT]",
		Short: "Run visual regression tests against a running Storybook",
		Long: "Run visual regression tests against a running Storybook.\n\n" +
			"Arguments after -- are read the way package scripts forward them:\n" +
			"the value following -p is the port, 9001 when absent.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, root)
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("port"):
			case len(args) > 0:
				opts.Port = vrt.ParsePortArg(args)
			default:
				opts.Port = app.Config.VRT.Port
			}
			if !cmd.Flags().Changed("env-file") {
				opts.EnvFile = app.Config.VRT.EnvFile
			}

			if err := validateVRTOptions(opts); err != nil {
				return err
			}

			return vrtCmdRunner(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Port, "port", "p", vrt.DefaultPort, "Port Storybook is served on")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", ".env", "Environment file loaded before running (ignored when missing)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Working directory for chromatic and node_modules/.bin lookup (default current directory)")

	return cmd
}

func runVRT(cmd *cobra.Command, app *AppContext, opts vrtOptions) error {
	log := app.Log.WithComponent("vrt")

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
			}
			log.Debugf("env file %s not found", opts.EnvFile)
		}
	}

	cfg := app.Config.VRT
	appCode := os.Getenv(cfg.AppCodeEnv)
	if appCode == "" {
		log.Warnf("%s is not set; chromatic will run without an app code", cfg.AppCodeEnv)
	}

	task := vrt.ChromaticTask(opts.Port, appCode)
	if cfg.Binary != "" {
		task.Binary = cfg.Binary
	}
	task.Args = append(task.Args, cfg.ExtraArgs...)

	runner := vrt.NewRunner(app.Log)
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()
	runner.Dir = opts.Dir

	log.WithFields(map[string]any{"port": opts.Port}).Info("starting visual regression run")

	result, err := runner.RunConcurrently(cmd.Context(), task)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"status": result.Status}).Info("visual regression run finished")
	return nil
}
