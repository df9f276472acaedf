package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aduh95/corepack/internal/app"
)

type envOptions struct {
	Cwd string
}

func newEnvCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the override environment of the nearest project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnv(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cwd, "cwd", ".", "Directory to resolve from")

	_ = viper.BindPFlag("cwd", cmd.Flags().Lookup("cwd"))

	return cmd
}

func runEnv(ctx context.Context, cmd *cobra.Command, opts envOptions) error {
	service := newAppService()
	result, err := service.Env(ctx, app.EnvRequest{
		Dir: resolveString(cmd, opts.Cwd, "cwd", "cwd"),
	})
	if err != nil {
		return err
	}

	if result.ManifestPath != "" {
		fmt.Printf("manifest: %s\n", result.ManifestPath)
	} else {
		fmt.Println("manifest: (none found)")
	}
	if result.EnvFilePath != "" {
		fmt.Printf("override file: %s\n", result.EnvFilePath)
	} else {
		fmt.Println("override file: (absent)")
	}
	fmt.Printf("install folder: %s\n", result.InstallFolder)

	for _, entry := range result.Entries {
		label := entry.Manager
		if len(entry.Bins) > 0 {
			label = fmt.Sprintf("%s (%s)", entry.Manager, strings.Join(entry.Bins, ", "))
		}
		if entry.Value == "" {
			fmt.Printf("%s: %s is not set\n", label, entry.Key)
			continue
		}
		fmt.Printf("%s: %s=%s (from %s)\n", label, entry.Key, entry.Value, entry.Source)
	}
	return nil
}
