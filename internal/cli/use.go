package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aduh95/corepack/internal/app"
)

type useOptions struct {
	Cwd string
}

func newUseCommand() *cobra.Command {
	opts := useOptions{}
	cmd := &cobra.Command{
		Use:   "use <name@version>",
		Short: "Pin an exact package manager version for the nearest project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUse(cmd.Context(), cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Cwd, "cwd", ".", "Directory to resolve from")

	_ = viper.BindPFlag("cwd", cmd.Flags().Lookup("cwd"))

	return cmd
}

func runUse(ctx context.Context, cmd *cobra.Command, opts useOptions, spec string) error {
	service := newAppService()
	result, err := service.Use(ctx, app.UseRequest{
		Dir:  resolveString(cmd, opts.Cwd, "cwd", "cwd"),
		Spec: spec,
	})
	if err != nil {
		return err
	}
	fmt.Printf("pinned: %s\n", result.Pinned)
	fmt.Printf("previous: %s\n", result.Previous)
	fmt.Printf("updated: %s\n", result.Target)
	return nil
}
