package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aduh95/corepack/internal/app"
	"github.com/aduh95/corepack/internal/types"
)

type resolveOptions struct {
	Cwd string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which package manager the nearest project declares",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cwd, "cwd", ".", "Directory to resolve from")

	_ = viper.BindPFlag("cwd", cmd.Flags().Lookup("cwd"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		Dir: resolveString(cmd, opts.Cwd, "cwd", "cwd"),
	})
	if err != nil {
		return err
	}

	resolution := result.Resolution
	switch resolution.Type {
	case types.ResolutionTypeFound:
		found := resolution.Found
		fmt.Printf("found: %s\n", found.Spec)
		fmt.Printf("manifest: %s\n", found.Target)
		if found.Constraint != "" {
			fmt.Printf("constraint: %s\n", found.Constraint)
		}
		if found.EnvFilePath != "" {
			fmt.Printf("override: %s\n", found.EnvFilePath)
		}
		return nil
	case types.ResolutionTypeNoSpec:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no package manager specified in %s", resolution.NoSpec.Target))
	case types.ResolutionTypeNoProject:
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no package.json found in %s or any parent directory", filepath.Dir(resolution.NoProject.Target)))
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unhandled resolution type")
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
