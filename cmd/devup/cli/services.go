package cli

import (
	"github.com/spf13/cobra"

	"github.com/devupkit/devup/internal/config"
	"github.com/devupkit/devup/internal/docker"
	"github.com/devupkit/devup/internal/launch"
	"github.com/devupkit/devup/internal/log"
	"github.com/devupkit/devup/internal/service"
)

// serviceCommand builds the cobra command for one registry entry. Every
// service gets [name], --network, and --tag plus whatever port and
// credential flags its spec declares.
func serviceCommand(svc string, spec service.Spec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   svc + " [name]",
		Short: spec.Summary,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := serviceOptions(cmd, spec, args)
			if err != nil {
				return err
			}
			return upService(cmd, svc, spec, opts)
		},
	}

	globalCfg, _ := config.LoadGlobal()
	cmd.Flags().String("network", globalCfg.Network, "Network name to attach container to")
	cmd.Flags().String("tag", spec.DefaultTag, "Image tag to use")

	for _, p := range spec.Ports {
		cmd.Flags().Int(p.Flag, p.Default, p.Help)
	}
	if spec.DB != nil {
		cmd.Flags().String("db-name", spec.DB.Default, spec.DB.Help)
	}
	if spec.Auth != nil {
		cmd.Flags().String("username", spec.Auth.User, "Admin username")
		cmd.Flags().String("password", spec.Auth.Password, "Admin password")
	}

	return cmd
}

// serviceOptions resolves flag values into service options.
func serviceOptions(cmd *cobra.Command, spec service.Spec, args []string) (service.Options, error) {
	opts := service.Options{
		Ports: make(map[string]int, len(spec.Ports)),
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}

	var err error
	if opts.Network, err = cmd.Flags().GetString("network"); err != nil {
		return opts, err
	}
	if opts.Tag, err = cmd.Flags().GetString("tag"); err != nil {
		return opts, err
	}
	for _, p := range spec.Ports {
		port, err := cmd.Flags().GetInt(p.Flag)
		if err != nil {
			return opts, err
		}
		opts.Ports[p.Flag] = port
	}
	if spec.DB != nil {
		if opts.DB, err = cmd.Flags().GetString("db-name"); err != nil {
			return opts, err
		}
	}
	if spec.Auth != nil {
		if opts.User, err = cmd.Flags().GetString("username"); err != nil {
			return opts, err
		}
		if opts.Password, err = cmd.Flags().GetString("password"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// upService connects to the daemon and runs the launch sequence.
func upService(cmd *cobra.Command, svc string, spec service.Spec, opts service.Options) error {
	engine, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer engine.Close()

	log.Debug("starting service",
		"service", svc,
		"name", opts.Name,
		"network", opts.Network,
		"tag", opts.Tag,
	)

	return launch.New(engine).Up(cmd.Context(), svc, spec, opts)
}

func init() {
	for _, svc := range service.Names {
		rootCmd.AddCommand(serviceCommand(svc, service.Registry[svc]))
	}
}
