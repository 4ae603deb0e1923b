// Package launch runs the start sequence for a development service
// container: pull image, ensure network, create and start the container,
// wait for a healthy status, and report its network addresses.
package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/devupkit/devup/internal/docker"
	"github.com/devupkit/devup/internal/log"
	"github.com/devupkit/devup/internal/service"
	"github.com/devupkit/devup/internal/ui"
)

// Engine is the subset of container-engine operations the launcher needs.
// Implemented by *docker.Client; faked in tests.
type Engine interface {
	PullImage(ctx context.Context, ref string) (string, error)
	EnsureNetwork(ctx context.Context, name string) (string, error)
	RunContainer(ctx context.Context, cfg docker.RunConfig) (docker.Container, error)
	WaitHealthy(ctx context.Context, containerID string) error
	NetworkAddresses(ctx context.Context, containerID string) (map[string]string, error)
}

// Launcher executes the start sequence against an Engine.
type Launcher struct {
	engine Engine
	out    io.Writer
}

// New returns a Launcher writing progress to stdout.
func New(engine Engine) *Launcher {
	return &Launcher{engine: engine, out: os.Stdout}
}

// SetOutput overrides the output writer (for testing).
func (l *Launcher) SetOutput(w io.Writer) {
	l.out = w
}

// Up starts the named service and blocks until it reports healthy.
func (l *Launcher) Up(ctx context.Context, svc string, spec service.Spec, opts service.Options) error {
	cfg, err := service.BuildRun(svc, spec, opts)
	if err != nil {
		return err
	}

	var image string
	err = ui.WithSpinner("Pulling image "+cfg.Image, func() error {
		var pullErr error
		image, pullErr = l.engine.PullImage(ctx, cfg.Image)
		return pullErr
	})
	if err != nil {
		return err
	}
	cfg.Image = image

	err = ui.WithSpinner("Creating network "+cfg.Network, func() error {
		_, err := l.engine.EnsureNetwork(ctx, cfg.Network)
		return err
	})
	if err != nil {
		return err
	}

	ctr, err := l.engine.RunContainer(ctx, cfg)
	if err != nil {
		return err
	}
	log.Debug("container started", "service", svc, "id", ctr.ID, "name", ctr.Name)

	fmt.Fprintf(l.out, "Container %s with id %s successfully started\n",
		ctr.Name, ui.Green(ctr.ShortID()))

	err = ui.WithSpinner("waiting for the condition", func() error {
		return l.engine.WaitHealthy(ctx, ctr.ID)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Container is %s!\n", ui.BrightGreen("healthy"))

	addrs, err := l.engine.NetworkAddresses(ctx, ctr.ID)
	if err != nil {
		return err
	}
	l.printAddresses(addrs)

	return nil
}

// printAddresses writes per-network IPs, sorted by network name.
func (l *Launcher) printAddresses(addrs map[string]string) {
	fmt.Fprintln(l.out, "Container IPs:")
	networks := make([]string, 0, len(addrs))
	for network := range addrs {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	for _, network := range networks {
		fmt.Fprintf(l.out, "\t%s: %s\n", network, ui.Green(addrs[network]))
	}
}
