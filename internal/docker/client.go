// Package docker wraps the Docker Engine client with the operations devup
// needs: image pull, network ensure, container run, health polling, and
// address inspection.
package docker

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/devupkit/devup/internal/log"
)

// healthPollInterval is how often WaitHealthy re-inspects the container.
const healthPollInterval = 100 * time.Millisecond

// Client wraps the Docker client.
type Client struct {
	cli *client.Client
}

// NewClient creates a Docker client from the environment.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	return &Client{cli: cli}, nil
}

// Close releases Docker client resources.
func (c *Client) Close() error {
	return c.cli.Close()
}

// Ping verifies the Docker daemon is accessible.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.cli.Ping(ctx)
	if err != nil {
		return fmt.Errorf("docker daemon not accessible: %w", err)
	}
	return nil
}

// PullImage pulls ref and returns the canonical repo:tag it resolved to.
func (c *Client) PullImage(ctx context.Context, ref string) (string, error) {
	reader, err := c.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return "", fmt.Errorf("pulling image %s: %w", ref, err)
	}
	defer reader.Close()

	// Drain the reader to complete the pull (discard JSON progress output)
	_, _ = io.Copy(io.Discard, reader)

	inspect, err := c.cli.ImageInspect(ctx, ref)
	if err == nil && len(inspect.RepoTags) > 0 {
		return inspect.RepoTags[0], nil
	}
	return ref, nil
}

// EnsureNetwork returns the ID of the named network, creating an attachable
// bridge network if it does not exist.
func (c *Client) EnsureNetwork(ctx context.Context, name string) (string, error) {
	nw, err := c.cli.NetworkInspect(ctx, name, network.InspectOptions{})
	if err == nil {
		return nw.ID, nil
	}
	if !errdefs.IsNotFound(err) {
		return "", fmt.Errorf("inspecting network %s: %w", name, err)
	}

	log.Debug("creating network", "name", name)
	resp, err := c.cli.NetworkCreate(ctx, name, network.CreateOptions{
		Driver:     "bridge",
		Attachable: true,
	})
	if err != nil {
		// Another process may have created it between inspect and create.
		if errdefs.IsConflict(err) {
			if nw, ierr := c.cli.NetworkInspect(ctx, name, network.InspectOptions{}); ierr == nil {
				return nw.ID, nil
			}
		}
		return "", fmt.Errorf("creating network %s: %w", name, err)
	}
	return resp.ID, nil
}

// RunContainer creates and starts a container. The created container is
// removed if the start fails.
func (c *Client) RunContainer(ctx context.Context, cfg RunConfig) (Container, error) {
	exposedPorts := make(nat.PortSet, len(cfg.Ports))
	portBindings := make(nat.PortMap, len(cfg.Ports))
	for containerPort, hostPort := range cfg.Ports {
		port := nat.Port(fmt.Sprintf("%d/tcp", containerPort))
		exposedPorts[port] = struct{}{}
		portBindings[port] = []nat.PortBinding{{
			HostPort: fmt.Sprintf("%d", hostPort),
		}}
	}

	mounts := make([]mount.Mount, len(cfg.Volumes))
	for i, v := range cfg.Volumes {
		mounts[i] = mount.Mount{
			Type:   mount.TypeVolume,
			Source: v.Name,
			Target: v.Target,
		}
	}

	var healthcheck *container.HealthConfig
	if cfg.Health != nil {
		healthcheck = &container.HealthConfig{
			Test:     cfg.Health.Test,
			Interval: cfg.Health.Interval,
			Timeout:  cfg.Health.Timeout,
			Retries:  cfg.Health.Retries,
		}
	}

	resp, err := c.cli.ContainerCreate(ctx,
		&container.Config{
			Image:        cfg.Image,
			Cmd:          cfg.Cmd,
			Hostname:     cfg.Hostname,
			Env:          cfg.Env,
			Labels:       cfg.Labels,
			ExposedPorts: exposedPorts,
			Healthcheck:  healthcheck,
		},
		&container.HostConfig{
			NetworkMode:  container.NetworkMode(cfg.Network),
			PortBindings: portBindings,
			Mounts:       mounts,
			AutoRemove:   cfg.AutoRemove,
		},
		&network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				cfg.Network: {
					Aliases: []string{cfg.Hostname},
				},
			},
		},
		nil, // platform
		cfg.Name,
	)
	if err != nil {
		return Container{}, fmt.Errorf("creating container: %w", err)
	}

	if err := c.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		// Clean up on failure
		_ = c.cli.ContainerRemove(ctx, resp.ID, container.RemoveOptions{Force: true})
		return Container{}, fmt.Errorf("starting container: %w", err)
	}

	return Container{ID: resp.ID, Name: cfg.Name}, nil
}

// WaitHealthy polls the container until its health status reports healthy.
// The loop has no timeout of its own; the engine-side health check's retry
// budget bounds it, and ctx cancellation aborts it.
func (c *Client) WaitHealthy(ctx context.Context, containerID string) error {
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()

	for {
		inspect, err := c.cli.ContainerInspect(ctx, containerID)
		if err != nil {
			return fmt.Errorf("inspecting container: %w", err)
		}
		if inspect.State == nil || inspect.State.Health == nil {
			return fmt.Errorf("container %s has no health check", containerID)
		}
		if inspect.State.Health.Status == container.Healthy {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// NetworkAddresses returns the container's IP address on each attached
// network.
func (c *Client) NetworkAddresses(ctx context.Context, containerID string) (map[string]string, error) {
	inspect, err := c.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("inspecting container: %w", err)
	}

	addrs := make(map[string]string)
	for name, endpoint := range inspect.NetworkSettings.Networks {
		addrs[name] = endpoint.IPAddress
	}
	return addrs, nil
}

// ListManaged returns all devup-managed containers (running and stopped).
func (c *Client) ListManaged(ctx context.Context) ([]Info, error) {
	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", ManagedLabel)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	var result []Info
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			// Names have a leading slash, e.g. "/pg"
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		result = append(result, Info{
			ID:      Container{ID: ctr.ID}.ShortID(),
			Name:    name,
			Service: ctr.Labels[ManagedLabel],
			Image:   ctr.Image,
			Status:  ctr.State,
			Created: time.Unix(ctr.Created, 0),
		})
	}
	return result, nil
}

// RemoveContainer force-removes a container. Not-found errors are ignored;
// auto-remove may have beaten us to it.
func (c *Client) RemoveContainer(ctx context.Context, containerID string) error {
	err := c.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true})
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("removing container: %w", err)
	}
	return nil
}
