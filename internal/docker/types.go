package docker

import "time"

// ManagedLabel marks containers started by devup. Its value is the service
// command name the container was started as.
const ManagedLabel = "devup.service"

// RunConfig holds configuration for creating and starting a service container.
type RunConfig struct {
	Name     string
	Hostname string
	Image    string
	Network  string
	Cmd      []string
	Env      []string
	Labels   map[string]string
	// Ports maps container ports to host ports (TCP).
	Ports   map[int]int
	Volumes []VolumeMount
	Health  *HealthCheck
	// AutoRemove removes the container when it exits.
	AutoRemove bool
}

// VolumeMount describes a named data volume.
type VolumeMount struct {
	Name   string
	Target string
}

// HealthCheck is the engine-native health probe configuration.
type HealthCheck struct {
	// Test is in exec form; a leading "CMD-SHELL" runs the rest via the
	// image shell.
	Test     []string
	Interval time.Duration
	Timeout  time.Duration
	Retries  int
}

// Container identifies a created container.
type Container struct {
	ID   string
	Name string
}

// ShortID returns the 12-character short form of the container ID.
func (c Container) ShortID() string {
	if len(c.ID) < 12 {
		return c.ID
	}
	return c.ID[:12]
}

// Info describes a managed container for listing.
type Info struct {
	ID      string
	Name    string
	Service string
	Image   string
	Status  string
	Created time.Time
}
