// Package service defines the catalog of supported development services.
// Each entry describes the image, ports, environment, data volume, and
// engine-native health check for one service, loaded from an embedded
// registry file.
package service

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devupkit/devup/internal/docker"
	"github.com/devupkit/devup/internal/name"
)

// Spec describes one service from the registry.
type Spec struct {
	Summary    string      `yaml:"summary"`
	Image      string      `yaml:"image"`
	DefaultTag string      `yaml:"default-tag"`
	Hostname   string      `yaml:"hostname"`
	Cmd        []string    `yaml:"cmd,omitempty"`
	Ports      []PortSpec  `yaml:"ports"`
	Env        EnvMap      `yaml:"env,omitempty"`
	DB         *DBSpec     `yaml:"db,omitempty"`
	Auth       *AuthSpec   `yaml:"auth,omitempty"`
	Volume     *VolumeSpec `yaml:"volume,omitempty"`
	Health     HealthSpec  `yaml:"health"`
}

// EnvMap preserves registry declaration order for environment variables.
type EnvMap []EnvVar

// EnvVar is a single environment entry. Values may contain {db}, {user},
// {password}, and {hostname} placeholders.
type EnvVar struct {
	Key   string
	Value string
}

// UnmarshalYAML decodes a YAML mapping into an ordered list of entries.
func (m *EnvMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("env: expected mapping, got %v", node.Kind)
	}
	out := make(EnvMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, EnvVar{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*m = out
	return nil
}

// PortSpec declares one published port and the flag that overrides its
// host-side value.
type PortSpec struct {
	Container int    `yaml:"container"`
	Flag      string `yaml:"flag"`
	Default   int    `yaml:"default"`
	Help      string `yaml:"help"`
}

// DBSpec declares a --db-name flag. User, password, and database name all
// take this value, matching the container images' bootstrap conventions.
type DBSpec struct {
	Default string `yaml:"default"`
	Help    string `yaml:"help"`
}

// AuthSpec declares --username/--password flags.
type AuthSpec struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// VolumeSpec declares a named data volume created when the container is
// given an explicit name.
type VolumeSpec struct {
	Suffix string `yaml:"suffix"`
	Target string `yaml:"target"`
}

// HealthSpec is the engine-native health check configuration.
type HealthSpec struct {
	Test     HealthTest `yaml:"test"`
	Interval Duration   `yaml:"interval"`
	Timeout  Duration   `yaml:"timeout"`
	Retries  int        `yaml:"retries"`
}

// HealthTest accepts either a scalar (run via the image shell) or an
// explicit exec-form sequence.
type HealthTest []string

// UnmarshalYAML decodes a scalar into CMD-SHELL form and a sequence as-is.
func (t *HealthTest) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = HealthTest{"CMD-SHELL", node.Value}
		return nil
	case yaml.SequenceNode:
		var seq []string
		if err := node.Decode(&seq); err != nil {
			return err
		}
		*t = HealthTest(seq)
		return nil
	default:
		return fmt.Errorf("health test: expected scalar or sequence, got %v", node.Kind)
	}
}

// Duration is a time.Duration that unmarshals from strings like "2s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Options carries per-invocation values resolved from CLI flags.
type Options struct {
	// Name is the user-supplied container name. Empty means a random name
	// is generated and no data volume is created.
	Name    string
	Tag     string
	Network string
	// DB is the --db-name value for services with a DB spec.
	DB string
	// User and Password are the --username/--password values.
	User     string
	Password string
	// Ports maps port flag names to host port values.
	Ports map[string]int
}

// BuildRun assembles the container run request for a service.
func BuildRun(svc string, spec Spec, opts Options) (docker.RunConfig, error) {
	tag := opts.Tag
	if tag == "" {
		tag = spec.DefaultTag
	}

	containerName := opts.Name
	hostname := spec.Hostname
	if containerName == "" {
		containerName = name.Generate()
	} else {
		hostname = containerName
	}

	vars := placeholders(spec, opts, hostname)

	var env []string
	for _, e := range spec.Env {
		env = append(env, e.Key+"="+render(e.Value, vars))
	}

	ports := make(map[int]int, len(spec.Ports))
	for _, p := range spec.Ports {
		host := p.Default
		if v, ok := opts.Ports[p.Flag]; ok {
			host = v
		}
		if host < 1 || host > 65535 {
			return docker.RunConfig{}, fmt.Errorf("invalid host port %d for %s", host, p.Flag)
		}
		ports[p.Container] = host
	}

	var volumes []docker.VolumeMount
	// Data volumes are keyed to the user-chosen name so they survive
	// restarts of the same named container. Anonymous runs stay ephemeral.
	if spec.Volume != nil && opts.Name != "" {
		volumes = append(volumes, docker.VolumeMount{
			Name:   opts.Name + "-" + spec.Volume.Suffix,
			Target: spec.Volume.Target,
		})
	}

	test := make([]string, len(spec.Health.Test))
	for i, part := range spec.Health.Test {
		test[i] = render(part, vars)
	}

	return docker.RunConfig{
		Name:     containerName,
		Hostname: hostname,
		Image:    spec.Image + ":" + tag,
		Network:  opts.Network,
		Cmd:      spec.Cmd,
		Env:      env,
		Labels:   map[string]string{docker.ManagedLabel: svc},
		Ports:    ports,
		Volumes:  volumes,
		Health: &docker.HealthCheck{
			Test:     test,
			Interval: time.Duration(spec.Health.Interval),
			Timeout:  time.Duration(spec.Health.Timeout),
			Retries:  spec.Health.Retries,
		},
		AutoRemove: true,
	}, nil
}

// placeholders builds the substitution table for env and health templates.
func placeholders(spec Spec, opts Options, hostname string) map[string]string {
	vars := map[string]string{
		"hostname": hostname,
	}
	if spec.DB != nil {
		db := opts.DB
		if db == "" {
			db = spec.DB.Default
		}
		vars["db"] = db
	}
	if spec.Auth != nil {
		user := opts.User
		if user == "" {
			user = spec.Auth.User
		}
		password := opts.Password
		if password == "" {
			password = spec.Auth.Password
		}
		vars["user"] = user
		vars["password"] = password
	}
	return vars
}

// render substitutes {key} placeholders in s.
func render(s string, vars map[string]string) string {
	for k, v := range vars {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}
