package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryContainsAllServices(t *testing.T) {
	want := []string{"pg", "timescale", "rmq", "redis", "scylla", "nats", "zk", "kafka"}
	assert.Equal(t, want, Names)
	for _, svc := range want {
		_, ok := Get(svc)
		assert.True(t, ok, "registry missing %s", svc)
	}
}

func TestRegistryDefaults(t *testing.T) {
	tests := []struct {
		svc   string
		image string
		tag   string
		port  int
	}{
		{"pg", "postgres", "16.3-bookworm", 5432},
		{"timescale", "timescale/timescaledb", "2.15.3-pg16", 5432},
		{"rmq", "rabbitmq", "3.13-management", 5672},
		{"redis", "redis", "7-bookworm", 6379},
		{"scylla", "scylladb/scylla", "6.0.1", 9042},
		{"nats", "nats", "2.9-alpine", 4222},
		{"zk", "bitnami/zookeeper", "3.9.2", 2181},
		{"kafka", "bitnami/kafka", "3.7-debian-12", 9094},
	}

	for _, tt := range tests {
		t.Run(tt.svc, func(t *testing.T) {
			spec, ok := Get(tt.svc)
			require.True(t, ok)
			assert.Equal(t, tt.image, spec.Image)
			assert.Equal(t, tt.tag, spec.DefaultTag)
			require.NotEmpty(t, spec.Ports)
			assert.Equal(t, tt.port, spec.Ports[0].Default)
			assert.NotEmpty(t, spec.Health.Test)
			assert.Positive(t, spec.Health.Retries)
		})
	}
}

func TestRegistryRabbitPorts(t *testing.T) {
	spec, ok := Get("rmq")
	require.True(t, ok)
	require.Len(t, spec.Ports, 2)
	assert.Equal(t, "port", spec.Ports[0].Flag)
	assert.Equal(t, 5672, spec.Ports[0].Container)
	assert.Equal(t, "ui-port", spec.Ports[1].Flag)
	assert.Equal(t, 15672, spec.Ports[1].Container)
	require.NotNil(t, spec.Auth)
	assert.Equal(t, "guest", spec.Auth.User)
	assert.Equal(t, "guest", spec.Auth.Password)
}

func TestRegistryHealthForms(t *testing.T) {
	// Scalar tests become CMD-SHELL
	pg, _ := Get("pg")
	assert.Equal(t, HealthTest{"CMD-SHELL", "pg_isready -U {db}"}, pg.Health.Test)

	// Exec-form sequences pass through untouched
	nats, _ := Get("nats")
	require.GreaterOrEqual(t, len(nats.Health.Test), 2)
	assert.Equal(t, "CMD", nats.Health.Test[0])
}

func TestRegistryVolumes(t *testing.T) {
	tests := []struct {
		svc    string
		suffix string
		target string
	}{
		{"pg", "pg-db", "/var/lib/postgresql/data"},
		{"timescale", "ts-db", "/var/lib/postgresql/data"},
		{"scylla", "scylla-db", "/var/lib/scylla"},
	}
	for _, tt := range tests {
		t.Run(tt.svc, func(t *testing.T) {
			spec, _ := Get(tt.svc)
			require.NotNil(t, spec.Volume)
			assert.Equal(t, tt.suffix, spec.Volume.Suffix)
			assert.Equal(t, tt.target, spec.Volume.Target)
		})
	}

	// Stateless services have no volume
	for _, svc := range []string{"redis", "rmq", "nats", "zk", "kafka"} {
		spec, _ := Get(svc)
		assert.Nil(t, spec.Volume, "%s should not declare a volume", svc)
	}
}

func TestRegistryEnvOrder(t *testing.T) {
	spec, _ := Get("pg")
	keys := make([]string, len(spec.Env))
	for i, e := range spec.Env {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"POSTGRES_PASSWORD", "POSTGRES_USER", "POSTGRES_DB"}, keys)
}
