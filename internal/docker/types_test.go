package docker

import "testing"

func TestContainerShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"full id", "4f5e6d7c8b9a0f1e2d3c4b5a69788796a5b4c3d2e1f00112233445566778899a", "4f5e6d7c8b9a"},
		{"exactly twelve", "abcdef012345", "abcdef012345"},
		{"short id", "abc123", "abc123"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Container{ID: tt.id}
			if got := c.ShortID(); got != tt.want {
				t.Errorf("ShortID() = %q, want %q", got, tt.want)
			}
		})
	}
}
