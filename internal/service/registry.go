package service

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryData []byte

// Registry holds all supported services keyed by command name.
var Registry map[string]Spec

// Names lists the registry keys in declaration order.
var Names []string

func init() {
	Registry = make(map[string]Spec)
	if err := yaml.Unmarshal(registryData, &Registry); err != nil {
		panic("invalid registry.yaml: " + err.Error())
	}

	// yaml maps lose order; recover it from the document node so command
	// registration is stable.
	var doc yaml.Node
	if err := yaml.Unmarshal(registryData, &doc); err != nil {
		panic("invalid registry.yaml: " + err.Error())
	}
	root := doc.Content[0]
	for i := 0; i < len(root.Content); i += 2 {
		Names = append(Names, root.Content[i].Value)
	}
}

// Get returns the spec for a service command name.
func Get(svc string) (Spec, bool) {
	spec, ok := Registry[svc]
	return spec, ok
}
