// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const catalogFile = "catalog.yaml"

// StaticResources holds the files packed into the binary
var StaticResources = packr.NewBox("./resources")

// Catalog lists the capabilities the bootstrap asks for in debug mode
type Catalog struct {
	Layers         []string `yaml:"layers"`
	DebugExtension string   `yaml:"debugExtension"`
}

// LoadCatalog reads the catalog packed with the binary
func LoadCatalog() (Catalog, error) {
	data, err := StaticResources.Find(catalogFile)
	if err != nil {
		return Catalog{}, errors.Wrap(err, "packr.Find()")
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, errors.Wrapf(ErrConfiguration, "catalog: %s", err)
	}
	if c.DebugExtension == "" {
		return Catalog{}, errors.Wrap(ErrConfiguration, "catalog: no debug extension")
	}
	for _, layer := range c.Layers {
		if layer == "" {
			return Catalog{}, errors.Wrap(ErrConfiguration, "catalog: empty layer name")
		}
	}
	return c, nil
}
