// Package config loads the JSON run configuration for a coverage report.
package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/contigcov"
	"github.com/carbocation/contigcov/plot"
	"github.com/carbocation/pfx"
)

type JSONConfig struct {
	ConfigPath        string
	Inputs            []string             `json:"inputs"`
	IgnoreSamples     []string             `json:"ignore_samples"`
	IgnoreSamplesFile string               `json:"ignore_samples_file"`
	Output            string               `json:"output"`
	Plot              plot.LineGraphConfig `json:"plot"`
}

func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := JSONConfig{ConfigPath: path}

	f, err := os.Open(contigcov.ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&out)
	if err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return out, pfx.Err(err)
	}

	out.ExpandPaths()

	return out, nil
}

// ExpandPaths interprets ~ in every path field.
func (c *JSONConfig) ExpandPaths() {
	c.ConfigPath = contigcov.ExpandHome(c.ConfigPath)
	c.IgnoreSamplesFile = contigcov.ExpandHome(c.IgnoreSamplesFile)
	c.Output = contigcov.ExpandHome(c.Output)
	for i, v := range c.Inputs {
		c.Inputs[i] = contigcov.ExpandHome(v)
	}
}
