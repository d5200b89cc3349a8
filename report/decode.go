// SPDX-License-Identifier: MIT

// Package report: JSON/YAML boundary decoding.
//
// Both codecs decode into one raw shape (string-keyed maps, tuple-literal
// exchange keys) and funnel through a single raw→typed conversion, so the two
// formats cannot drift apart.
package report

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ecoloop/wastelca/exchange"
)

// rawReport mirrors the external document shape before key parsing.
type rawReport struct {
	ProcessName  []any                                    `json:"process name" yaml:"process name"`
	Technosphere map[string]map[string]float64            `json:"Technosphere" yaml:"Technosphere"`
	Waste        map[string]map[string]float64            `json:"Waste" yaml:"Waste"`
	Biosphere    map[string]map[string]float64            `json:"Biosphere" yaml:"Biosphere"`
	LCI          map[string]map[string]map[string]float64 `json:"LCI" yaml:"LCI"`
}

// DecodeJSON parses one process-model report document.
// Stage 1 (Decode): unmarshal into the raw string-keyed shape.
// Stage 2 (Validate/Convert): check the process-name pair, parse every
// exchange key through the restricted tuple grammar.
// Complexity: O(total entries).
func DecodeJSON(data []byte) (*Report, error) {
	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("report: decode json: %w", err)
	}

	return raw.typed()
}

// DecodeYAML parses one process-model report document in YAML form, used for
// human-authored scenario fixtures. Same validation as DecodeJSON.
func DecodeYAML(data []byte) (*Report, error) {
	var raw rawReport
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("report: decode yaml: %w", err)
	}

	return raw.typed()
}

// typed converts the raw document into a validated Report.
func (raw *rawReport) typed() (*Report, error) {
	if len(raw.ProcessName) < 2 {
		return nil, ErrNoProcessName
	}
	family, ok := raw.ProcessName[1].(string)
	if !ok {
		return nil, fmt.Errorf("report: %v: %w", raw.ProcessName[1], ErrBadFamily)
	}
	if len(raw.Technosphere) == 0 && len(raw.Waste) == 0 &&
		len(raw.Biosphere) == 0 && len(raw.LCI) == 0 {
		return nil, ErrEmptyReport
	}

	r := &Report{
		Label:  fmt.Sprint(raw.ProcessName[0]),
		Family: family,
	}

	var err error
	if r.Technosphere, err = typedGrouping(raw.Technosphere); err != nil {
		return nil, fmt.Errorf("report: Technosphere: %w", err)
	}
	if r.Waste, err = typedGrouping(raw.Waste); err != nil {
		return nil, fmt.Errorf("report: Waste: %w", err)
	}
	if r.Biosphere, err = typedGrouping(raw.Biosphere); err != nil {
		return nil, fmt.Errorf("report: Biosphere: %w", err)
	}
	if r.LCI, err = typedLCI(raw.LCI); err != nil {
		return nil, fmt.Errorf("report: LCI: %w", err)
	}

	return r, nil
}

// typedGrouping parses the tuple-literal counterpart keys of one grouping.
func typedGrouping(raw map[string]map[string]float64) (Grouping, error) {
	g := make(Grouping, len(raw))
	for material, amounts := range raw {
		g[material] = make(map[exchange.Key]float64, len(amounts))
		for lit, amount := range amounts {
			k, err := exchange.ParseKey(lit)
			if err != nil {
				return nil, fmt.Errorf("material %q: %w", material, err)
			}
			g[material][k] = amount
		}
	}

	return g, nil
}

// typedLCI parses the tuple-literal flow keys of the optional LCI grouping.
func typedLCI(raw map[string]map[string]map[string]float64) (LCIGrouping, error) {
	if raw == nil {
		return nil, nil
	}
	lci := make(LCIGrouping, len(raw))
	for sub, subsubs := range raw {
		lci[sub] = make(map[string]map[exchange.Key]float64, len(subsubs))
		for subsub, flows := range subsubs {
			lci[sub][subsub] = make(map[exchange.Key]float64, len(flows))
			for lit, amount := range flows {
				k, err := exchange.ParseKey(lit)
				if err != nil {
					return nil, fmt.Errorf("%s_to_%s: %w", sub, subsub, err)
				}
				lci[sub][subsub][k] = amount
			}
		}
	}

	return lci, nil
}
