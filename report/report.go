// SPDX-License-Identifier: MIT

// Package report: the typed report structure and programmatic builders.
package report

import "github.com/ecoloop/wastelca/exchange"

// TransferStation is the process family tag that triggers waste-material
// prefix stripping in the technosphere update applier.
const TransferStation = "Transfer_Station"

// Grouping maps a material/flow name to its counterpart amounts:
// counterpart key → exchange amount.
type Grouping map[string]map[exchange.Key]float64

// LCIGrouping is the optional three-level inter-process inventory:
// sub-process → sub-sub-process → flow key → amount. The appliers derive
// transport-link exchanges ("<sub>_to_<subsub>") from it.
type LCIGrouping map[string]map[string]map[exchange.Key]float64

// Report is one process model's LCI report. The groupings themselves are
// free-form on the producer side; the fixed-key discipline lives in the
// exchange tables the report is applied to.
type Report struct {
	// Label is the first "process name" element, kept verbatim for messages.
	Label string

	// Family is the process family tag (second "process name" element),
	// e.g. TransferStation.
	Family string

	Technosphere Grouping
	Waste        Grouping
	Biosphere    Grouping

	// LCI is optional; nil when the report carries no inter-process inventory.
	LCI LCIGrouping
}

// New returns an empty report for programmatic producers.
func New(label, family string) *Report {
	return &Report{
		Label:        label,
		Family:       family,
		Technosphere: Grouping{},
		Waste:        Grouping{},
		Biosphere:    Grouping{},
	}
}

// HasLCI reports whether the optional LCI grouping is present and non-empty.
func (r *Report) HasLCI() bool { return len(r.LCI) > 0 }

// AddTechnosphere records one technosphere amount for material.
func (r *Report) AddTechnosphere(material string, counterpart exchange.Key, amount float64) {
	addGrouping(&r.Technosphere, material, counterpart, amount)
}

// AddWaste records one waste amount for material.
func (r *Report) AddWaste(material string, counterpart exchange.Key, amount float64) {
	addGrouping(&r.Waste, material, counterpart, amount)
}

// AddBiosphere records one biosphere amount for material.
func (r *Report) AddBiosphere(material string, counterpart exchange.Key, amount float64) {
	addGrouping(&r.Biosphere, material, counterpart, amount)
}

// AddLCI records one inter-process flow amount under sub → subsub.
func (r *Report) AddLCI(sub, subsub string, flow exchange.Key, amount float64) {
	if r.LCI == nil {
		r.LCI = LCIGrouping{}
	}
	if r.LCI[sub] == nil {
		r.LCI[sub] = map[string]map[exchange.Key]float64{}
	}
	if r.LCI[sub][subsub] == nil {
		r.LCI[sub][subsub] = map[exchange.Key]float64{}
	}
	r.LCI[sub][subsub][flow] = amount
}

func addGrouping(g *Grouping, material string, counterpart exchange.Key, amount float64) {
	if *g == nil {
		*g = Grouping{}
	}
	if (*g)[material] == nil {
		(*g)[material] = map[exchange.Key]float64{}
	}
	(*g)[material][counterpart] = amount
}
