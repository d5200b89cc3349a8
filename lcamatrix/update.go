// SPDX-License-Identifier: MIT

// Package lcamatrix: semantic update appliers.
//
// The appliers translate a process model's report groupings into composite
// exchange keys and overwrite the matching table amounts. They are pure
// validation + mutation: never adding or removing keys, failing fast on NaN
// amounts (ErrInvalidValue) and on keys outside the table's fixed set
// (ErrUnknownExchange). On failure, already-applied writes remain — callers
// needing atomicity snapshot the table first (Table.Snapshot / Restore).
package lcamatrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/ecoloop/wastelca/report"
)

// productSuffix derives a process's product database namespace from its name.
const productSuffix = "_product"

// UpdateTechnosphere applies the Technosphere and Waste groupings of rep, and
// the non-biosphere part of its LCI grouping, onto tbl for the process named
// process.
//
// Key derivation:
//   - Technosphere: (counterpart, (process, material))
//   - Waste: ((process_product, stripped + "_" + counterpart.Code),
//     (process, material)) — material prefixes DryRes/WetRes/ORG/REC are
//     stripped (with their separator) for Transfer_Station family reports;
//     the target half always keeps the unstripped material.
//   - LCI: (flow, (process_product, sub + "_to_" + subsub)) for every flow
//     key outside the biosphere namespace.
//
// Equal amounts are a no-op, so applying the same report twice is idempotent.
// Complexity: O(total report entries).
func UpdateTechnosphere(process string, rep *report.Report, tbl *Table, opts ...Option) error {
	if rep == nil {
		return ErrNilReport
	}
	if tbl == nil {
		return ErrNilTable
	}
	o := gatherOptions(opts...)

	for material, amounts := range rep.Technosphere {
		target := exchange.Key{Database: process, Code: material}
		for counterpart, amount := range amounts {
			key := exchange.Composite{Source: counterpart, Target: target}
			if err := applyAmount(tbl, key, amount); err != nil {
				return err
			}
		}
	}

	for material, amounts := range rep.Waste {
		stripped := material
		if rep.Family == report.TransferStation {
			stripped = stripTransferPrefix(material)
		}
		target := exchange.Key{Database: process, Code: material}
		for counterpart, amount := range amounts {
			product := exchange.Key{
				Database: process + productSuffix,
				Code:     stripped + "_" + counterpart.Code,
			}
			key := exchange.Composite{Source: product, Target: target}
			if err := applyAmount(tbl, key, amount); err != nil {
				return err
			}
		}
	}

	return applyLCI(process, rep, tbl, func(flow exchange.Key) bool {
		return !flow.In(o.bioNS)
	})
}

// UpdateBiosphere applies the Biosphere grouping of rep, and the
// biosphere-namespace part of its LCI grouping, onto tbl for the process
// named process. Same validation and idempotence as UpdateTechnosphere; no
// waste-style material stripping exists on the biosphere side.
// Complexity: O(total report entries).
func UpdateBiosphere(process string, rep *report.Report, tbl *Table, opts ...Option) error {
	if rep == nil {
		return ErrNilReport
	}
	if tbl == nil {
		return ErrNilTable
	}
	o := gatherOptions(opts...)

	for material, amounts := range rep.Biosphere {
		target := exchange.Key{Database: process, Code: material}
		for counterpart, amount := range amounts {
			key := exchange.Composite{Source: counterpart, Target: target}
			if err := applyAmount(tbl, key, amount); err != nil {
				return err
			}
		}
	}

	return applyLCI(process, rep, tbl, func(flow exchange.Key) bool {
		return flow.In(o.bioNS)
	})
}

// applyLCI walks the optional three-level LCI grouping and applies every
// flow admitted by want under the transport-link target
// (process_product, sub + "_to_" + subsub).
func applyLCI(process string, rep *report.Report, tbl *Table, want func(exchange.Key) bool) error {
	for sub, subsubs := range rep.LCI {
		for subsub, flows := range subsubs {
			target := exchange.Key{
				Database: process + productSuffix,
				Code:     sub + "_to_" + subsub,
			}
			for flow, amount := range flows {
				if !want(flow) {
					continue
				}
				key := exchange.Composite{Source: flow, Target: target}
				if err := applyAmount(tbl, key, amount); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// applyAmount validates one derived exchange and overwrites its amount.
// NaN is checked before presence so a malformed report (ErrInvalidValue) is
// distinguishable from a structurally incompatible one (ErrUnknownExchange).
func applyAmount(tbl *Table, key exchange.Composite, amount float64) error {
	if math.IsNaN(amount) {
		return fmt.Errorf("lcamatrix: exchange %s: %w", key, ErrInvalidValue)
	}
	current, ok := tbl.Get(key)
	if !ok {
		return fmt.Errorf("lcamatrix: exchange %s: %w", key, ErrUnknownExchange)
	}
	if current != amount {
		// keys were checked above; Set cannot fail here
		_ = tbl.Set(key, amount)
	}

	return nil
}

// stripTransferPrefix removes the transfer-station stream prefix (and its
// separator) from a waste material name: DryRes/WetRes drop 7 characters,
// ORG/REC drop 4. Unprefixed names pass through unchanged.
func stripTransferPrefix(material string) string {
	switch {
	case strings.HasPrefix(material, "DryRes") || strings.HasPrefix(material, "WetRes"):
		return trimAt(material, 7)
	case strings.HasPrefix(material, "ORG") || strings.HasPrefix(material, "REC"):
		return trimAt(material, 4)
	}

	return material
}

// trimAt drops the first n bytes, or everything when the name is shorter.
func trimAt(s string, n int) string {
	if len(s) <= n {
		return ""
	}

	return s[n:]
}
