// Package report models the per-process LCI report that process models hand
// to the matrix update appliers.
//
// Abstractly the report is a fixed-shape tagged record — the groupings
// (Technosphere, Waste, Biosphere, optional LCI) are known in advance — so it
// is an explicit structured type here, validated at the decode boundary,
// rather than a free-form nested dictionary accessed by untyped lookup. Shape
// mismatches surface as decode errors instead of later unknown-exchange
// confusion.
//
// Reports arrive either programmatically (New plus the Add* builders) or as
// JSON/YAML documents whose map keys carry exchange keys as tuple literals
// ("('namespace', 'code')"); DecodeJSON and DecodeYAML parse those through
// exchange.ParseKey.
package report
