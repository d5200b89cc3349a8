// Package wastelca is an in-memory bookkeeping layer between waste-management
// process models and a sparse linear-algebra LCA solver.
//
// 🚀 What is wastelca?
//
//	A library that keeps two views of the same LCA exchange data in permanent
//	agreement:
//		• Sparse matrices: the technosphere and biosphere matrices the solver
//		  factorizes (CSR form, github.com/james-bowman/sparse)
//		• Exchange tables: the same non-zero cells addressed by semantic
//		  (source key, activity key) pairs, mutable by process models
//
// Process models update exchange amounts by key; the tables replay those
// amounts back into fresh sparse matrices in the original coordinate order,
// so repeated Monte Carlo or optimization iterations never re-derive
// sparse-matrix index positions.
//
// Everything is organized under four subpackages:
//
//	exchange/  — semantic keys, composite exchange keys, index↔key dictionaries
//	lcamatrix/ — solve-context bookkeeping: bijection builder, ordered tables,
//	             matrix rebuilders, semantic update appliers
//	report/    — typed per-process report structure with JSON/YAML boundary decoding
//	massflow/  — read-only mass aggregation over solved supply arrays
//
// The linear solve itself, impact characterization, and any persistence live
// outside this module; wastelca only owns the translation between matrix
// coordinates and semantic keys.
package wastelca
