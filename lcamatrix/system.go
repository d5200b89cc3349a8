// SPDX-License-Identifier: MIT

// Package lcamatrix: the solve context (System) and its construction.
//
// System owns the crux of the package: two parallel representations of each
// exchange matrix — the captured coordinate arrays and the key-addressed
// table — built together at construction and mutated only through operations
// that keep them in agreement (apply-by-key, rebuild-from-values).
package lcamatrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/ecoloop/wastelca/exchange"
)

// Inputs carries the solver's constructed state into New: the two compressed
// matrices and the three axis dictionaries.
type Inputs struct {
	// Technosphere is the solved technosphere matrix (products × activities).
	Technosphere *sparse.CSR

	// Biosphere is the solved biosphere matrix (flows × activities).
	Biosphere *sparse.CSR

	// Product maps technosphere row indices to product keys.
	Product *exchange.Dict

	// Activity maps column indices (both matrices) to activity keys.
	Activity *exchange.Dict

	// Flow maps biosphere row indices to flow keys. Build it with
	// exchange.WithDuplicateKeys: real inventories occasionally carry the
	// same flow node on two rows.
	Flow *exchange.Dict
}

// axis bundles one matrix with its write-once coordinate capture and its
// key-addressed table. rows, cols, nr, nc never change after construction;
// mtx is replaced wholesale by the rebuilders.
type axis struct {
	mtx    *sparse.CSR
	rows   []int // captured row index per non-zero, coordinate order
	cols   []int // captured col index per non-zero, coordinate order
	nr, nc int
	table  *Table
}

// System is one solve context: the matrix↔key bijection plus the solver's
// post-solve state. Not safe for concurrent use; see Fork.
type System struct {
	tech *axis
	bio  *axis

	product  *exchange.Dict
	activity *exchange.Dict
	flow     *exchange.Dict

	supply []float64 // post-solve scalar per activity index; nil until SetSolution
	score  float64
}

// New builds a System from a solved matrix set.
// Stage 1 (Validate): nil checks, dictionary lengths against matrix shapes.
// Stage 2 (Execute): decompose each CSR in deterministic coordinate order,
// capturing the coordinate arrays and filling the tables. Technosphere
// composites must be unique; biosphere collisions are kept under
// disambiguated keys (source code + " - n", incrementing), optionally logged
// via WithCollisionLogger.
// Stage 3 (Finalize): both tables have exactly one entry per non-zero cell.
// Complexity: O(nnz) time and memory over both matrices.
func New(in Inputs, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)

	if in.Technosphere == nil || in.Biosphere == nil {
		return nil, ErrNilMatrix
	}
	if in.Product == nil || in.Activity == nil || in.Flow == nil {
		return nil, ErrNilDict
	}

	tr, tc := in.Technosphere.Dims()
	if in.Product.Len() != tr || in.Activity.Len() != tc {
		return nil, fmt.Errorf("lcamatrix: technosphere %dx%d vs product=%d activity=%d: %w",
			tr, tc, in.Product.Len(), in.Activity.Len(), ErrShapeMismatch)
	}
	br, bc := in.Biosphere.Dims()
	if in.Flow.Len() != br || in.Activity.Len() != bc {
		return nil, fmt.Errorf("lcamatrix: biosphere %dx%d vs flow=%d activity=%d: %w",
			br, bc, in.Flow.Len(), in.Activity.Len(), ErrShapeMismatch)
	}

	s := &System{
		product:  in.Product,
		activity: in.Activity,
		flow:     in.Flow,
	}

	var err error
	if s.tech, err = buildAxis(in.Technosphere, in.Product, in.Activity, nil); err != nil {
		return nil, err
	}
	if s.bio, err = buildAxis(in.Biosphere, in.Flow, in.Activity, &o); err != nil {
		return nil, err
	}

	return s, nil
}

// buildAxis decomposes one CSR into coordinate order and builds its table.
// The traversal uses the CSR's canonical non-zero iteration (row-major),
// which is deterministic for a fixed matrix instance; the captured rows/cols
// replay values in exactly this order on rebuild.
// collide == nil means collisions are an error (technosphere); otherwise the
// biosphere disambiguation rule applies.
func buildAxis(m *sparse.CSR, rowDict, colDict *exchange.Dict, collide *options) (*axis, error) {
	nr, nc := m.Dims()
	nnz := m.NNZ()
	a := &axis{
		mtx:   m,
		rows:  make([]int, 0, nnz),
		cols:  make([]int, 0, nnz),
		nr:    nr,
		nc:    nc,
		table: newTable(nnz),
	}

	var buildErr error
	m.DoNonZero(func(i, j int, v float64) {
		if buildErr != nil {
			return
		}
		rowKey, err := rowDict.Key(i)
		if err != nil {
			buildErr = err

			return
		}
		colKey, err := colDict.Key(j)
		if err != nil {
			buildErr = err

			return
		}

		key := exchange.Composite{Source: rowKey, Target: colKey}
		if a.table.Contains(key) {
			if collide == nil {
				buildErr = fmt.Errorf("lcamatrix: cell (%d,%d) key %s: %w",
					i, j, key, ErrDuplicateExchange)

				return
			}
			key = disambiguate(a.table, key, collide)
		}

		a.rows = append(a.rows, i)
		a.cols = append(a.cols, j)
		a.table.append(key, v)
	})
	if buildErr != nil {
		return nil, buildErr
	}

	return a, nil
}

// disambiguate derives a free key for a colliding biosphere composite by
// appending " - n" to the source key's code, incrementing n until no entry
// matches. Every colliding cell keeps its own table entry, so the table
// length always equals the non-zero count.
func disambiguate(t *Table, key exchange.Composite, o *options) exchange.Composite {
	cand := key
	for n := 1; ; n++ {
		cand.Source.Code = fmt.Sprintf("%s - %d", key.Source.Code, n)
		if !t.Contains(cand) {
			break
		}
	}
	if o.log != nil {
		o.log.Warn("duplicate biosphere flow, keeping both entries",
			"key", key.String(), "stored_as", cand.String())
	}

	return cand
}

// TechTable returns the technosphere exchange table. The table is live: the
// update appliers mutate it in place and the from-table rebuilder reads it.
func (s *System) TechTable() *Table { return s.tech.table }

// BioTable returns the biosphere exchange table.
func (s *System) BioTable() *Table { return s.bio.table }

// Technosphere returns the current working technosphere matrix (the original
// until the first rebuild, then the most recent rebuild).
func (s *System) Technosphere() *sparse.CSR { return s.tech.mtx }

// Biosphere returns the current working biosphere matrix.
func (s *System) Biosphere() *sparse.CSR { return s.bio.mtx }

// SetSolution stores the solver's post-solve state: the supply array indexed
// by activity position and the aggregate score. The supply length must equal
// the activity-axis length (ErrShapeMismatch).
func (s *System) SetSolution(supply []float64, score float64) error {
	if len(supply) != s.activity.Len() {
		return fmt.Errorf("lcamatrix: supply length %d vs %d activities: %w",
			len(supply), s.activity.Len(), ErrShapeMismatch)
	}
	s.supply = append([]float64(nil), supply...)
	s.score = score

	return nil
}

// Score returns the solver's aggregate result, or ErrNoSolution before
// SetSolution.
func (s *System) Score() (float64, error) {
	if s.supply == nil {
		return 0, ErrNoSolution
	}

	return s.score, nil
}

// Supply returns the post-solve scalar for activity index i.
// Returns ErrNoSolution before SetSolution and ErrIndexRange for a bad index.
func (s *System) Supply(i int) (float64, error) {
	if s.supply == nil {
		return 0, ErrNoSolution
	}
	if i < 0 || i >= len(s.supply) {
		return 0, fmt.Errorf("lcamatrix: supply index %d of %d: %w", i, len(s.supply), ErrIndexRange)
	}

	return s.supply[i], nil
}

// ActivityKeys returns the activity axis keys in index order.
// Part of the massflow.Solved surface.
func (s *System) ActivityKeys() []exchange.Key { return s.activity.Keys() }

// ActivityIndex returns the axis index of an activity key.
// Part of the massflow.Solved surface.
func (s *System) ActivityIndex(k exchange.Key) (int, bool) { return s.activity.Index(k) }

// Fork returns an independent copy for a parallel trial: dictionaries and
// coordinate captures are shared read-only, tables and working matrices are
// deep-copied, and solution state is cleared. The fork and the receiver can
// then run their iteration loops concurrently (each still single-threaded).
// Complexity: O(nnz) over both matrices.
func (s *System) Fork() *System {
	return &System{
		tech:     s.tech.clone(),
		bio:      s.bio.clone(),
		product:  s.product,
		activity: s.activity,
		flow:     s.flow,
	}
}

// clone deep-copies the working matrix and table; the coordinate capture is
// write-once and shared.
func (a *axis) clone() *axis {
	return &axis{
		mtx:   copyCSR(a.mtx),
		rows:  a.rows,
		cols:  a.cols,
		nr:    a.nr,
		nc:    a.nc,
		table: a.table.clone(),
	}
}

// copyCSR deep-copies a CSR matrix via its non-zero triples.
func copyCSR(m *sparse.CSR) *sparse.CSR {
	nr, nc := m.Dims()
	nnz := m.NNZ()
	rows := make([]int, 0, nnz)
	cols := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	m.DoNonZero(func(i, j int, v float64) {
		rows = append(rows, i)
		cols = append(cols, j)
		data = append(data, v)
	})

	return sparse.NewCOO(nr, nc, rows, cols, data).ToCSR()
}
