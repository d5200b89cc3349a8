package lcamatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/ecoloop/wastelca/lcamatrix"
)

func TestRebuild_RoundTrip(t *testing.T) {
	in := newTestInputs(t)
	s, err := lcamatrix.New(in)
	require.NoError(t, err)

	// replaying the tables' own values must reproduce the original matrices
	require.NoError(t, s.RebuildTechnosphere(s.TechTable().Values()))
	require.NoError(t, s.RebuildBiosphere(s.BioTable().Values()))

	require.True(t, mat.Equal(in.Technosphere, s.Technosphere()))
	require.True(t, mat.Equal(in.Biosphere, s.Biosphere()))
}

func TestRebuild_RoundTripFromTable(t *testing.T) {
	in := newTestInputs(t)
	s, err := lcamatrix.New(in)
	require.NoError(t, err)

	require.NoError(t, s.RebuildTechnosphereFromTable())
	require.NoError(t, s.RebuildBiosphereFromTable())

	require.True(t, mat.Equal(in.Technosphere, s.Technosphere()))
	require.True(t, mat.Equal(in.Biosphere, s.Biosphere()))
}

func TestRebuild_NewValuesLandOnCapturedCoordinates(t *testing.T) {
	s := newTestSystem(t)

	// coordinate order is the technosphere fixture's row-major order
	require.NoError(t, s.RebuildTechnosphere([]float64{50, 8.28, 1, 10}))

	m := s.Technosphere()
	require.Equal(t, 50.0, m.At(0, 0))
	require.Equal(t, 8.28, m.At(1, 0))
	require.Equal(t, 1.0, m.At(2, 1))
	require.Equal(t, 10.0, m.At(2, 2))
	// untouched cells stay implicit zeros
	require.Equal(t, 0.0, m.At(0, 1))
}

func TestRebuild_ValueCountMismatch(t *testing.T) {
	s := newTestSystem(t)

	err := s.RebuildTechnosphere([]float64{1, 2})
	require.ErrorIs(t, err, lcamatrix.ErrValueCount)
	err = s.RebuildBiosphere(make([]float64, 5))
	require.ErrorIs(t, err, lcamatrix.ErrValueCount)
}

func TestRebuild_AfterTableMutation(t *testing.T) {
	in := newTestInputs(t)
	s, err := lcamatrix.New(in)
	require.NoError(t, err)

	key := exchange.Composite{Source: prodRejects, Target: actPlastic}
	require.NoError(t, s.TechTable().Set(key, 7.5))
	require.NoError(t, s.RebuildTechnosphereFromTable())

	require.Equal(t, 7.5, s.Technosphere().At(0, 0))
	// every other cell keeps its original value
	require.Equal(t, 0.828, s.Technosphere().At(1, 0))
	require.False(t, mat.Equal(in.Technosphere, s.Technosphere()))
}

func TestTable_SnapshotRestore(t *testing.T) {
	s := newTestSystem(t)
	tbl := s.TechTable()

	snap := tbl.Snapshot()
	key := exchange.Composite{Source: prodDiesel, Target: actMSW}
	require.NoError(t, tbl.Set(key, 42))

	require.NoError(t, tbl.Restore(snap))
	v, ok := tbl.Get(key)
	require.True(t, ok)
	require.Equal(t, 1.0, v)

	require.ErrorIs(t, tbl.Restore([]float64{1}), lcamatrix.ErrValueCount)
}
