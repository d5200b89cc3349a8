package lcamatrix_test

import (
	"testing"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/ecoloop/wastelca/lcamatrix"
	"github.com/ecoloop/wastelca/report"
)

// BenchmarkIteration measures the Monte Carlo hot path: apply one report and
// replay the table into a fresh technosphere matrix.
func BenchmarkIteration(b *testing.B) {
	s := newTestSystem(b)

	rep := report.New("x", report.TransferStation)
	rep.AddTechnosphere("DryRes_Plastic", prodAerobic, 0.9)
	rep.AddWaste("DryRes_Plastic", exchange.Key{Database: "Out", Code: "Rejects"}, 5.5)
	rep.AddLCI("SF1", "LF", prodDiesel, 0.25)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := lcamatrix.UpdateTechnosphere("TS1", rep, s.TechTable()); err != nil {
			b.Fatal(err)
		}
		if err := s.RebuildTechnosphereFromTable(); err != nil {
			b.Fatal(err)
		}
	}
}
