package lcamatrix_test

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/ecoloop/wastelca/exchange"
	"github.com/ecoloop/wastelca/lcamatrix"
	"github.com/ecoloop/wastelca/report"
)

// Example walks one iteration of the usual loop: build the solve context,
// apply a process report by key, replay the table into a fresh matrix.
func Example() {
	product, _ := exchange.NewDict([]exchange.Key{
		{Database: "TS1_product", Code: "Plastic_Rejects"},
	})
	activity, _ := exchange.NewDict([]exchange.Key{
		{Database: "TS1", Code: "DryRes_Plastic"},
	})
	flow, _ := exchange.NewDict([]exchange.Key{
		{Database: exchange.BiosphereDB, Code: "co2"},
	})

	s, _ := lcamatrix.New(lcamatrix.Inputs{
		Technosphere: sparse.NewCOO(1, 1, []int{0}, []int{0}, []float64{1.0}).ToCSR(),
		Biosphere:    sparse.NewCOO(1, 1, []int{0}, []int{0}, []float64{2e-3}).ToCSR(),
		Product:      product,
		Activity:     activity,
		Flow:         flow,
	})

	rep := report.New("Transfer Station 1", report.TransferStation)
	rep.AddWaste("DryRes_Plastic", exchange.Key{Database: "Out", Code: "Rejects"}, 5.0)

	if err := lcamatrix.UpdateTechnosphere("TS1", rep, s.TechTable()); err != nil {
		fmt.Println("update failed:", err)

		return
	}
	if err := s.RebuildTechnosphereFromTable(); err != nil {
		fmt.Println("rebuild failed:", err)

		return
	}

	fmt.Println("exchanges:", s.TechTable().Len())
	fmt.Println("cell (0,0):", s.Technosphere().At(0, 0))

	// Output:
	// exchanges: 1
	// cell (0,0): 5
}
