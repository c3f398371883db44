package filter

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func setRow(xlsx *excelize.File, sheet string, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(1, row)),
			&value,
		),
	)
}

// WriteXlsx saves the run summary as a one-sheet workbook.
func (s *Stats) WriteXlsx(path string) {
	var (
		xlsx      = excelize.NewFile()
		sheetName = "QC"
	)
	simpleUtil.HandleError(xlsx.NewSheet(sheetName))
	simpleUtil.CheckErr(xlsx.DeleteSheet("Sheet1"))

	var pctReads = "NA"
	var pctBases = "NA"
	if s.TotalReads > 0 {
		pctReads = fmt.Sprintf("%.2f%%", math.DivisionInt(s.RetainedReads(), s.TotalReads)*100)
	}
	if s.TotalBases > 0 {
		pctBases = fmt.Sprintf("%.2f%%", math.DivisionInt(s.RetainedBases(), s.TotalBases)*100)
	}

	var rows = [][]interface{}{
		{"Metric", "Reads", "Bases"},
		{"Total", s.TotalReads, s.TotalBases},
		{"MinLen dropped", s.MinLenDropReads, s.MinLenDropBases},
		{"s35 dropped", s.S35DropReads, s.S35DropBases},
		{"Ns dropped", s.NsDropReads, s.NsDropBases},
		{"polyN dropped", s.PolyNDropReads, s.PolyNDropBases},
		{"Adapter dropped", s.AdapterDropReads, s.AdapterDropBases},
		{"Retained", s.RetainedReads(), s.RetainedBases()},
		{"Retained%", pctReads, pctBases},
	}
	for i, row := range rows {
		setRow(xlsx, sheetName, i+1, row)
	}

	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
