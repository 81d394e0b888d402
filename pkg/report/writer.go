package report

import (
	"fmt"
	"log"
	"log/slog"
	"methylReport/pkg/qpcr"
	"methylReport/pkg/runinfo"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
	"gopkg.in/guregu/null.v3"
)

// Report bundles everything one output workbook needs.
type Report struct {
	Sample *qpcr.SampleRecord
	HCT116 *qpcr.SampleRecord

	// User-picked controls per target block, template order. Both empty
	// skips the control rows; the plate's fixed rows are still written.
	Controls1 []*qpcr.SampleRecord
	Controls2 []*qpcr.SampleRecord

	Run    runinfo.RunInfo
	Assay  runinfo.Assay
	Policy ReplicatePolicy
}

// Generate fills a copy of the assay template with the report's records
// and saves it to output. The Final and summary sheets are a convenience
// layer: a template without them still yields a report, with a warning.
func Generate(template, output string, rep *Report) error {
	xlsx, err := excelize.OpenFile(template)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer simpleUtil.DeferClose(xlsx)

	runName := rep.Run.RunName(rep.Assay.Name)
	if err := populateStepOne(xlsx, rep, runName); err != nil {
		return err
	}
	if err := populateFinal(xlsx, rep.Sample.Sample, runName, rep.Run); err != nil {
		slog.Warn("skip Final sheet", "template", template, "err", err)
	}
	if err := populateSummary(xlsx, rep.Sample.Sample, rep.Run.Plate); err != nil {
		slog.Warn("skip summary sheet", "template", template, "err", err)
	}

	log.Printf("SaveAs(%s)", output)
	return xlsx.SaveAs(output)
}

// populateStepOne writes the run name and the three row groups of both
// target blocks: test sample, HCT116, then the user controls.
func populateStepOne(xlsx *excelize.File, rep *Report, runName string) error {
	xlsx.SetCellStr(SheetStepOne, "A1", runName)

	sample, err := fitRecord(rep.Sample, rep.Policy)
	if err != nil {
		return err
	}
	populateSampleBlock(xlsx, rep.Sample.Sample, sampleRowTarget1, sample[0], sample[1])
	populateSampleBlock(xlsx, rep.Sample.Sample, sampleRowTarget2, sample[2], sample[3])

	hct, err := fitRecord(rep.HCT116, rep.Policy)
	if err != nil {
		return err
	}
	populateControlBlock(xlsx, rep.HCT116.Sample, hctRowTarget1, hct[0], hct[1])
	populateControlBlock(xlsx, rep.HCT116.Sample, hctRowTarget2, hct[2], hct[3])

	if len(rep.Controls1) == 0 || len(rep.Controls2) == 0 {
		return nil
	}
	for i, ctrl := range rep.Controls1 {
		if i >= ControlsPerTarget {
			break
		}
		seqs, err := fitRecord(ctrl, rep.Policy)
		if err != nil {
			return err
		}
		populateControlBlock(xlsx, ctrl.Sample, ctrlRowTarget1+i*Replicates, seqs[0], seqs[1])
	}
	for i, ctrl := range rep.Controls2 {
		if i >= ControlsPerTarget {
			break
		}
		seqs, err := fitRecord(ctrl, rep.Policy)
		if err != nil {
			return err
		}
		populateControlBlock(xlsx, ctrl.Sample, ctrlRowTarget2+i*Replicates, seqs[2], seqs[3])
	}
	return nil
}

// fitRecord shapes a record's four sequences to the template blocks:
// target 1 M and UM, then target 2 M and UM.
func fitRecord(rec *qpcr.SampleRecord, policy ReplicatePolicy) ([4][]null.Float, error) {
	seqs := [4][]null.Float{rec.Target1M, rec.Target1UM, rec.Target2M, rec.Target2UM}
	for i, cqs := range seqs {
		fitted, err := FitReplicates(cqs, Replicates, policy)
		if err != nil {
			return seqs, fmt.Errorf("%s: %w", rec.Sample, err)
		}
		seqs[i] = fitted
	}
	return seqs, nil
}

// populateSampleBlock writes the test sample's rows. The first row
// carries the literal name; the later rows reference it by formula, the
// shape the template's transfer macro expects. Columns B and I keep the
// template's probe labels.
func populateSampleBlock(xlsx *excelize.File, name string, start int, m, um []null.Float) {
	for i := 0; i < Replicates; i++ {
		row := start + i
		if i == 0 {
			xlsx.SetCellStr(SheetStepOne, CoordinatesToCellName(colSample, row), name)
		} else {
			xlsx.SetCellFormula(SheetStepOne, CoordinatesToCellName(colSample, row),
				fmt.Sprintf("$A$%d", start))
		}
		if i == Replicates-1 {
			xlsx.SetCellFormula(SheetStepOne, CoordinatesToCellName(colSampleUM, row),
				fmt.Sprintf("$A$%d", start))
		} else {
			xlsx.SetCellFormula(SheetStepOne, CoordinatesToCellName(colSampleUM, row),
				fmt.Sprintf("A%d", row))
		}
		setCq(xlsx, colCqM, row, m, i)
		setCq(xlsx, colCqUM, row, um, i)
	}
}

// populateControlBlock writes one control's rows, literal names in both
// name columns.
func populateControlBlock(xlsx *excelize.File, name string, start int, m, um []null.Float) {
	for i := 0; i < Replicates; i++ {
		row := start + i
		xlsx.SetCellStr(SheetStepOne, CoordinatesToCellName(colSample, row), name)
		xlsx.SetCellStr(SheetStepOne, CoordinatesToCellName(colSampleUM, row), name)
		setCq(xlsx, colCqM, row, m, i)
		setCq(xlsx, colCqUM, row, um, i)
	}
}

// setCq writes the i'th replicate when it exists. Absent measurements
// leave the template cell untouched, they must never show up as 0.
func setCq(xlsx *excelize.File, col, row int, cqs []null.Float, i int) {
	if i < len(cqs) && cqs[i].Valid {
		xlsx.SetCellValue(SheetStepOne, CoordinatesToCellName(col, row), cqs[i].Float64)
	}
}

// populateFinal rewrites the Final sheet's placeholder texts for the
// current sample and run.
func populateFinal(xlsx *excelize.File, sample, runName string, ri runinfo.RunInfo) error {
	rows, err := xlsx.GetRows(SheetFinal)
	if err != nil {
		return err
	}
	r := newPlaceholderReplacer(sample, runName, ri.DateFull(), ri.Initials)
	for i, row := range rows {
		for j, text := range row {
			if text == "" {
				continue
			}
			if replaced := r.Replace(text); replaced != text {
				xlsx.SetCellStr(SheetFinal, CoordinatesToCellName(j+1, i+1), replaced)
			}
		}
	}
	return nil
}

// summaryBlocks maps column N of the RAW DATA sheet onto Sheet1: the
// control Cq rows of both targets, then the HCT116 rows.
var summaryBlocks = []struct {
	srcRow, dstCol, dstRow, n int
}{
	{5, 3, 28, 9},  // target 1 controls: N5-N13 -> C28-C36
	{26, 5, 28, 9}, // target 2 controls: N26-N34 -> E28-E36
	{14, 3, 10, 3}, // target 1 HCT116: N14-N16 -> C10-C12
	{35, 5, 10, 3}, // target 2 HCT116: N35-N37 -> E10-E12
}

const colRawCq = 14 // N

// populateSummary copies the RAW DATA blocks into Sheet1 and fills in
// the sample number and plate. The template ships the RAW DATA cells
// empty until its macros run, so an untouched template copies nothing.
func populateSummary(xlsx *excelize.File, sample, plate string) error {
	for _, b := range summaryBlocks {
		for i := 0; i < b.n; i++ {
			val, err := xlsx.GetCellValue(SheetRawData, CoordinatesToCellName(colRawCq, b.srcRow+i))
			if err != nil {
				return err
			}
			if val == "" {
				continue
			}
			dst := CoordinatesToCellName(b.dstCol, b.dstRow+i)
			if cq, err := strconv.ParseFloat(val, 64); err == nil {
				xlsx.SetCellValue(SheetSummary, dst, cq)
			} else {
				xlsx.SetCellStr(SheetSummary, dst, val)
			}
		}
	}

	if _, err := xlsx.GetCellValue(SheetSummary, "C6"); err != nil {
		return err
	}
	xlsx.SetCellStr(SheetSummary, "C6", sampleNumber(sample))
	bold := simpleUtil.HandleError(xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}))
	xlsx.SetCellStyle(SheetSummary, "C6", "C6", bold)

	for _, cellName := range []string{"G8", "G11"} {
		val, err := xlsx.GetCellValue(SheetSummary, cellName)
		if err != nil {
			return err
		}
		if strings.Contains(val, "XXXX") {
			xlsx.SetCellStr(SheetSummary, cellName, strings.ReplaceAll(val, "XXXX", plate))
		}
	}
	return nil
}

// sampleNumber keeps the first two hyphen-separated pieces of a sample
// name, e.g. BWR-6418-Q -> BWR-6418.
func sampleNumber(sample string) string {
	parts := strings.Split(sample, "-")
	if len(parts) < 2 {
		return sample
	}
	return parts[0] + "-" + parts[1]
}

// OutputName builds the per-sample report filename,
// <sample>_<plate>_<initials><ext>, with spaces and path separators
// made filesystem-safe.
func OutputName(sample string, ri runinfo.RunInfo, ext string) string {
	safe := strings.ReplaceAll(sample, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "-")
	return safe + "_" + ri.Plate + "_" + ri.Initials + ext
}
