// Package excel reads soil-test report sheets (xlsx or csv) into soil
// records for validation.
package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"soilsense/domain/soil"
	"soilsense/internal"
	"soilsense/internal/errors"
)

// ReportReader reads lab report files. The first row must be a header; the
// reader matches columns by name, so sheets may carry extra columns and any
// column order.
type ReportReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewReportReader creates a reader for an xlsx or csv lab report.
func NewReportReader(filePath string) *ReportReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &ReportReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.NewDefaultLogger(),
	}
}

// ReadRecords parses the report into one soil record per data row.
func (r *ReportReader) ReadRecords() ([]soil.SoilRecord, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.Newf(errors.CodeIngestionError, "report file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New(errors.CodeIngestionError, "report has no data rows")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[normalizeColumn(name)] = i
	}

	records := make([]soil.SoilRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, buildRecord(header, row))
	}

	r.logger.Info("[ReportReader] read %d record(s) from %s", len(records), r.filePath)
	return records, nil
}

func (r *ReportReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open report workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.CodeIngestionError, "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to read report rows")
	}
	return rows, nil
}

func (r *ReportReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open report csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse report csv")
	}
	return rows, nil
}

// columnSpec maps a report column to a nutrient or micronutrient slot.
type columnSpec struct {
	column string
	name   string
	unit   string
	set    func(rec *soil.SoilRecord, p *soil.SoilParameter)
}

var columnSpecs = []columnSpec{
	{"ph", soil.ParamPH, "", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.PH = p }},
	{"nitrogen", soil.ParamNitrogen, "kg/ha", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.Nitrogen = p }},
	{"phosphorus", soil.ParamPhosphorus, "kg/ha", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.Phosphorus = p }},
	{"potassium", soil.ParamPotassium, "kg/ha", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.Potassium = p }},
	{"organic_carbon", soil.ParamOrganicCarbon, "%", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.OrganicCarbon = p }},
	{"ec", soil.ParamElectricalConductivity, "dS/m", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Nutrients.ElectricalConductivity = p }},
	{"zinc", soil.ParamZinc, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Zinc = p }},
	{"iron", soil.ParamIron, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Iron = p }},
	{"manganese", soil.ParamManganese, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Manganese = p }},
	{"copper", soil.ParamCopper, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Copper = p }},
	{"boron", soil.ParamBoron, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Boron = p }},
	{"sulfur", soil.ParamSulfur, "ppm", func(r *soil.SoilRecord, p *soil.SoilParameter) { r.Micronutrients.Sulfur = p }},
}

// buildRecord maps one data row into a soil record. Unparseable or empty
// cells leave the parameter absent rather than failing the row.
func buildRecord(header map[string]int, row []string) soil.SoilRecord {
	rec := soil.SoilRecord{
		FieldID:        cell(header, row, "field_id"),
		Nutrients:      &soil.SoilNutrients{},
		Micronutrients: &soil.Micronutrients{},
	}

	for _, spec := range columnSpecs {
		raw := cell(header, row, spec.column)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		p := &soil.SoilParameter{
			Name:       spec.name,
			Value:      value,
			Unit:       spec.unit,
			Confidence: 1.0,
		}
		if status := cell(header, row, spec.column+"_status"); status != "" {
			p.Status = soil.ParameterStatus(strings.ToLower(status))
		}
		spec.set(&rec, p)
	}

	state := cell(header, row, "state")
	district := cell(header, row, "district")
	crop := cell(header, row, "crop")
	season := cell(header, row, "season")
	if state != "" || district != "" || crop != "" || season != "" {
		rec.Options = &soil.ValidationOptions{}
		*rec.Options = soil.DefaultOptions()
		if state != "" || district != "" {
			rec.Options.Location = &soil.Location{State: state, District: district}
		}
		rec.Options.CropType = crop
		rec.Options.Season = soil.Season(season)
	}

	return rec
}

func cell(header map[string]int, row []string, column string) string {
	idx, ok := header[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeColumn(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	switch n {
	case "electrical_conductivity":
		return "ec"
	case "oc":
		return "organic_carbon"
	}
	return n
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
