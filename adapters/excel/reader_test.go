package excel

import (
	"os"
	"path/filepath"
	"testing"

	"soilsense/domain/soil"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestReadRecords_CSV(t *testing.T) {
	csv := "field_id,ph,nitrogen,phosphorus,potassium,organic_carbon,ec,zinc,zinc_status,state,crop,season\n" +
		"f1,6.8,245,18,156,0.65,0.45,1.5,adequate,Rajasthan,rice,kharif\n" +
		"f2,5.2,,12,,,,0.3,deficient,,,\n"

	reader := NewReportReader(writeTempCSV(t, csv))
	records, err := reader.ReadRecords()
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	r1 := records[0]
	if r1.FieldID != "f1" {
		t.Errorf("field id = %s, want f1", r1.FieldID)
	}
	if r1.Nutrients.PH == nil || r1.Nutrients.PH.Value != 6.8 {
		t.Errorf("pH = %+v, want 6.8", r1.Nutrients.PH)
	}
	if r1.Nutrients.Nitrogen.Unit != "kg/ha" {
		t.Errorf("nitrogen unit = %s, want kg/ha", r1.Nutrients.Nitrogen.Unit)
	}
	if r1.Micronutrients.Zinc == nil || r1.Micronutrients.Zinc.Status != soil.StatusAdequate {
		t.Errorf("zinc = %+v, want adequate status", r1.Micronutrients.Zinc)
	}
	if r1.Options == nil || r1.Options.Location == nil || r1.Options.Location.State != "Rajasthan" {
		t.Errorf("options = %+v, want Rajasthan location", r1.Options)
	}
	if r1.Options.CropType != "rice" || r1.Options.Season != soil.SeasonKharif {
		t.Errorf("options = %+v, want rice/kharif", r1.Options)
	}

	r2 := records[1]
	if r2.Nutrients.Nitrogen != nil {
		t.Errorf("empty nitrogen cell should leave the parameter absent, got %+v", r2.Nutrients.Nitrogen)
	}
	if r2.Micronutrients.Zinc == nil || r2.Micronutrients.Zinc.Status != soil.StatusDeficient {
		t.Errorf("zinc = %+v, want deficient status", r2.Micronutrients.Zinc)
	}
	if r2.Options != nil {
		t.Errorf("record without context columns should carry no options, got %+v", r2.Options)
	}
}

func TestReadRecords_HeaderAliases(t *testing.T) {
	csv := "Field ID,pH,Electrical Conductivity,OC\n" +
		"f1,6.5,0.5,0.8\n"

	reader := NewReportReader(writeTempCSV(t, csv))
	records, err := reader.ReadRecords()
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	r := records[0]
	if r.Nutrients.ElectricalConductivity == nil || r.Nutrients.ElectricalConductivity.Value != 0.5 {
		t.Errorf("EC = %+v, want 0.5 via alias", r.Nutrients.ElectricalConductivity)
	}
	if r.Nutrients.OrganicCarbon == nil || r.Nutrients.OrganicCarbon.Value != 0.8 {
		t.Errorf("OC = %+v, want 0.8 via alias", r.Nutrients.OrganicCarbon)
	}
}

func TestReadRecords_MissingFile(t *testing.T) {
	reader := NewReportReader(filepath.Join(t.TempDir(), "absent.xlsx"))
	if _, err := reader.ReadRecords(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	reader := NewReportReader(writeTempCSV(t, "field_id,ph\n"))
	if _, err := reader.ReadRecords(); err == nil {
		t.Fatal("expected an error for a report with no data rows")
	}
}
