// Package spreadsheet builds the bulk-import workbook handed to garages that
// want to onboard their inventory offline.
package spreadsheet

import (
	"fmt"

	"github.com/garagehub/vehicle-service/internal/core/domain"

	"github.com/xuri/excelize/v2"
)

const (
	vehicleSheet      = "Vehicles"
	instructionsSheet = "Instructions"

	// Droplists cover the first thousand data rows.
	lastValidatedRow = 1000
)

// fixedHeaders precede one yes/no column per optional feature.
var fixedHeaders = []string{
	"ID", "Category", "Brand", "Model", "License Plate", "Year",
	"Model Year", "Mileage", "Price", "Color", "Status", "Description",
	"Body Type", "Transmission", "Fuel", "Engine", "Doors", "Steering",
	"Armored", "Tax Paid", "Auction", "Licensing Up To Date",
}

// BuildImportTemplate assembles the workbook in memory. Callers own closing
// the returned file.
func BuildImportTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(vehicleSheet)
	if err != nil {
		return nil, fmt.Errorf("create vehicle sheet: %w", err)
	}
	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return nil, fmt.Errorf("create instructions sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := append(append([]string{}, fixedHeaders...), domain.OptionalFeatureList()...)

	if err := writeHeaderRow(f, headers); err != nil {
		return nil, err
	}
	if err := addValidations(f, len(headers)); err != nil {
		return nil, err
	}
	if err := writeExampleRow(f, len(headers)); err != nil {
		return nil, err
	}
	if err := writeInstructions(f); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteImportTemplate builds the workbook and saves it to path.
func WriteImportTemplate(path string) error {
	f, err := BuildImportTemplate()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeHeaderRow(f *excelize.File, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Style: 1},
			{Type: "right", Style: 1},
			{Type: "top", Style: 1},
			{Type: "bottom", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, header := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		if err := f.SetCellValue(vehicleSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(vehicleSheet, cell, cell, style); err != nil {
			return err
		}
		if err := f.SetColWidth(vehicleSheet, col, col, headerWidth(header)); err != nil {
			return err
		}
	}
	return nil
}

func headerWidth(header string) float64 {
	switch header {
	case "Description":
		return 40
	case "Model", "License Plate":
		return 20
	case "Brand", "Color", "Transmission", "Fuel":
		return 15
	default:
		return 12
	}
}

// addValidations attaches a droplist to every column backed by a closed
// vocabulary, plus Yes/No for the feature flags.
func addValidations(f *excelize.File, columnCount int) error {
	listColumns := map[string][]string{
		"B": domain.Categories(),
		"J": domain.Colors(),
		"K": domain.Statuses(),
		"M": domain.BodyTypes(),
		"N": domain.Transmissions(),
		"O": domain.Fuels(),
		"P": domain.EngineSizes(),
		"R": domain.Steerings(),
	}
	for col, values := range listColumns {
		if err := addDroplist(f, col, values); err != nil {
			return err
		}
	}

	// Columns S onward are Yes/No flags.
	for i := 19; i <= columnCount; i++ {
		col, err := excelize.ColumnNumberToName(i)
		if err != nil {
			return err
		}
		if err := addDroplist(f, col, []string{"Yes", "No"}); err != nil {
			return err
		}
	}
	return nil
}

func addDroplist(f *excelize.File, col string, values []string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", col, col, lastValidatedRow)
	if err := dv.SetDropList(values); err != nil {
		return fmt.Errorf("droplist for column %s: %w", col, err)
	}
	return f.AddDataValidation(vehicleSheet, dv)
}

func writeExampleRow(f *excelize.File, columnCount int) error {
	example := []interface{}{
		"001", "Car", "Citroen", "C3 GLX 1.4", "ABC-1234", "2020",
		"2021", "25.000", "R$ 45.000,00", "White", "Available",
		"Excellent condition, single owner, full service history",
		"Hatchback", "Manual", "Flex", "1.4", "4", "Hydraulic",
		"No", "Yes", "No", "Yes",
	}
	featureExample := map[string]bool{
		"Air Conditioning": true, "Power Steering": true, "Power Windows": true,
		"Power Locks": true, "Alarm": true, "Sound System": true,
		"Airbags": true, "ABS": true, "Fog Lights": true, "Aux Input": true,
		"Power Mirrors": true,
	}
	for _, feature := range domain.OptionalFeatureList() {
		if featureExample[feature] {
			example = append(example, "Yes")
		} else {
			example = append(example, "No")
		}
	}
	if len(example) != columnCount {
		return fmt.Errorf("example row has %d cells, want %d", len(example), columnCount)
	}
	return f.SetSheetRow(vehicleSheet, "A2", &example)
}

func writeInstructions(f *excelize.File) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}

	lines := []string{
		"VEHICLE IMPORT TEMPLATE - FILLING INSTRUCTIONS",
		"",
		"REQUIRED FIELDS:",
		"- ID: unique vehicle identifier (e.g. 001, 002, 003...)",
		"- Category: pick 'Car' or 'Motorcycle'",
		"- Brand: vehicle make",
		"- Model: full model description (e.g. C3 GLX 1.4, Civic EXL 2.0)",
		"- License Plate: plate in the ABC-1234 format",
		"- Year: manufacturing year",
		"- Model Year: model year",
		"- Mileage: thousands separated by a dot (e.g. 10.000, 25.500)",
		"- Price: value with R$ prefix (e.g. R$ 25.000,00)",
		"- Color: pick a color from the list",
		"- Status: pick the current vehicle status",
		"",
		"TECHNICAL SPECS:",
		"- Body Type: pick the body style",
		"- Transmission: gearbox type",
		"- Fuel: fuel type",
		"- Doors: number of doors (e.g. 2, 4, 5)",
		"- Steering: steering type",
		"",
		"SPECIAL ATTRIBUTES:",
		"- Mark 'Yes' or 'No' for each attribute",
		"- Armored: whether the vehicle is armored",
		"- Tax Paid: whether the road tax is current",
		"- Auction: whether the vehicle came from an auction",
		"- Licensing Up To Date: whether licensing is regular",
		"",
		"OPTIONAL FEATURES:",
		"- Mark 'Yes' or 'No' for each available feature",
		"",
		"NOTES:",
		"- Fill in every required field",
		"- Use the droplists where available",
		"- Keep the Mileage and Price formatting",
		"- The description may carry any extra information",
		"",
		"MEDIA FOLDER LAYOUT:",
		"- Create a 'Media' folder inside the ZIP",
		"- Inside 'Media', one folder per vehicle ID",
		"- Inside the ID folder: Photos/, Videos/, Inspection/",
		"- Example: Media/001/Photos/, Media/001/Videos/, Media/001/Inspection/",
	}

	for i, line := range lines {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(instructionsSheet, cell, line); err != nil {
			return err
		}
		switch {
		case i == 0:
			err = f.SetCellStyle(instructionsSheet, cell, cell, titleStyle)
		case line != "" && line[0] != '-':
			err = f.SetCellStyle(instructionsSheet, cell, cell, sectionStyle)
		}
		if err != nil {
			return err
		}
	}
	return f.SetColWidth(instructionsSheet, "A", "A", 80)
}
