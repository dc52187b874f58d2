package spreadsheet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/garagehub/vehicle-service/internal/core/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildImportTemplateSheets(t *testing.T) {
	f, err := BuildImportTemplate()
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{vehicleSheet, instructionsSheet}, f.GetSheetList())
}

func TestHeaderRowCoversAllFeatures(t *testing.T) {
	f, err := BuildImportTemplate()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(vehicleSheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	header := rows[0]
	wantColumns := len(fixedHeaders) + len(domain.OptionalFeatureList())
	require.Len(t, header, wantColumns)
	require.Equal(t, "ID", header[0])
	require.Equal(t, "Licensing Up To Date", header[len(fixedHeaders)-1])
	require.Equal(t, domain.OptionalFeatureList()[0], header[len(fixedHeaders)])
}

func TestExampleRowMatchesHeaderWidth(t *testing.T) {
	f, err := BuildImportTemplate()
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(vehicleSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	require.Len(t, rows[1], len(rows[0]))
	require.Equal(t, "001", rows[1][0])
	require.Equal(t, "Car", rows[1][1])
	require.Equal(t, "R$ 45.000,00", rows[1][8])
}

func TestDroplistsAlignWithDomainLists(t *testing.T) {
	f, err := BuildImportTemplate()
	require.NoError(t, err)
	defer f.Close()

	validations, err := f.GetDataValidations(vehicleSheet)
	require.NoError(t, err)

	bySqref := map[string]*excelize.DataValidation{}
	for _, dv := range validations {
		bySqref[dv.Sqref] = dv
	}

	require.Contains(t, bySqref, "B2:B1000")
	require.Contains(t, bySqref["B2:B1000"].Formula1, "Car")
	require.Contains(t, bySqref["B2:B1000"].Formula1, "Motorcycle")

	require.Contains(t, bySqref, "K2:K1000")
	require.Contains(t, bySqref["K2:K1000"].Formula1, "Available")

	// One Yes/No droplist per flag and feature column.
	yesNo := 0
	for _, dv := range validations {
		if strings.Contains(dv.Formula1, "Yes,No") {
			yesNo++
		}
	}
	require.Equal(t, 4+len(domain.OptionalFeatureList()), yesNo)
}

func TestWriteImportTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, WriteImportTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Contains(t, f.GetSheetList(), vehicleSheet)
}
