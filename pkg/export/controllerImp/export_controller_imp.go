package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/areaunit"
	"github.com/ikople24/smart-saard/pkg/landuse"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
)

type ExportCtrl struct{ repo repository.ParcelRepository }

func New(repo repository.ParcelRepository) *ExportCtrl { return &ExportCtrl{repo: repo} }

// SurveyXLSX streams the whole survey as a workbook: one parcel per row,
// one column per land-use category, totals in wah for cross-checking.
func (h *ExportCtrl) SurveyXLSX(c echo.Context) error {
	parcels, err := h.repo.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	headers := []string{"รหัสแปลง", "เจ้าของ", "จังหวัด", "อำเภอ", "เนื้อที่โฉนด (ไร่-งาน-วา)"}
	for _, cat := range landuse.All {
		headers = append(headers, landuse.Label(cat))
	}
	headers = append(headers, "ใช้ไป (วา)", "คงเหลือ (วา)", "เกินโฉนด")
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, p := range parcels {
		alloc := entities.DecodeAllocation(p.SurveyJSON)
		sum := areaunit.Summarize(p.AreaText, alloc.Areas)

		vals := []any{p.ParcelCode, p.OwnerName, p.Province, p.District, p.AreaText}
		for _, cat := range landuse.All {
			vals = append(vals, alloc.Areas[cat])
		}
		over := ""
		if sum.OverLimit {
			over = fmt.Sprintf("เกิน %s", areaunit.ScalarToText(sum.UsedWah-sum.TotalWah))
		}
		vals = append(vals, sum.UsedWah, sum.RemainingWah, over)

		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="survey.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
