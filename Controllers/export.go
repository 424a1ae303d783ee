package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"ChestVision/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

const recordsSheet = "Records"

// ExportRecords writes the doctor's full record history to an Excel workbook.
// Each request gets its own temp file so concurrent exports never share one.
func ExportRecords(c *gin.Context) {
	doctorID := getDoctorID(c)

	analyses, err := Models.FetchAnalyses(doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch records"})
		return
	}

	file := buildRecordsWorkbook(analyses)

	tmp, err := os.CreateTemp("", "records-*.xlsx")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export records"})
		return
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := file.SaveAs(tmp.Name()); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to export records"})
		return
	}
	c.FileAttachment(tmp.Name(), "records.xlsx")
}

func buildRecordsWorkbook(analyses []Models.Analysis) *excelize.File {
	headers := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"C1": "Age",
		"D1": "Gender",
		"E1": "Disease",
		"F1": "Severity",
		"G1": "Confidence",
	}
	file := excelize.NewFile()
	file.NewSheet(recordsSheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(recordsSheet, k, v)
	}

	for i := 0; i < len(analyses); i++ {
		appendRowRecord(recordsSheet, file, i, analyses)
	}
	return file
}

func appendRowRecord(sheet string, file *excelize.File, index int, rows []Models.Analysis) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].CreatedAt.Format("2006-01-02 15:04"))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Patient.Name)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Patient.Age)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Patient.Gender)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Disease)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Severity)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].Confidence)
	return file
}
