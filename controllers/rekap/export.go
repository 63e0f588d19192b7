package rekapcontrollers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"SIREKAP/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var kolomRekap = []string{
	"karyawan_id", "instansi_id", "tahun", "bulan",
	"jumlah_hari", "hadir", "tidak_hadir",
	"twm", "t1", "t2", "t3", "t4",
	"twp", "p1", "p2", "p3", "p4",
	"izin_sakit", "tugas_bk", "tanpa_keterangan",
}

func barisRekap(r models.RekapBulanan) []string {
	angka := []int{
		int(r.KaryawanId), int(r.InstansiId), r.Tahun, r.Bulan,
		r.JumlahHari, r.Hadir, r.TidakHadir,
		r.Twm, r.T1, r.T2, r.T3, r.T4,
		r.Twp, r.P1, r.P2, r.P3, r.P4,
		r.IzinSakit, r.TugasBk, r.TanpaKeterangan,
	}
	baris := make([]string, len(angka))
	for i, v := range angka {
		baris[i] = strconv.Itoa(v)
	}
	return baris
}

func namaFile(c *gin.Context, ekstensi string) string {
	return fmt.Sprintf("rekap_%s_%s.%s", c.Query("instansi"), c.Query("tahun"), ekstensi)
}

// ExportExcelHandler mengunduh rekap tersimpan sebagai workbook Excel.
func ExportExcelHandler(c *gin.Context) {
	rows, ok := ambilRekapTersimpan(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &kolomRekap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyusun workbook"})
		return
	}
	for i, r := range rows {
		baris := barisRekap(r)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &baris); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyusun workbook"})
			return
		}
	}

	c.Header("Content-Disposition", "attachment; filename="+namaFile(c, "xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menulis workbook"})
	}
}

// ExportCsvHandler mengunduh rekap tersimpan sebagai CSV.
func ExportCsvHandler(c *gin.Context) {
	rows, ok := ambilRekapTersimpan(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+namaFile(c, "csv"))
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	if err := w.Write(kolomRekap); err != nil {
		return
	}
	for _, r := range rows {
		if err := w.Write(barisRekap(r)); err != nil {
			return
		}
	}
	w.Flush()
}
