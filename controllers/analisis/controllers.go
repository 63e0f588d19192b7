package analisiscontrollers

import (
	"net/http"
	"strconv"
	"time"

	"SIREKAP/helper"
	"SIREKAP/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HasilAnalisis adalah satu pegawai yang akumulasi tanpa keterangannya
// melewati ambang, plus proyeksi bulan berikutnya bila datanya cukup.
type HasilAnalisis struct {
	KaryawanId         int64    `json:"karyawan_id"`
	Nip                string   `json:"nip"`
	NamaPegawai        string   `json:"nama_pegawai"`
	Tahun              int      `json:"tahun"`
	TanpaKeterangan    int      `json:"tanpa_keterangan"`
	PrediksiBulanDepan *float64 `json:"prediksi_bulan_depan,omitempty"`
}

// AnalisisKehadiranHandler merangkum tanpa_keterangan per pegawai untuk
// tahun berjalan sampai sebelum bulan yang diminta, dan hanya mengembalikan
// pegawai yang jumlahnya melewati minimum_tk.
func AnalisisKehadiranHandler(c *gin.Context) {
	sekarang := time.Now()

	tahun, err := strconv.Atoi(c.DefaultQuery("tahun", strconv.Itoa(sekarang.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tahun wajib angka"})
		return
	}
	bulan, err := strconv.Atoi(c.DefaultQuery("bulan", strconv.Itoa(int(sekarang.Month()))))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bulan wajib angka"})
		return
	}
	minimum, err := strconv.Atoi(c.DefaultQuery("minimum_tk", "3"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minimum_tk wajib angka"})
		return
	}

	var hasil []HasilAnalisis
	err = models.DB.Table("rekap_bulanan").
		Select("rekap_bulanan.karyawan_id, presensi_karyawan.nip, presensi_karyawan.name AS nama_pegawai, rekap_bulanan.tahun, SUM(rekap_bulanan.tanpa_keterangan) AS tanpa_keterangan").
		Joins("LEFT JOIN presensi_karyawan ON rekap_bulanan.karyawan_id = presensi_karyawan.id").
		Where("rekap_bulanan.tahun = ? AND rekap_bulanan.bulan < ?", tahun, bulan).
		Group("rekap_bulanan.karyawan_id, presensi_karyawan.nip, presensi_karyawan.name, rekap_bulanan.tahun").
		Having("SUM(rekap_bulanan.tanpa_keterangan) > ?", minimum).
		Scan(&hasil).Error
	if err != nil {
		log.Error().Err(err).Msg("Analisis kehadiran gagal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menganalisis rekap_bulanan"})
		return
	}

	for i := range hasil {
		riwayat, err := helper.AmbilRiwayatRekap(models.DB, hasil[i].KaryawanId, tahun)
		if err != nil {
			continue
		}
		prediksi, err := helper.PrediksiTanpaKeterangan(riwayat, bulan)
		if err != nil {
			// Riwayat terlalu pendek untuk dilatih: lewati proyeksinya saja.
			continue
		}
		hasil[i].PrediksiBulanDepan = &prediksi
	}

	c.JSON(http.StatusOK, gin.H{
		"tahun":      tahun,
		"bulan":      bulan,
		"minimum_tk": minimum,
		"count":      len(hasil),
		"data":       hasil,
	})
}
