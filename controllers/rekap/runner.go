package rekapcontrollers

import (
	"fmt"
	"time"

	"SIREKAP/models"
	"SIREKAP/presensi"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RentangBulan menghasilkan tanggal awal dan akhir (inklusif) suatu bulan
// dalam format YYYY-MM-DD.
func RentangBulan(tahun, bulan int) (string, string) {
	awal := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
	akhir := awal.AddDate(0, 1, -1)
	return awal.Format("2006-01-02"), akhir.Format("2006-01-02")
}

// PeriodeValid menolak bulan di luar 1..12 dan periode yang belum berjalan.
// Bulan yang sedang berjalan boleh dihitung.
func PeriodeValid(tahun, bulan int, sekarang time.Time) error {
	if bulan < 1 || bulan > 12 {
		return fmt.Errorf("bulan %d tidak dikenal", bulan)
	}
	if tahun > sekarang.Year() || (tahun == sekarang.Year() && bulan > int(sekarang.Month())) {
		return fmt.Errorf("periode %04d-%02d belum berjalan", tahun, bulan)
	}
	return nil
}

// RunRekap menghitung rekap satu bulan untuk satu instansi: ambil snapshot
// sumber, normalkan, jalankan resolver dan agregator, lalu simpan hasilnya
// ke rekap_bulanan lokal (timpa periode yang sama).
func RunRekap(lokal, remote *gorm.DB, instansiId int64, bulan, tahun int) ([]models.RekapBulanan, error) {
	tanggalAwal, tanggalAkhir := RentangBulan(tahun, bulan)

	sumber, err := models.FetchSumberData(remote, instansiId, tanggalAwal, tanggalAkhir)
	if err != nil {
		return nil, err
	}

	pegawai, jadwal, kehadiran, absen := sumber.KeMasukanLaporan()
	laporan := presensi.GenerateLaporan(pegawai, jadwal, kehadiran, absen)
	rekap := presensi.GenerateRekapBulanan(laporan, bulan, tahun)

	rows := make([]models.RekapBulanan, 0, len(rekap))
	for _, r := range rekap {
		rows = append(rows, models.RekapBulanan{
			KaryawanId:      r.KaryawanId,
			InstansiId:      r.InstansiId,
			Tahun:           r.Tahun,
			Bulan:           r.Bulan,
			JumlahHari:      r.JumlahHari,
			Hadir:           r.Hadir,
			TidakHadir:      r.TidakHadir,
			Twm:             r.Twm,
			T1:              r.T1,
			T2:              r.T2,
			T3:              r.T3,
			T4:              r.T4,
			Twp:             r.Twp,
			P1:              r.P1,
			P2:              r.P2,
			P3:              r.P3,
			P4:              r.P4,
			IzinSakit:       r.IzinSakit,
			TugasBk:         r.TugasBk,
			TanpaKeterangan: r.TanpaKeterangan,
		})
	}

	if err := models.SimpanRekap(lokal, rows); err != nil {
		return nil, fmt.Errorf("gagal menyimpan rekap_bulanan: %w", err)
	}

	log.Info().
		Int64("instansi", instansiId).
		Int("tahun", tahun).
		Int("bulan", bulan).
		Int("jumlah_pegawai", len(rows)).
		Msg("Rekap bulanan selesai dihitung")
	return rows, nil
}
