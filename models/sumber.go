package models

import (
	"fmt"

	"gorm.io/gorm"
)

// SumberData adalah snapshot lengkap kelima tabel sumber untuk satu instansi
// dan satu rentang tanggal. Seluruh tabel dimuat penuh sebelum transformasi.
type SumberData struct {
	Pegawai   []Karyawan
	Rencana   []RencanaShift
	Shift     []Shift
	Kehadiran []Kehadiran
	Absen     []Absen
}

// FetchSumberData mengambil kelima tabel sumber dari koneksi remote yang
// diberikan. Tanggal dalam format YYYY-MM-DD, rentang inklusif.
func FetchSumberData(db *gorm.DB, instansiId int64, tanggalAwal, tanggalAkhir string) (*SumberData, error) {
	var data SumberData

	if err := db.Where("instansi_id = ?", instansiId).Find(&data.Pegawai).Error; err != nil {
		return nil, fmt.Errorf("gagal mengambil presensi_karyawan: %w", err)
	}

	if err := db.Where("instansi_id = ? AND date(tanggal_masuk) BETWEEN ? AND ?",
		instansiId, tanggalAwal, tanggalAkhir).Find(&data.Rencana).Error; err != nil {
		return nil, fmt.Errorf("gagal mengambil presensi_rencana_shift: %w", err)
	}

	if err := db.Find(&data.Shift).Error; err != nil {
		return nil, fmt.Errorf("gagal mengambil presensi_shift: %w", err)
	}

	if err := db.Where("instansi_id = ? AND date(tanggal_masuk) BETWEEN ? AND ?",
		instansiId, tanggalAwal, tanggalAkhir).Find(&data.Kehadiran).Error; err != nil {
		return nil, fmt.Errorf("gagal mengambil presensi_kehadiran: %w", err)
	}

	// presensi_absen tidak punya kolom instansi_id; saring lewat join karyawan.
	if err := db.Select("presensi_absen.*").
		Joins("LEFT JOIN presensi_karyawan ON presensi_absen.karyawan_id = presensi_karyawan.id").
		Where("presensi_karyawan.instansi_id = ?", instansiId).
		Find(&data.Absen).Error; err != nil {
		return nil, fmt.Errorf("gagal mengambil presensi_absen: %w", err)
	}

	return &data, nil
}
