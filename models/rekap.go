package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RekapBulanan adalah satu baris rekap kehadiran per pegawai per bulan.
// Perhitungan ulang menimpa baris lama lewat kunci (karyawan_id, tahun, bulan).
type RekapBulanan struct {
	Id              int64 `gorm:"primaryKey" json:"-"`
	KaryawanId      int64 `gorm:"type bigint;uniqueIndex:idx_rekap_periode" json:"karyawan_id"`
	Tahun           int   `gorm:"type int;uniqueIndex:idx_rekap_periode" json:"tahun"`
	Bulan           int   `gorm:"type int;uniqueIndex:idx_rekap_periode" json:"bulan"`
	InstansiId      int64 `gorm:"type int" json:"instansi_id"`
	JumlahHari      int   `gorm:"type int" json:"jumlah_hari"`
	Hadir           int   `gorm:"type int" json:"hadir"`
	TidakHadir      int   `gorm:"type int" json:"tidak_hadir"`
	Twm             int   `gorm:"type int" json:"twm"`
	T1              int   `gorm:"type int" json:"t1"`
	T2              int   `gorm:"type int" json:"t2"`
	T3              int   `gorm:"type int" json:"t3"`
	T4              int   `gorm:"type int" json:"t4"`
	Twp             int   `gorm:"type int" json:"twp"`
	P1              int   `gorm:"type int" json:"p1"`
	P2              int   `gorm:"type int" json:"p2"`
	P3              int   `gorm:"type int" json:"p3"`
	P4              int   `gorm:"type int" json:"p4"`
	IzinSakit       int   `gorm:"type int" json:"izin_sakit"`
	TugasBk         int   `gorm:"type int" json:"tugas_bk"`
	TanpaKeterangan int   `gorm:"type int" json:"tanpa_keterangan"`
}

func (RekapBulanan) TableName() string {
	return "rekap_bulanan"
}

// SimpanRekap melakukan upsert seluruh baris rekap sekali jalan; baris lama
// untuk periode yang sama ditimpa, bukan diakumulasi.
func SimpanRekap(db *gorm.DB, rows []RekapBulanan) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "karyawan_id"}, {Name: "tahun"}, {Name: "bulan"}},
		UpdateAll: true,
	}).Create(&rows).Error
}
