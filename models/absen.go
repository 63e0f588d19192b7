package models

// Absen adalah catatan izin/cuti di database sumber; rentang tanggal inklusif.
type Absen struct {
	Id             int64  `gorm:"primaryKey" json:"id"`
	KaryawanId     int64  `gorm:"type bigint" json:"karyawan_id"`
	TanggalMulai   string `gorm:"type date" json:"tanggal_mulai"`
	TanggalSelesai string `gorm:"type date" json:"tanggal_selesai"`
	Type           string `gorm:"column:type" json:"type"`
	Keterangan     string `gorm:"type text" json:"keterangan"`
}

func (Absen) TableName() string {
	return "presensi_absen"
}
