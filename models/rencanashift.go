package models

// RencanaShift adalah satu hari kerja terencana: pegawai, tanggal, dan shift.
type RencanaShift struct {
	Id           int64  `gorm:"primaryKey" json:"id"`
	KaryawanId   int64  `gorm:"type bigint" json:"karyawan_id"`
	InstansiId   int64  `gorm:"type int" json:"instansi_id"`
	ShiftId      int64  `gorm:"type bigint" json:"shift_id"`
	TanggalMasuk string `gorm:"type datetime" json:"tanggal_masuk"`
}

func (RencanaShift) TableName() string {
	return "presensi_rencana_shift"
}
