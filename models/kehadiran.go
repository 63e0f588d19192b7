package models

// Kehadiran adalah satu event presensi masuk/pulang yang dikirim pegawai.
// tanggal_masuk adalah waktu presensi, tanggal_kirim waktu pengiriman.
type Kehadiran struct {
	Id             int64   `gorm:"primaryKey" json:"id"`
	KaryawanId     int64   `gorm:"type bigint" json:"karyawan_id"`
	InstansiId     int64   `gorm:"type int" json:"instansi_id"`
	Jenis          string  `gorm:"type varchar(5)" json:"jenis"`
	TanggalMasuk   string  `gorm:"type datetime" json:"tanggal_masuk"`
	TanggalKirim   string  `gorm:"type datetime" json:"tanggal_kirim"`
	ApproverStatus *string `gorm:"type varchar(50)" json:"approver_status"`
	Catatan        *string `gorm:"type text" json:"catatan"`
}

func (Kehadiran) TableName() string {
	return "presensi_kehadiran"
}
