package models

// Shift menyimpan jam-jam acuan satu pola kerja sebagai kolom time.
// masuk_post_time adalah batas jadwal masuk, pulang_pre_time batas jadwal pulang.
type Shift struct {
	Id             int64  `gorm:"primaryKey" json:"id"`
	Nama           string `gorm:"type varchar(200)" json:"nama"`
	MasukPreTime   string `gorm:"type time" json:"masuk_pre_time"`
	MasukPostTime  string `gorm:"type time" json:"masuk_post_time"`
	MasukMaxTime   string `gorm:"type time" json:"masuk_max_time"`
	PulangPreTime  string `gorm:"type time" json:"pulang_pre_time"`
	PulangPostTime string `gorm:"type time" json:"pulang_post_time"`
}

func (Shift) TableName() string {
	return "presensi_shift"
}
