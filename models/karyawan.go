package models

type Karyawan struct {
	Id         int64  `gorm:"primaryKey" json:"id"`
	Nip        string `gorm:"type varchar(200)" json:"nip"`
	Name       string `gorm:"type varchar(255)" json:"name"`
	GroupId    int64  `gorm:"type int" json:"group_id"`
	InstansiId int64  `gorm:"type int" json:"instansi_id"`
	Golongan   string `gorm:"type varchar(100)" json:"golongan"`
	Jabatan    string `gorm:"type varchar(255)" json:"jabatan"`
}

func (Karyawan) TableName() string {
	return "presensi_karyawan"
}
