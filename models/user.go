package models

type User struct {
	Id        int64  `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type varchar(255)" json:"username"`
	Email     string `gorm:"type varchar(255)" json:"email"`
	Password  string `gorm:"type varchar(255)" json:"password"`
	RoleId    int64  `gorm:"type int" json:"role_id"`
	IsDeleted int8   `gorm:"type tinyint" json:"is_deleted"`
	CreatedAt string `gorm:"type timestamp" json:"created_at"`
	UpdatedAt string `gorm:"type timestamp" json:"updated_at"`
}
