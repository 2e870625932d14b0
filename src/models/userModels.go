package models

type UserModel struct {
	Id       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string  `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string  `json:"-" gorm:"type:varchar(100);not null"`
	Email    *string `json:"email" gorm:"type:varchar(255)"`
	FullName *string `json:"fullName" gorm:"column:full_name;type:varchar(255)"`
	Role     string  `json:"role" gorm:"type:varchar(64);not null"`
}

func (UserModel) TableName() string {
	return "users"
}
