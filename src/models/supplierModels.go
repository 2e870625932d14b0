package models

type SupplierModel struct {
	ID          int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"type:varchar(255);not null" binding:"required"`
	ContactName *string  `json:"contactName" gorm:"column:contact_name;type:varchar(255)"`
	Email       *string  `json:"email" gorm:"type:varchar(255)"`
	Phone       *string  `json:"phone" gorm:"type:varchar(50)"`
	Address     *string  `json:"address" gorm:"type:text"`
	OnTimeRate  *float64 `json:"onTimeRate" gorm:"column:on_time_rate"`
}

func (SupplierModel) TableName() string {
	return "suppliers"
}
