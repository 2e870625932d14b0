package models

type WarehouseModel struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"type:varchar(255);not null" binding:"required"`
	Location *string `json:"location" gorm:"type:varchar(255)"`
	Capacity *int    `json:"capacity"`
}

func (WarehouseModel) TableName() string {
	return "warehouses"
}
