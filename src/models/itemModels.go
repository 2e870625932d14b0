package models

import "github.com/shopspring/decimal"

type ItemModel struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement"`
	SKU         string          `json:"sku" gorm:"column:sku;type:varchar(64);index"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null" binding:"required"`
	Description *string         `json:"description" gorm:"type:text"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"column:unit_price;type:decimal(12,2);not null"`
}

func (ItemModel) TableName() string {
	return "items"
}
