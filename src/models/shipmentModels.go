package models

// Shipment statuses used by the dashboard. Status is free text; these are not enforced.
const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusInTransit = "In Transit"
	ShipmentStatusDelivered = "Delivered"
	ShipmentStatusDelayed   = "Delayed"
)

// ShipmentModel never serializes its order. OrderID is written from
// dtos.ShipmentRequest; Order is declared only so the foreign key is migrated
// and is never preloaded.
type ShipmentModel struct {
	ID                    int         `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID               *int        `json:"-" gorm:"column:order_id;index"`
	Order                 *OrderModel `json:"-" gorm:"foreignKey:OrderID;references:ID"`
	OriginLocation        string      `json:"originLocation" gorm:"column:origin_location;type:varchar(255)"`
	DestinationLocation   string      `json:"destinationLocation" gorm:"column:destination_location;type:varchar(255)"`
	ShipmentDate          *Date       `json:"shipmentDate" gorm:"column:shipment_date"`
	EstimatedDeliveryDate *Date       `json:"estimatedDeliveryDate" gorm:"column:estimated_delivery_date"`
	Status                string      `json:"status" gorm:"type:varchar(64);index"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
