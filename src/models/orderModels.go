package models

// Order statuses used by the dashboard. Status is free text; these are not enforced.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

type OrderModel struct {
	ID       int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Status   string     `json:"status" gorm:"type:varchar(64);index"`
	ItemID   *int       `json:"itemId" gorm:"column:item_id;index"`
	Item     *ItemModel `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID" binding:"-"`
	Quantity int        `json:"quantity" gorm:"not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// ResolveReferences moves an id given as {"item":{"id":1}} into ItemID.
func (m *OrderModel) ResolveReferences() {
	m.ItemID = referenceID(m.ItemID, m.Item)
	m.Item = nil
}
