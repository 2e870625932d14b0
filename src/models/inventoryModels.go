package models

// InventoryModel is the stock level of one item in one warehouse. Item and
// Warehouse are only populated on reads; writes persist the id columns.
type InventoryModel struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID      *int            `json:"itemId" gorm:"column:item_id;index"`
	Item        *ItemModel      `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID" binding:"-"`
	WarehouseID *int            `json:"warehouseId" gorm:"column:warehouse_id;index"`
	Warehouse   *WarehouseModel `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;references:ID" binding:"-"`
	Quantity    int             `json:"quantity" gorm:"not null"`
}

func (InventoryModel) TableName() string {
	return "inventories"
}

// ResolveReferences moves ids given in the nested {"item":{"id":1}} form into
// the foreign key columns and drops the nested records.
func (m *InventoryModel) ResolveReferences() {
	m.ItemID = referenceID(m.ItemID, m.Item)
	m.WarehouseID = referenceID(m.WarehouseID, m.Warehouse)
	m.Item = nil
	m.Warehouse = nil
}

func referenceID[T interface{ referenceKey() int }](flat *int, nested T) *int {
	if flat != nil {
		return flat
	}
	if id := nested.referenceKey(); id != 0 {
		return &id
	}
	return nil
}

func (m *ItemModel) referenceKey() int {
	if m == nil {
		return 0
	}
	return m.ID
}

func (m *WarehouseModel) referenceKey() int {
	if m == nil {
		return 0
	}
	return m.ID
}

func (m *OrderModel) referenceKey() int {
	if m == nil {
		return 0
	}
	return m.ID
}
