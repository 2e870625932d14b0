package dtos

import "github.com/supply-dashboard/supply-dashboard-backend/src/models"

// ShipmentRequest is the inbound shape of a shipment. Unlike the stored record
// it carries the id of the order being fulfilled.
type ShipmentRequest struct {
	OrderID               *int         `json:"orderId"`
	OriginLocation        string       `json:"originLocation"`
	DestinationLocation   string       `json:"destinationLocation"`
	ShipmentDate          *models.Date `json:"shipmentDate"`
	EstimatedDeliveryDate *models.Date `json:"estimatedDeliveryDate"`
	Status                string       `json:"status"`
}

func (r ShipmentRequest) ToModel() *models.ShipmentModel {
	return &models.ShipmentModel{
		OrderID:               r.OrderID,
		OriginLocation:        r.OriginLocation,
		DestinationLocation:   r.DestinationLocation,
		ShipmentDate:          r.ShipmentDate,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		Status:                r.Status,
	}
}
