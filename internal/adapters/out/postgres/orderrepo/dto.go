// Package orderrepo persists order aggregates with their detail lines,
// mapping between the domain model and the relational representation.
package orderrepo

import (
	"time"

	"takeout/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column doubles as the optimistic guard for conditional updates.
type OrderDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Number          string `gorm:"size:64;uniqueIndex"`
	UserID          int64  `gorm:"index"`
	Status          int    `gorm:"index"`
	PayStatus       int
	Amount          float64
	Consignee       string `gorm:"size:128"`
	Phone           string `gorm:"size:32"`
	Address         string `gorm:"size:512"`
	CancelReason    string `gorm:"size:256"`
	RejectionReason string `gorm:"size:256"`
	OrderTime       time.Time `gorm:"index"`
	CheckoutTime    *time.Time
	CancelTime      *time.Time

	Details []OrderDetailDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO is one persisted order line.
type OrderDetailDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	OrderID  int64  `gorm:"index"`
	DishID   *int64
	ComboID  *int64
	Name     string `gorm:"size:128"`
	Price    float64
	Quantity int
}

// TableName specifies the database table name for order lines.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	detailDTOs := make([]OrderDetailDTO, 0, len(details))
	for _, d := range details {
		detailDTOs = append(detailDTOs, OrderDetailDTO{
			OrderID:  aggregate.ID(),
			DishID:   d.DishID,
			ComboID:  d.ComboID,
			Name:     d.Name,
			Price:    d.Price,
			Quantity: d.Quantity,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		Number:          aggregate.Number(),
		UserID:          aggregate.UserID(),
		Status:          int(aggregate.Status()),
		PayStatus:       int(aggregate.PayStatus()),
		Amount:          aggregate.Amount(),
		Consignee:       aggregate.Consignee(),
		Phone:           aggregate.Phone(),
		Address:         aggregate.Address(),
		CancelReason:    aggregate.CancelReason(),
		RejectionReason: aggregate.RejectionReason(),
		OrderTime:       aggregate.OrderTime(),
		CheckoutTime:    aggregate.CheckoutTime(),
		CancelTime:      aggregate.CancelTime(),
		Details:         detailDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := make([]order.Detail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detail, err := order.NewDetail(d.DishID, d.ComboID, d.Name, d.Price, d.Quantity)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              dto.ID,
		Number:          dto.Number,
		UserID:          dto.UserID,
		Status:          order.Status(dto.Status),
		PayStatus:       order.PayStatus(dto.PayStatus),
		Amount:          dto.Amount,
		Consignee:       dto.Consignee,
		Phone:           dto.Phone,
		Address:         dto.Address,
		OrderTime:       dto.OrderTime,
		CheckoutTime:    dto.CheckoutTime,
		CancelTime:      dto.CancelTime,
		CancelReason:    dto.CancelReason,
		RejectionReason: dto.RejectionReason,
		Details:         details,
	})
}
