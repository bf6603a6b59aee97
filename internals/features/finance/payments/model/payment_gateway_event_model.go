package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentGatewayEventModel menyimpan setiap notifikasi mentah dari Midtrans.
// Append-only, dipakai untuk audit & debugging webhook.
type PaymentGatewayEventModel struct {
	PaymentGatewayEventID uuid.UUID `gorm:"column:payment_gateway_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_gateway_event_id"`

	PaymentGatewayEventOrderID string `gorm:"column:payment_gateway_event_order_id;type:varchar(64);not null;index:idx_pge_order" json:"payment_gateway_event_order_id"`
	PaymentGatewayEventStatus  string `gorm:"column:payment_gateway_event_status;type:varchar(24);not null" json:"payment_gateway_event_status"`

	PaymentGatewayEventPayload datatypes.JSON `gorm:"column:payment_gateway_event_payload;type:jsonb" json:"payment_gateway_event_payload"`

	PaymentGatewayEventCreatedAt time.Time `gorm:"column:payment_gateway_event_created_at;not null;autoCreateTime" json:"payment_gateway_event_created_at"`
}

func (PaymentGatewayEventModel) TableName() string {
	return "payment_gateway_events"
}
