package models

// Parcel types as selected on the booking form and sent on the wire.
const (
	ParcelTypeDocument    = "Document"
	ParcelTypeNonDocument = "Non-Document"
)

// Payment statuses.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Delivery statuses, in lifecycle order. The storage system owns the
// authoritative status; the client only reads and requests transitions.
const (
	DeliveryStatusNotCollected  = "not_collected"
	DeliveryStatusRiderAssigned = "Rider assigned"
	DeliveryStatusInTransit     = "In transit"
	DeliveryStatusCompleted     = "Delivery Completed"
)

// ParcelRequest is the sender's input at submission time. Descriptive fields
// are pass-through; only type, weight and the two districts carry pricing
// rules.
type ParcelRequest struct {
	ParcelType          string  `json:"parcelType" validate:"required,oneof=Document 'Non-Document'"`
	ParcelName          string  `json:"parcelName" validate:"required"`
	ParcelWeightKg      float64 `json:"parcelWeight,omitempty" validate:"omitempty,gt=0"`
	SenderName          string  `json:"senderName" validate:"required"`
	SenderContact       string  `json:"senderContact" validate:"required"`
	SenderRegion        string  `json:"senderRegion" validate:"required"`
	SenderDistrict      string  `json:"senderDistrict" validate:"required"`
	SenderArea          string  `json:"senderArea" validate:"required"`
	SenderAddress       string  `json:"senderAddress" validate:"required"`
	PickupInstruction   string  `json:"pickupInstruction,omitempty"`
	ReceiverName        string  `json:"receiverName" validate:"required"`
	ReceiverContact     string  `json:"receiverContact" validate:"required"`
	ReceiverRegion      string  `json:"receiverRegion" validate:"required"`
	ReceiverDistrict    string  `json:"receiverDistrict" validate:"required"`
	ReceiverArea        string  `json:"receiverArea" validate:"required"`
	ReceiverAddress     string  `json:"receiverAddress" validate:"required"`
	DeliveryInstruction string  `json:"deliveryInstruction,omitempty"`
}

// Booking is the full record submitted to the parcel-storage API. The
// computed charge travels with it as advisory context; the server's charge
// is authoritative after submission.
type Booking struct {
	ParcelRequest

	TrackingID     string  `json:"trackingId"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	CreatedBy      string  `json:"createdBy"`
	PaymentStatus  string  `json:"paymentStatus"`
	DeliveryStatus string  `json:"deliveryStatus"`
	CreationDate   string  `json:"creationDate"` // UTC, ISO-8601
}

// Parcel is a booking as read back from the storage system, with the fields
// the server adds after submission.
type Parcel struct {
	ID string `json:"_id"`

	Booking

	RiderID       string `json:"riderId,omitempty"`
	RiderName     string `json:"riderName,omitempty"`
	RiderEmail    string `json:"riderEmail,omitempty"`
	CashoutStatus string `json:"cashoutStatus,omitempty"`
}
