package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrForbidden = errors.New("user does not have permission to access this resource")
var ErrConflict = errors.New("resource conflict, item already exists")
var ErrInvalidToken = errors.New("token not found or expired")

// ErrWeightRequired indicates a non-document booking was attempted without a
// positive weight; weight is rejected before pricing, never defaulted to zero.
var ErrWeightRequired = errors.New("parcel weight is required for non-document parcels")

// ErrNoInsertedID indicates the storage API answered without confirming an
// inserted record, which the client treats as a failed submission.
var ErrNoInsertedID = errors.New("storage did not confirm an inserted record")

var ErrBadTrackingID = errors.New("malformed tracking id")
var ErrBadStatusTransition = errors.New("delivery status transition not allowed")

// ErrorResponse is the JSON error body the API returns.
type ErrorResponse struct {
	Message string `json:"message"`
}
