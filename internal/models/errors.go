package models

import (
	"errors"
	"net/http"
)

// DomainError carries a stable code and message so handlers and the
// consumer can decide what to do with a failure without string matching.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func validationError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func InvalidAmount(message string) *DomainError {
	return validationError("INVALID_AMOUNT", message)
}

func InvalidCurrency(message string) *DomainError {
	return validationError("INVALID_CURRENCY", message)
}

func InvalidAccount(message string) *DomainError {
	return validationError("INVALID_ACCOUNT", message)
}

func InvalidEmail(message string) *DomainError {
	return validationError("INVALID_EMAIL", message)
}

func InvalidDescription(message string) *DomainError {
	return validationError("INVALID_DESCRIPTION", message)
}

func IdempotencyKeyRequired() *DomainError {
	return validationError("IDEMPOTENCY_KEY_REQUIRED", "idempotency key is required")
}

func InvalidRequest(message string) *DomainError {
	return validationError("INVALID_REQUEST", message)
}

func InvalidPaymentReference(message string) *DomainError {
	return validationError("INVALID_PAYMENT_ID", message)
}

func InvalidNotificationType(message string) *DomainError {
	return validationError("INVALID_NOTIFICATION_TYPE", message)
}

func InvalidRecipient(message string) *DomainError {
	return validationError("INVALID_RECIPIENT", message)
}

func InvalidNotificationStatus(message string) *DomainError {
	return validationError("INVALID_STATUS", message)
}

func PaymentNotFound(id string) *DomainError {
	return &DomainError{
		Code:    "PAYMENT_NOT_FOUND",
		Message: "payment not found: " + id,
		Status:  http.StatusNotFound,
	}
}

func NotificationNotFound(id string) *DomainError {
	return &DomainError{
		Code:    notificationNotFoundCode,
		Message: "notification not found: " + id,
		Status:  http.StatusNotFound,
	}
}

const notificationNotFoundCode = "NOTIFICATION_NOT_FOUND"

// IsNotificationNotFound reports whether err is the missing-notification
// error, the one delivery failure retrying cannot fix.
func IsNotificationNotFound(err error) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == notificationNotFoundCode
}

func DeadLetterMessageNotFound(messageID string) *DomainError {
	return &DomainError{
		Code:    "DLQ_MESSAGE_NOT_FOUND",
		Message: "dead letter message not found: " + messageID,
		Status:  http.StatusNotFound,
	}
}

func LockAcquisitionTimeout(name string) *DomainError {
	return &DomainError{
		Code:    "LOCK_ACQUISITION_TIMEOUT",
		Message: "could not acquire lock: " + name,
		Status:  http.StatusConflict,
	}
}

func NotificationServiceUnavailable(message string) *DomainError {
	return &DomainError{
		Code:    "NOTIFICATION_SERVICE_UNAVAILABLE",
		Message: message,
		Status:  http.StatusServiceUnavailable,
	}
}
