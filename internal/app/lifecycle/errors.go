package lifecycle

import (
	"errors"
	"fmt"

	"ruangobat-admin/internal/infra/ruangobat"
)

// ErrValidation marks input problems caught before any backend call.
var ErrValidation = errors.New("validation failed")

var (
	ErrUserSelection    = fmt.Errorf("%w: exactly one user must be selected", ErrValidation)
	ErrProductSelection = fmt.Errorf("%w: exactly one product must be selected", ErrValidation)
	ErrInvalidDiscount  = fmt.Errorf("%w: discount must be between 0 and the product price", ErrValidation)
	ErrEmptyReason      = fmt.Errorf("%w: a revoke reason is required", ErrValidation)
	ErrMissingAccess    = fmt.Errorf("%w: access id is required", ErrValidation)
)

var (
	ErrActionNotAllowed = errors.New("action not allowed for this access status")
	ErrInFlight         = errors.New("another request for this target is still in flight")
)

// FallbackMessage is shown when no better message is known.
const FallbackMessage = "Terjadi kesalahan, silakan coba lagi"

// NotificationKind drives the toast style in the admin UI.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// ErrorNotification turns a failed operation into the one-shot message shown
// to the admin. Backend messages are kept verbatim.
func ErrorNotification(err error) Notification {
	var apiErr *ruangobat.APIError
	switch {
	case errors.As(err, &apiErr):
		return Notification{Kind: NotifyError, Message: apiErr.Message}
	case errors.Is(err, ErrUserSelection):
		return Notification{Kind: NotifyError, Message: "Pilih tepat satu pengguna"}
	case errors.Is(err, ErrProductSelection):
		return Notification{Kind: NotifyError, Message: "Pilih tepat satu paket"}
	case errors.Is(err, ErrInvalidDiscount):
		return Notification{Kind: NotifyError, Message: "Diskon tidak valid"}
	case errors.Is(err, ErrEmptyReason):
		return Notification{Kind: NotifyError, Message: "Alasan wajib diisi"}
	case errors.Is(err, ErrActionNotAllowed):
		return Notification{Kind: NotifyError, Message: "Aksi tidak tersedia untuk status akses ini"}
	case errors.Is(err, ErrInFlight):
		return Notification{Kind: NotifyError, Message: "Permintaan sebelumnya masih diproses"}
	}
	return Notification{Kind: NotifyError, Message: FallbackMessage}
}
