package domain

import "errors"

// Domain errors represent error conditions in the barcodegen domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("barcodegen: invalid configuration")

	// ErrMissingQuota is returned when n_primers is absent or not positive.
	ErrMissingQuota = errors.New("barcodegen: n_primers is required")

	// ErrQuotaShortfall is returned when fewer pairs than requested were accepted
	// and the caller asked for shortfall to be fatal.
	ErrQuotaShortfall = errors.New("barcodegen: quota not met")

	// ErrPlateCapacity is returned when primers do not fit on one plate and splitting is off.
	ErrPlateCapacity = errors.New("barcodegen: plate capacity exceeded")

	// ErrMalformedBarcodeFile is returned when a provided-barcode row has no barcode column.
	ErrMalformedBarcodeFile = errors.New("barcodegen: malformed barcode file")
)
