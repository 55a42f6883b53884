package services

import (
	"fmt"

	"skyward/aerodrome/internal/common"
)

// ValidateSeat checks a seat coordinate against airplane dimensions.
// Row and seat are checked independently so a caller gets both range
// messages when both are out of bounds. Returns nil when valid.
//
// This is advisory validation only: the structural pre-filter before
// touching storage. The unique index on tickets stays the authority for
// conflicts between concurrent bookings.
func ValidateSeat(row, seat, rows, seatsInRow int) *common.ValidationError {
	verr := common.NewValidationError()

	if row < 1 || row > rows {
		verr.Add("row", fmt.Sprintf(
			"row number must be in available range: (1, rows): (1, %d)", rows))
	}
	if seat < 1 || seat > seatsInRow {
		verr.Add("seat", fmt.Sprintf(
			"seat number must be in available range: (1, seats_in_row): (1, %d)", seatsInRow))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
