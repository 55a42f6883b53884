package services

// AvailableSeats is how many seats remain bookable on a flight. Used
// only when assembling read views; never consulted to accept or reject
// a booking, because checking and booking are not atomic with respect
// to each other.
func AvailableSeats(capacity, ticketCount int) int {
	return capacity - ticketCount
}
