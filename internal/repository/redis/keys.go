package redis

func accountKey(email string) string {
	return "account:" + email
}

// accountBookingsKey lives outside the account: namespace so no email can collide with it.
func accountBookingsKey(email string) string {
	return "bookings:owner:" + email
}

func bookingKey(id string) string {
	return "booking:" + id
}
