// Package notify announces confirmed bookings over SMS and Redis pub/sub.
package notify

import "fmt"

const Subject = "TravelGo Booking Confirmation"

func confirmationMessage(service, ownerEmail string) string {
	return fmt.Sprintf("Booking for %s has been confirmed for user %s.", service, ownerEmail)
}
