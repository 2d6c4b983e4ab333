package constants

// NATS Subjects
const (
	// Notification delivery (consumed by the out-of-process delivery worker)
	SubjectNotifySMS   = "notify.sms"
	SubjectNotifyEmail = "notify.email"

	// Ride events
	SubjectRideRequested     = "ride.requested"
	SubjectRideStatusChanged = "ride.status_changed"

	// Driver availability
	SubjectDriverBeacon = "driver.beacon"
)
