package constants

// Redis key formats
const (
	// Verification codes
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{identifier}

	// Driver availability
	KeyDriverBeacon = "driver:beacon:%s" // Format: driver:beacon:{driver_id}
	KeyDriverGeo    = "drivers:geo"      // Geo set of available driver locations

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
	FieldActive    = "active"
)
