package constants

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Booking status
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// Payment status
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

// Review limits
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 2000
)

// Hotel limits
const (
	MinStars = 1
	MaxStars = 5
)

const (
	FeaturedHotelsLimit = 6
	HotelDetailReviews  = 10
	RecentHotelsLimit   = 5
)
