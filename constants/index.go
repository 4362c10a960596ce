package constants

// User roles
const (
	ROLE_ADMIN   = "admin"
	ROLE_OWNER   = "owner"
	ROLE_STUDENT = "student"
)

var Roles = []string{ROLE_ADMIN, ROLE_OWNER, ROLE_STUDENT}

// Seat listing lifecycle
const (
	SEAT_STATUS_PENDING   = "pending"
	SEAT_STATUS_PUBLISHED = "published"
	SEAT_STATUS_FULL      = "full"
)

// Listing vocabularies
var (
	SeatTypes      = []string{"Mess", "House", "PG", "Shared"}
	Genders        = []string{"Boys", "Girls"}
	OccupancyTypes = []string{"Single", "Double", "Triple", "Quad"}
	Amenities      = []string{
		"WiFi", "AC", "Laundry", "24/7 Security", "Furnished",
		"Kitchen Access", "Study Room", "Common Room", "Library",
		"Medical Facility", "Generator", "Parking",
	}
)

// Price bracket labels accepted by the public filter
const (
	PRICE_UNDER_4000 = "Under 4000"
	PRICE_4000_5000  = "4000-5000"
	PRICE_5000_6000  = "5000-6000"
	PRICE_ABOVE_6000 = "Above 6000"
)

const MaxSeatImages = 4

// Admin log actions
const (
	ADMIN_ACTION_APPROVE     = "approve_request"
	ADMIN_ACTION_REJECT      = "reject_request"
	ADMIN_ACTION_DELETE_SEAT = "delete_seat"
)

// User-facing messages. The auth set mirrors the error-code table the
// frontend translates from.
const (
	ERROR_INTERNAL_ERROR       = "An error occurred. Please try again."
	ERROR_INPUT                = "Invalid input"
	ERROR_CREATE               = "Could not create record"
	ERROR_EDIT                 = "Could not update record"
	ERROR_DELETE               = "Could not delete record"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not parse request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"

	MISSING_LOGIN_INPUT   = "Email and password are required"
	USER_NOT_FOUND        = "No user found with this email address."
	INVALID_PASSWORD      = "Incorrect password."
	EMAIL_IN_USE          = "An account with this email already exists."
	WEAK_PASSWORD         = "Password should be at least 6 characters long."
	INVALID_EMAIL         = "Invalid email address."
	EMAIL_NOT_VERIFIED    = "Please verify your email address before logging in."
	TOO_MANY_REQUESTS     = "Too many failed attempts. Please try again later."
	ACCOUNT_NOT_ACTIVE    = "This account has been deactivated."
	CAN_NOT_HASH_PASSWORD = "Could not process password"

	NOT_ADMIN         = "Admin access required"
	NOT_OWNER         = "Owner access required"
	SEAT_NOT_FOUND    = "Listing not found"
	REQUEST_NOT_FOUND = "Pending request not found"
	SEAT_FULLY_BOOKED = "No vacant seats left on this listing"
)
