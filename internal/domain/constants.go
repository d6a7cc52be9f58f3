package domain

// Temple identity served by /api/temple/info.
const (
	TempleName     = "Sri Venkateswara Swami Temple (Tirupati Balaji)"
	TempleLocation = "Tirumala, Andhra Pradesh, India"
)

// SlotCapacity maximum total tickets per slot per day.
const SlotCapacity = 200

// DefaultDarshanType is used when a booking request omits darshan_type.
const DefaultDarshanType = "Sarva Darshan"

// Business validation constants for the booking request body.
const (
	MinNameLength  = 2
	MinPhoneLength = 8
	MaxPhoneLength = 15
	MinTickets     = 1
	MaxTickets     = 10
)

// DateFormat is the calendar date layout for the date field (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Slots is the fixed darshan slot catalog. Defined once at startup,
// never mutated; availability is always reported in this order.
var Slots = []string{
	"06:00-08:00",
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"16:00-18:00",
	"18:00-20:00",
}

// DarshanTypes lists the known darshan categories.
var DarshanTypes = []string{
	"Sarva Darshan",
	"Special Entry",
	"VIP",
}

// IsValidSlot reports whether the slot is a member of the catalog.
func IsValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}
