package model

// Salon modes controlling how a salon's service catalog is organized.
const (
	SalonModeCategory = "category"
	SalonModeBarber   = "barber"
)

// Barber presentation modes for the selection step.
const (
	BarbersWithImages    = "with_images"
	BarbersWithoutImages = "without_images"
)

// Appointment modes: manual exact-minute picking vs automatic nearest-slot
// resolution.
const (
	AppointmentModeManual = "manual"
	AppointmentModeAuto   = "auto"
)

// Salon is a bookable location as returned by the salon list endpoint.
type Salon struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SalonDetail is the full salon record with its barbers and service catalog.
type SalonDetail struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Barbers         []Barber  `json:"barbers"`
	Services        []Service `json:"services"`
	Mode            string    `json:"mod"`
	BarbersMode     string    `json:"telegram_barbersMod"`
	AppointmentMode string    `json:"telegram_appointmentMod"`
}

// Barber is a salon employee. Categories drives service filtering in
// category mode; BarberServices is the barber-owned catalog in barber mode.
type Barber struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Avatar         string    `json:"avatar"`
	Description    string    `json:"description"`
	Categories     []int64   `json:"categories"`
	BarberServices []Service `json:"barber_services"`
}

// Service is a bookable service. Duration is the raw "HH:MM:SS" string from
// the API; ParseDurationMinutes converts it to minutes.
type Service struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Category int64  `json:"category"`
}
