package model

// BookingDetail is one category group of a booking: the services, the barber
// performing them and the summed duration in minutes.
type BookingDetail struct {
	CategoryID int64          `json:"categoryId"`
	Services   []ServiceEntry `json:"services"`
	BarberID   int64          `json:"barberId"`
	Duration   int            `json:"duration"`
}

// ServiceEntry is a single service inside a BookingDetail.
type ServiceEntry struct {
	ServiceID  int64 `json:"serviceId"`
	Duration   int   `json:"duration"`
	CategoryID int64 `json:"categoryId"`
}

// AvailabilityRequest asks for free minutes on a date across candidate hours.
type AvailabilityRequest struct {
	SalonID              int64           `json:"salon_id"`
	Date                 string          `json:"date"`
	Hours                []int           `json:"hours"`
	BookingDetails       []BookingDetail `json:"booking_details"`
	TotalServiceDuration int             `json:"total_service_duration"`
}

// AvailabilityResponse maps an hour (as a decimal string key) to the free
// minutes within it.
type AvailabilityResponse struct {
	AvailableMinutes map[string][]int `json:"available_minutes"`
}

// NearestSlotRequest asks for the closest bookable times around a chosen hour.
type NearestSlotRequest struct {
	SalonID              int64           `json:"salon_id"`
	Date                 string          `json:"date"`
	ChosenHour           int             `json:"chosen_hour"`
	BookingDetails       []BookingDetail `json:"booking_details"`
	TotalServiceDuration int             `json:"total_service_duration"`
}

// NearestSlotResponse carries "HH:MM" candidates; either side may be absent.
type NearestSlotResponse struct {
	NearestBefore *string `json:"nearest_before"`
	NearestAfter  *string `json:"nearest_after"`
}

// BookingRequest is the final submission payload.
type BookingRequest struct {
	SalonID              int64           `json:"salon_id"`
	Date                 string          `json:"date"`
	Time                 string          `json:"time"`
	BookingDetails       []BookingDetail `json:"booking_details"`
	TotalServiceDuration int             `json:"total_service_duration"`
	EndTime              string          `json:"endTime"`
	UserComment          string          `json:"user_comment"`
	SalonMod             string          `json:"salonMod"`
	PhoneNumber          string          `json:"phone_number"`
}

// BookingResponse reports submission outcome; anything without Success true
// is a failure.
type BookingResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AdminVerifyResponse lists the salons an operator phone number administers.
type AdminVerifyResponse struct {
	Success bool    `json:"success"`
	Salons  []Salon `json:"salons"`
}
