package model

// State identifies where a user is in the booking dialogue. Transitions are
// owned by the flow service; nothing infers state from which fields happen to
// be populated.
type State string

const (
	StateNone     State = "none"
	StateLanguage State = "language"
	StateSalon    State = "salon"
	StateBarber   State = "barber"
	StateServices State = "services"
	StateDate     State = "date"
	StateHour     State = "hour"
	StateMinute   State = "minute"
	StateConfirm  State = "confirm"
	StatePhone    State = "phone"
	StateDone     State = "done"
)

// Session is the per-user dialogue state. It lives for the configured store
// TTL; a new booking cycle overwrites fields rather than recreating the
// session, so values from a finished cycle persist until replaced.
type Session struct {
	UserID   int64
	Language string

	State State
	// ResumeState remembers where the user was when /language interrupted
	// the dialogue, so the flow can return there afterwards.
	ResumeState State

	SalonID         int64
	SalonName       string
	SalonMode       string
	BarbersMode     string
	AppointmentMode string

	// Snapshots fetched when the salon was selected. Selections are
	// validated against these, not against live data. CatalogServices is
	// the salon's full catalog; Services is the subset applicable to the
	// chosen barber.
	Barbers         []Barber
	CatalogServices []Service
	Services        []Service

	ChosenBarber     *Barber
	ChosenServiceIDs []int64

	Date          string // YYYY-MM-DD
	Hour          int
	Time          string // HH:MM
	TotalDuration int    // minutes

	BookingDetails []BookingDetail
	Phone          string

	Admin *AdminSession
}

// ToggleService flips membership of a service id in the chosen set and
// reports whether the id is now chosen.
func (s *Session) ToggleService(id int64) bool {
	for i, chosen := range s.ChosenServiceIDs {
		if chosen == id {
			s.ChosenServiceIDs = append(s.ChosenServiceIDs[:i], s.ChosenServiceIDs[i+1:]...)
			return false
		}
	}
	s.ChosenServiceIDs = append(s.ChosenServiceIDs, id)
	return true
}

// HasService reports whether a service id is in the chosen set.
func (s *Session) HasService(id int64) bool {
	for _, chosen := range s.ChosenServiceIDs {
		if chosen == id {
			return true
		}
	}
	return false
}

// ServiceByID looks a service up in the current snapshot.
func (s *Session) ServiceByID(id int64) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i], true
		}
	}
	return nil, false
}

// BarberByID looks a barber up in the current snapshot.
func (s *Session) BarberByID(id int64) (*Barber, bool) {
	for i := range s.Barbers {
		if s.Barbers[i].ID == id {
			return &s.Barbers[i], true
		}
	}
	return nil, false
}
