package model

// AdminState tracks the operator booking dialogue, which runs independently
// of the customer flow.
type AdminState string

const (
	AdminStatePhone       AdminState = "phone"
	AdminStateSelectSalon AdminState = "select_salon"
	AdminStateBarber      AdminState = "select_barber"
	AdminStateCommand     AdminState = "wait_command"
)

// AdminSession is the operator-mode state attached to a user session while
// an admin dialogue is active.
type AdminSession struct {
	State    AdminState
	Phone    string
	Salon    *Salon
	Salons   []Salon
	BarberID int64
}

// AdminCommand is the parse result of a free-text operator booking command.
// Times are in colon form ("HH:MM"), Date is ISO (YYYY-MM-DD).
type AdminCommand struct {
	StartTime string
	EndTime   string
	Duration  int
	Date      string
	Comment   string
}
