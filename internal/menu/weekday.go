package menu

import "fmt"

// Weekday numbers the days of a menu week, Monday = 1 through Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekdays lists the seven days in menu order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday validates a stored day number.
func ParseWeekday(n int) (Weekday, error) {
	d := Weekday(n)
	if !d.Valid() {
		return 0, fmt.Errorf("day number %d out of range 1-7", n)
	}
	return d, nil
}

// Valid reports whether d is one of Monday..Sunday.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}
