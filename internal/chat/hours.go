package chat

import "time"

// Hours is the weekly support window: weekdays, Open <= hour < Close.
type Hours struct {
	Location *time.Location
	Open     int
	Close    int
}

func DefaultHours() Hours {
	return Hours{Location: time.Local, Open: 9, Close: 17}
}

// LoadHours resolves the IANA zone name; "" and "Local" mean time.Local.
func LoadHours(zone string, openHour, closeHour int) (Hours, error) {
	loc := time.Local
	if zone != "" && zone != "Local" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return Hours{}, err
		}
		loc = l
	}
	return Hours{Location: loc, Open: openHour, Close: closeHour}, nil
}

func (h Hours) IsOnline(t time.Time) bool {
	if h.Location != nil {
		t = t.In(h.Location)
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	hour := t.Hour()
	return hour >= h.Open && hour < h.Close
}
