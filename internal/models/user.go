package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User exists only as the identity behind a booking or an admin action. The
// password is an opaque credential compared verbatim at login.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// Public returns a copy safe to hand back to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Document is the single logical unit of persistence: every collection the
// service owns, loaded and saved as one whole.
type Document struct {
	Events     []Event     `json:"events"`
	Promotions []Promotion `json:"promotions"`
	Users      []User      `json:"users"`
	Bookings   []Booking   `json:"bookings"`
}

// Clone deep-copies the document so callers can mutate a snapshot without
// affecting the stored one.
func (d *Document) Clone() *Document {
	cp := &Document{
		Events:     make([]Event, len(d.Events)),
		Promotions: make([]Promotion, len(d.Promotions)),
		Users:      make([]User, len(d.Users)),
		Bookings:   make([]Booking, len(d.Bookings)),
	}
	copy(cp.Events, d.Events)
	copy(cp.Promotions, d.Promotions)
	copy(cp.Users, d.Users)
	copy(cp.Bookings, d.Bookings)
	for i, ev := range d.Events {
		if ev.Lat != nil {
			lat := *ev.Lat
			cp.Events[i].Lat = &lat
		}
		if ev.Lng != nil {
			lng := *ev.Lng
			cp.Events[i].Lng = &lng
		}
	}
	for i, b := range d.Bookings {
		if b.Promo != nil {
			promo := *b.Promo
			cp.Bookings[i].Promo = &promo
		}
	}
	return cp
}
