package model

// Actor is the authenticated caller of a service operation.
type Actor struct {
	Username string
	Admin    bool
}

// SystemActor attributes time-driven transitions.
var SystemActor = Actor{Username: "system", Admin: true}

func (a Actor) Owns(username string) bool {
	return a.Username == username
}

func (a Actor) CanSee(username string) bool {
	return a.Admin || a.Owns(username)
}
