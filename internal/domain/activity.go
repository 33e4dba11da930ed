package domain

import "slices"

// Activity is a single extracurricular offering. Description, Schedule and
// MaxParticipants are fixed at seed time; Participants is the mutable roster.
// MaxParticipants is descriptive metadata and is not enforced on signup.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsSignedUp reports whether email is on the roster.
func (a *Activity) IsSignedUp(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Signup appends email to the roster, preserving signup order.
// Returns ErrAlreadySignedUp if the email is already present.
func (a *Activity) Signup(email string) error {
	if a.IsSignedUp(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the roster.
// Returns ErrNotSignedUp if the email is not present.
func (a *Activity) Unregister(email string) error {
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}

// Clone returns a deep copy so callers cannot alias the roster slice.
func (a *Activity) Clone() *Activity {
	cp := *a
	cp.Participants = slices.Clone(a.Participants)
	return &cp
}
