package entity

// Identity is the authenticated caller of an operation. A nil *Identity is an anonymous caller.
type Identity struct {
	UserId string
}

func NewIdentity(userId string) *Identity {
	if userId == "" {
		return nil
	}
	return &Identity{UserId: userId}
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.UserId != ""
}
