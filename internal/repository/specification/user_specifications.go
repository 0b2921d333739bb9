package specification

import "gorm.io/gorm"

type UserOwnedBy struct {
	UserID string
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

func (s UserOwnedBy) IsSatisfiedBy(row Row) bool {
	owner, ok := row["user_id"].(string)
	return ok && owner == s.UserID
}
