package specification

import "gorm.io/gorm"

// CharacterVisibleTo matches public and system characters. When UserID is set, characters
// owned by that user match as well, whatever their public flag.
type CharacterVisibleTo struct {
	UserID string
}

func (s CharacterVisibleTo) Apply(db *gorm.DB) *gorm.DB {
	if s.UserID == "" {
		return db.Where("(is_public = ? OR is_system = ?)", true, true)
	}
	return db.Where("(is_public = ? OR is_system = ? OR user_id = ?)", true, true, s.UserID)
}

func (s CharacterVisibleTo) IsSatisfiedBy(row Row) bool {
	if row["is_public"] == true || row["is_system"] == true {
		return true
	}
	if s.UserID == "" {
		return false
	}
	owner, ok := row["user_id"].(string)
	return ok && owner == s.UserID
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

func (s BySlug) IsSatisfiedBy(row Row) bool {
	slug, ok := row["slug"].(string)
	return ok && slug == s.Slug
}

type SystemCharacters struct{}

func (s SystemCharacters) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_system = ?", true)
}

func (s SystemCharacters) IsSatisfiedBy(row Row) bool {
	return row["is_system"] == true
}
