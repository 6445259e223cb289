// Package models contains data structures for the application's domain models.
package models

// Post is a top-level content record.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
}

// PostPatch holds the patchable columns of a Post. Only non-nil slots
// are applied, so a PATCH body may carry any subset of them.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Fields returns the column assignments for the slots present in the patch.
func (p PostPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	return fields
}
