package models

// Comment is a content record attached to a Post. The post_id reference
// is intentionally not enforced at the schema level and deletes do not
// cascade, so a comment may outlive its post.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null" json:"post_id"`
	Content string `gorm:"not null" json:"content"`
}

// CommentPatch holds the patchable columns of a Comment.
type CommentPatch struct {
	PostID  *uint   `json:"post_id"`
	Content *string `json:"content"`
}

// Fields returns the column assignments for the slots present in the patch.
func (p CommentPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.PostID != nil {
		fields["post_id"] = *p.PostID
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	return fields
}
