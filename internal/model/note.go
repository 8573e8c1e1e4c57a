package model

// CommunityNote is a user-authored note on a topic. The likes/dislikes counters
// are maintained by the vote flow and never go negative.
// swagger:model CommunityNote
type CommunityNote struct {
	BaseModel
	TopicID  uint   `gorm:"index;not null" json:"topicId"`
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Likes    int    `gorm:"default:0" json:"likes"`
	Dislikes int    `gorm:"default:0" json:"dislikes"`
}

func (CommunityNote) TableName() string {
	return "community_notes"
}

// NoteVote holds at most one row per (note, user); a repeat vote overwrites the
// stored value after the counters are adjusted.
type NoteVote struct {
	BaseModel
	NoteID uint `gorm:"not null;uniqueIndex:idx_note_user_vote" json:"noteId"`
	UserID uint `gorm:"not null;uniqueIndex:idx_note_user_vote" json:"userId"`
	Vote   int  `gorm:"not null" json:"vote"` // +1 or -1
}

func (NoteVote) TableName() string {
	return "note_votes"
}
