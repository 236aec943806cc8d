package model

// Size is an allowed size value for stock items. Items keep a plain string
// copy of the value, so deleting a Size never touches existing items.
type Size struct {
	BaseModel
	Value string `gorm:"type:varchar(50);uniqueIndex;not null" json:"value"`
}
