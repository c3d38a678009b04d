package models

type Hashtag struct {
	ID  uint   `json:"id" gorm:"primaryKey"`
	Tag string `json:"etiqueta" gorm:"uniqueIndex;not null"`
}

type HashtagCreate struct {
	Tag string `json:"etiqueta" binding:"required,alphanum,min=3,max=10"`
}

type HashtagUpdate struct {
	Tag string `json:"etiqueta" binding:"omitempty,alphanum,min=3,max=10"`
}
