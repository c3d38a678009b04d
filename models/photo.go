package models

import (
	"time"
)

type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"propietarioId" gorm:"column:owner_id;not null;index"`
	Owner       *User     `json:"propietario,omitempty" gorm:"foreignKey:OwnerID"`
	Description string    `json:"descripcion"`
	Location    string    `json:"ubicacion"`
	Payload     string    `json:"base64" gorm:"column:payload;type:text"`
	// Contador denormalizado: debe coincidir con las filas vivas de likes.
	LikeCount int       `json:"cantidad" gorm:"column:like_count"`
	Hashtags  []Hashtag `json:"hashtags,omitempty" gorm:"many2many:photo_hashtags;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PhotoUpload struct {
	OwnerID     uint     `json:"propietarioId" binding:"required"`
	Description string   `json:"descripcion" binding:"required,max=50"`
	Location    string   `json:"ubicacion" binding:"required,max=30"`
	Payload     string   `json:"base64" binding:"required"`
	Hashtags    []string `json:"hashtags" binding:"omitempty,unique,dive,alphanum,min=3,max=10"`
}

func (Photo) TableName() string {
	return "photos"
}
