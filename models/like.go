package models

import (
	"time"
)

// Like registra a lo más un me gusta por par (interactuador, foto);
// la unicidad la garantiza el índice compuesto.
type Like struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	InteractorID uint      `json:"interactuadorId" gorm:"column:interactor_id;not null;uniqueIndex:idx_likes_interactor_photo"`
	PhotoID      uint      `json:"fotoId" gorm:"column:photo_id;not null;uniqueIndex:idx_likes_interactor_photo"`
	Hidden       bool      `json:"ocultado"`
	Interactor   *User     `json:"interactuador,omitempty" gorm:"foreignKey:InteractorID"`
	Photo        *Photo    `json:"foto,omitempty" gorm:"foreignKey:PhotoID"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LikeRequest struct {
	InteractorID uint `json:"interactuadorId" binding:"required"`
	PhotoID      uint `json:"fotoId" binding:"required"`
}
