package models

import (
	"time"
)

// PhotoView es el estado de visibilidad de una foto para un usuario.
// Se crea una fila por usuario al subir la foto; ocultar es de una sola vía.
type PhotoView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ViewerID  uint      `json:"usuarioId" gorm:"column:viewer_id;not null;uniqueIndex:idx_photo_views_viewer_photo"`
	PhotoID   uint      `json:"fotoId" gorm:"column:photo_id;not null;uniqueIndex:idx_photo_views_viewer_photo"`
	Hidden    bool      `json:"ocultado"`
	Photo     *Photo    `json:"foto,omitempty" gorm:"foreignKey:PhotoID"`
	CreatedAt time.Time `json:"createdAt"`
}

type HidePhotoRequest struct {
	ViewerID uint `json:"usuarioId" binding:"required"`
	PhotoID  uint `json:"fotoId" binding:"required"`
}
