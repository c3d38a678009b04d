package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	FullName         string    `json:"nombreCompleto" gorm:"column:full_name"`
	Username         string    `json:"nombreUsuario" gorm:"column:username;uniqueIndex"`
	Email            string    `json:"email" gorm:"uniqueIndex"`
	Password         string    `json:"-"`
	Description      string    `json:"descripcion"`
	ProfilePicture   string    `json:"fotoPerfil" gorm:"column:profile_picture;type:text"`
	PictureExtension string    `json:"fotoExtension" gorm:"column:picture_extension"`
	Role             Role      `json:"rol" gorm:"default:USER"`
	Enabled          bool      `json:"habilitado" gorm:"default:true"`
	Photos           []Photo   `json:"fotos,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type UserRegister struct {
	Email            string `json:"email" binding:"required,email"`
	FullName         string `json:"nombre_completo" binding:"required,min=3,max=50"`
	Username         string `json:"nombre_usuario" binding:"required,min=3,max=50"`
	Password         string `json:"contrasena" binding:"required,min=5,max=20"`
	ProfilePicture   string `json:"imagen_base64"`
	PictureExtension string `json:"imagen_tipo" binding:"omitempty,min=3,max=4"`
}

type UserUpdate struct {
	FullName         string `json:"nombreCompleto" binding:"omitempty,min=3,max=20"`
	Username         string `json:"nombreUsuario" binding:"omitempty,min=3,max=20"`
	Description      string `json:"descripcion" binding:"omitempty,max=100"`
	ProfilePicture   string `json:"fotoPerfil"`
	PictureExtension string `json:"fotoExtension" binding:"omitempty,min=3,max=4"`
	Enabled          *bool  `json:"habilitado"`
}

type PasswordUpdate struct {
	OldPassword string `json:"antiguaContrasena" binding:"required,min=5,max=20"`
	NewPassword string `json:"nuevaContrasena" binding:"required,min=5,max=20"`
}
