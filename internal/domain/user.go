package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type UserType string

const (
	UserTypeVehicleOwner UserType = "vehicle_owner"
	UserTypeSpaceOwner   UserType = "space_owner"
)

type User struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Password  string      `json:"-"` // Không bao giờ trả về password hash trong JSON
	UserType  UserType    `json:"user_type"`
	Name      null.String `json:"name,omitempty"`
	Avatar    null.String `json:"avatar,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	UserType string `json:"user_type" binding:"required,oneof=vehicle_owner space_owner"`
}

type UpdateUserTypeDTO struct {
	UserType string `json:"user_type" binding:"required,oneof=vehicle_owner space_owner"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
