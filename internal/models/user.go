package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role is a closed set, an account holds exactly one.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleHelper Role = "helper"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleHelper, RoleAdmin:
		return true
	}

	return false
}

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusPending  AccountStatus = "pending"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusPending:
		return true
	}

	return false
}

type Location struct {
	Pincode  string `json:"pincode" validate:"required,numeric,len=6"`
	State    string `json:"state" validate:"required"`
	District string `json:"district" validate:"required"`
	Taluka   string `json:"taluka,omitempty"`
	Address  string `json:"address" validate:"required"`
}

type Documents struct {
	PanCard                string `json:"pan_card,omitempty"`
	CancelledCheque        string `json:"cancelled_cheque,omitempty"`
	AgricultureCertificate string `json:"agriculture_certificate,omitempty"`
	GSTNumber              string `json:"gst_number,omitempty"`
}

type User struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Password  string        `json:"-"`
	Role      Role          `json:"role"`
	Status    AccountStatus `json:"status"`
	Location  Location      `json:"location"`
	Documents Documents     `json:"documents"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Caller is the identity the Account Directory resolves for a request.
type Caller struct {
	ID     uuid.UUID     `json:"id"`
	Role   Role          `json:"role"`
	Status AccountStatus `json:"status"`
}

func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

func (c *Caller) IsActive() bool {
	return c != nil && c.Status == AccountStatusActive
}

// for registration
type RegisterRequest struct {
	Name                   string   `json:"name" validate:"required,max=100"`
	Email                  string   `json:"email" validate:"required,email"`
	Phone                  string   `json:"phone" validate:"required,e164|numeric"`
	Password               string   `json:"password" validate:"required,min=6"`
	Role                   Role     `json:"role" validate:"required,oneof=farmer buyer helper"`
	Location               Location `json:"location" validate:"required"`
	PanCard                string   `json:"pan_card" validate:"required"`
	CancelledCheque        string   `json:"cancelled_cheque" validate:"required_if=Role farmer"`
	AgricultureCertificate string   `json:"agriculture_certificate" validate:"required_if=Role helper"`
	GSTNumber              string   `json:"gst_number" validate:"required_if=Role buyer"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// for login response
type LoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	ExpiresIn      int    `json:"expires_in,omitempty"`
	Role           Role   `json:"role,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
	Message        string `json:"message,omitempty"`
}

type UpdateUserStatusRequest struct {
	Status AccountStatus `json:"status" validate:"required,oneof=active inactive pending"`
}

type UserListQuery struct {
	Role     *Role
	Page     int
	PageSize int
}

// JWT claims structure
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
