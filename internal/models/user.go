package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Subscription tiers
const (
	TierFree    = "free"
	TierPro     = "pro"
	TierPremium = "premium"
)

// Free accounts start with 50K tokens
const DefaultTokensLimit = 50000

type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	Name             string     `json:"name"`
	AvatarURL        string     `json:"avatar_url"`
	Role             string     `json:"role" gorm:"type:varchar(16);not null;default:user"`
	SubscriptionTier string     `json:"subscription_tier" gorm:"type:varchar(16);not null;default:free"`
	TokensUsed       int        `json:"tokens_used" gorm:"not null;default:0"`
	TokensLimit      int        `json:"tokens_limit" gorm:"not null;default:50000"`
	IsActive         bool       `json:"is_active" gorm:"not null;default:true"`
	EmailVerified    bool       `json:"email_verified" gorm:"not null;default:false"`
	LastLoginAt      *time.Time `json:"last_login_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
