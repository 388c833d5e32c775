package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ROLE_USER = "user"
const ROLE_HOTEL_OWNER = "hotelOwner"

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Account              Account    `bson:"account" json:"account"`
	Timestamps           Timestamps `bson:"timestamps" json:"timestamps"`
	RecentSearchedCities []string   `bson:"recentSearchedCities" json:"recentSearchedCities"`
}

type Account struct {
	Email      string `bson:"email" json:"email"`
	Username   string `bson:"username" json:"username"`
	Password   string `bson:"password" json:"-"`
	Role       string `bson:"role" json:"role"`
	IsVerified bool   `bson:"isVerified" json:"isVerified"`

	// Pending single-use tokens, one field pair per purpose.
	// Absent when no verification / reset is pending.
	EmailVerificationToken   string `bson:"emailVerificationToken,omitempty" json:"-"`
	EmailVerificationExpires int64  `bson:"emailVerificationExpires,omitempty" json:"-"`
	ResetToken               string `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpires        int64  `bson:"resetTokenExpires,omitempty" json:"-"`

	// Lockout state. Absent means "never failed" / "never locked".
	LoginAttempts int64 `bson:"loginAttempts,omitempty" json:"-"`
	BlockUntil    int64 `bson:"blockUntil,omitempty" json:"-"`
}

// IsLocked reports whether the account has an active lock at the given time.
// An expired lock counts as unlocked, the next failed attempt starts a fresh
// counting window.
func (a Account) IsLocked(now time.Time) bool {
	return a.BlockUntil > 0 && a.BlockUntil > now.Unix()
}

// LockRemaining returns how long the active lock still holds, zero if there
// is no active lock.
func (a Account) LockRemaining(now time.Time) time.Duration {
	if !a.IsLocked(now) {
		return 0
	}
	return time.Unix(a.BlockUntil, 0).Sub(now)
}

type Timestamps struct {
	CreatedAt          int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt          int64 `bson:"updatedAt" json:"updatedAt"`
	LastLogin          int64 `bson:"lastLogin" json:"lastLogin"`
	LastPasswordChange int64 `bson:"lastPasswordChange" json:"lastPasswordChange"`
}
