package models

import "time"

type User struct {
	UserID    string    `bson:"userid,omitempty" json:"userid"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"` // admin, manager
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
