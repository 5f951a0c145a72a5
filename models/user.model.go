package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string `json:"firstName" gorm:"default:''"`
	LastName  string `json:"lastName" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	MobileNo  string `json:"mobileNo" gorm:"default:''"`
	Password  string `json:"password" gorm:"not null"`
	IsAdmin   bool   `json:"isAdmin" gorm:"default:false"`
}
