package models

import "gorm.io/gorm"

type StructureMember struct {
	gorm.Model

	Position string `gorm:"column:position;not null"`
	Name     string `gorm:"column:name;not null"`
	Icon     string `gorm:"column:icon"`
	Level    string `gorm:"column:level"`
}
