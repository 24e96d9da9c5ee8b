package types

import "time"

type Stats struct {
	Gallery      int64     `json:"gallery"`
	Structure    int64     `json:"structure"`
	Confessions  int64     `json:"confessions"`
	LastActivity time.Time `json:"lastActivity"`
}
