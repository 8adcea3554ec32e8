package server

import "time"

const (
	tickRate  = 1 // simulated seconds per second
	writeWait = 10 * time.Second
)
