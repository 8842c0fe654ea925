package core

// Color represents the color of a screen cell. The platform maps each value
// to a terminal style.
type Color uint8

// Runner palette. ColorDefault is the terminal's own color, used for text.
const (
	ColorDefault Color = iota
	ColorSky           // #f7f7f7 background
	ColorInk           // #535353 dino, cacti and ground
	ColorCloud         // #d3d3d3 clouds
	ColorEye           // #ffffff dino eye
)
