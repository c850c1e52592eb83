package model

import (
	"math/rand"

	"github.com/cellgrid/go-life/utils"
)

// Seed is a mutable staging grid for assembling an initial configuration.
// Build hands the cells to NewBoard, which copies them, so a Seed never
// aliases the storage of any Board it produced and stays reusable.
type Seed struct {
	width  int
	height int
	cells  [][]bool
}

// NewSeed returns a blank staging grid. Non-positive dimensions yield an
// empty Seed whose Build fails with ErrInvalidDimensions.
func NewSeed(width, height int) *Seed {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Seed{width: width, height: height, cells: cells}
}

// SeedFrom returns a staging copy of an existing board, the starting point
// for injecting life into a running game.
func SeedFrom(b *Board) *Seed {
	return &Seed{width: b.GetWidth(), height: b.GetHeight(), cells: b.Snapshot()}
}

// GetWidth returns the number of columns.
func (s *Seed) GetWidth() int {
	return s.width
}

// GetHeight returns the number of rows.
func (s *Seed) GetHeight() int {
	return s.height
}

// Set sets a cell to alive (true) or dead (false). Out-of-range coordinates
// are ignored, so pattern stamps may safely hang over the edges.
func (s *Seed) Set(x, y int, alive bool) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.cells[y][x] = alive
	}
}

// Get returns the state of a cell, or false out of range.
func (s *Seed) Get(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y][x]
}

// Clear resets every cell to dead.
func (s *Seed) Clear() {
	for y := range s.height {
		for x := range s.width {
			s.cells[y][x] = false
		}
	}
}

// AddGlider stamps a glider pattern at the specified position.
func (s *Seed) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			s.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator stamps a blinker oscillator pattern.
func (s *Seed) AddOscillator(startX, startY int) {
	s.Set(startX, startY, true)
	s.Set(startX+1, startY, true)
	s.Set(startX+2, startY, true)
}

// AddBlock stamps a 2x2 still-life block.
func (s *Seed) AddBlock(startX, startY int) {
	s.Set(startX, startY, true)
	s.Set(startX+1, startY, true)
	s.Set(startX, startY+1, true)
	s.Set(startX+1, startY+1, true)
}

// Randomize fills the whole grid with random living cells at the given
// density, overwriting any previous content.
func (s *Seed) Randomize(density float64) {
	for y := range s.height {
		for x := range s.width {
			s.Set(x, y, rand.Float64() < density)
		}
	}
}

// InjectRandomLife turns up to count random cells alive to break stagnation.
func (s *Seed) InjectRandomLife(count int) {
	if s.width == 0 || s.height == 0 {
		return
	}
	for i := 0; i < count; i++ {
		s.Set(rand.Intn(s.width), rand.Intn(s.height), true)
	}
}

// ScatterPatterns clears the grid, lays down a random soup, and stamps
// gliders and oscillators on top where the grid is big enough for them.
func (s *Seed) ScatterPatterns(config utils.Config) {
	s.Clear()

	// Soup first so the stamps survive it.
	s.Randomize(config.RandomDensity)

	if s.width >= 10 && s.height >= 10 {
		s.AddGlider(5, 5)
		if s.width >= 20 && s.height >= 15 {
			s.AddGlider(s.width-8, 5)
		}

		s.AddOscillator(s.width/4, s.height/4)
		if s.width >= 30 {
			s.AddOscillator(3*s.width/4, 3*s.height/4)
		}
	}
}

// Build copies the staged cells into a new Board with the given wrap flag.
func (s *Seed) Build(wrap bool) (*Board, error) {
	return NewBoard(s.cells, wrap)
}
