package models

// Prize is a loot item with a finite stock
type Prize struct {
	// ID is the unique identifier for the prize
	ID string `json:"id"`

	// Name is the display name of the prize
	Name string `json:"name"`

	// Qty is the total quantity granted so far
	Qty int `json:"qty"`

	// Remaining is the number of undistributed units, 0 <= Remaining <= Qty
	Remaining int `json:"remaining"`
}

// InStock reports whether the prize can still be awarded
func (p *Prize) InStock() bool {
	return p.Remaining > 0
}
