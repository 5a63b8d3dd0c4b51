// Package clock reloj inyectable para los casos de uso que dependen de la hora actual.
package clock

import "time"

// Local reloj del sistema en una zona horaria fija.
type Local struct {
	loc *time.Location
}

// New construye el reloj. loc nil equivale a UTC.
func New(loc *time.Location) *Local {
	if loc == nil {
		loc = time.UTC
	}
	return &Local{loc: loc}
}

// Now hora actual en la zona del reloj.
func (c *Local) Now() time.Time { return time.Now().In(c.loc) }

// Location zona horaria del reloj.
func (c *Local) Location() *time.Location { return c.loc }
