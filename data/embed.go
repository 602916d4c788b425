package data

import (
	_ "embed"
)

//go:embed units/default_units.json
var DefaultUnits []byte
