package parameter

// Maze layout symbols
const (
	SymbolWall        = '#'
	SymbolDoor        = '-' // ghost house door: solid for collision, cosmetic for render
	SymbolOpen        = ' '
	SymbolPellet      = '.'
	SymbolSuperPellet = 'o'
)

// WrapMargin is the horizontal band at each map edge beyond which a
// position teleports to the opposite tunnel mouth. Vertical wrap does
// not exist: the reference layouts only tunnel left-right.
const WrapMargin = 0.01
