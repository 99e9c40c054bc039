package bitcube

// Predefined moves for convenience.
//
// Example:
//
//	c := bitcube.Solved().Apply(bitcube.R, bitcube.U, bitcube.RPrime, bitcube.UPrime)
var (
	// Up face moves
	U      = Move{Side: SideU, Turn: CW}     // Up clockwise
	UPrime = Move{Side: SideU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Side: SideU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Side: SideD, Turn: CW}
	DPrime = Move{Side: SideD, Turn: CCW}
	D2     = Move{Side: SideD, Turn: Double}

	// Left face moves
	L      = Move{Side: SideL, Turn: CW}
	LPrime = Move{Side: SideL, Turn: CCW}
	L2     = Move{Side: SideL, Turn: Double}

	// Right face moves
	R      = Move{Side: SideR, Turn: CW}
	RPrime = Move{Side: SideR, Turn: CCW}
	R2     = Move{Side: SideR, Turn: Double}

	// Front face moves
	F      = Move{Side: SideF, Turn: CW}
	FPrime = Move{Side: SideF, Turn: CCW}
	F2     = Move{Side: SideF, Turn: Double}

	// Back face moves
	B      = Move{Side: SideB, Turn: CW}
	BPrime = Move{Side: SideB, Turn: CCW}
	B2     = Move{Side: SideB, Turn: Double}
)

// Sexy move: R U R' U'. Six repetitions return to the start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
