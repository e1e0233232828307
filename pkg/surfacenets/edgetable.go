package surfacenets

// cubeEdges lists the 12 edges of the unit cube as pairs of corner
// indices. Corner j sits at local coordinate (j&1, (j>>1)&1, (j>>2)&1).
var cubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {1, 3}, {2, 3},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{4, 5}, {4, 6}, {5, 7}, {6, 7},
}

// edgeTable maps an 8-bit corner-sign pattern to the 12-bit set of cube
// edges whose endpoints lie on opposite sides of the surface. Built once
// at process start and never mutated.
var edgeTable = buildEdgeTable()

func buildEdgeTable() [256]uint16 {
	var table [256]uint16
	for mask := 0; mask < 256; mask++ {
		var edges uint16
		for j, e := range cubeEdges {
			if (mask>>e[0])&1 != (mask>>e[1])&1 {
				edges |= 1 << uint(j)
			}
		}
		table[mask] = edges
	}
	return table
}
