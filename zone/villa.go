package zone

// YardBoundary keeps ground agents in the front yard, clear of the compound
// walls.
var YardBoundary = Zone{Name: "front-yard", MinX: -29, MaxX: 29, MinZ: 9, MaxZ: 29}

// villaZones are the structures, pool and trees of the villa compound. Trees
// get a 1.5m clearance on each side.
var villaZones = []Zone{
	{Name: "pool", MinX: 9.5, MaxX: 22.5, MinZ: 10.5, MaxZ: 19.5},
	{Name: "garage", MinX: -30, MaxX: -14, MinZ: -5, MaxZ: 5},
	{Name: "house", MinX: -12.5, MaxX: 12.5, MinZ: -10, MaxZ: 8.5},
	{Name: "tree-1", MinX: 16.5, MaxX: 19.5, MinZ: -16.5, MaxZ: -13.5},
	{Name: "tree-2", MinX: -19.5, MaxX: -16.5, MinZ: 13.5, MaxZ: 16.5},
	{Name: "tree-3", MinX: -19.5, MaxX: -16.5, MinZ: -13.5, MaxZ: -10.5},
	{Name: "tree-4", MinX: 16.5, MaxX: 19.5, MinZ: 3.5, MaxZ: 6.5},
	{Name: "tree-5", MinX: 4.5, MaxX: 7.5, MinZ: 20.5, MaxZ: 23.5},
	{Name: "tree-6", MinX: -11.5, MaxX: -8.5, MinZ: 16.5, MaxZ: 19.5},
}

var villa = NewSet(YardBoundary, villaZones...)

// Villa returns the shared zone set for the villa's ground agents.
func Villa() *Set {
	return villa
}
