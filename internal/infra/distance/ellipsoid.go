package distance

// Ellipsoid models selectable earth models for the travel-distance metric.
// Only the identifier and display name matter here; the distance math lives
// with the solver.
type Ellipsoid struct {
	Reference string
	Name      string
	MajorAxis float64
	MinorAxis float64
}

var ellipsoids = []Ellipsoid{
	{"LEGACY", "Euclidean metric (1 unit equals to 10 meters)", 0, 0},
	{"WGS84", "WGS-84 (GPS)", 6378137.0, 6356752.3142},
	{"GRS80", "GRS-80", 6378137.0, 6356752.3141},
	{"Airy1830", "Airy (1830)", 6377563.396, 6356256.909},
	{"Intl1924", "Int'l 1924", 6378388.0, 6356911.946},
	{"Clarke1880", "Clarke (1880)", 6378249.145, 6356514.86955},
	{"GRS67", "GRS-67", 6378160.0, 6356774.719},
}

// ByReference resolves a configured ellipsoid identifier, falling back to
// LEGACY for unknown values.
func ByReference(ref string) Ellipsoid {
	for _, e := range ellipsoids {
		if e.Reference == ref {
			return e
		}
	}
	return ellipsoids[0]
}
