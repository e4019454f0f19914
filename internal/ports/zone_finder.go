package ports

//go:generate mockgen -source=zone_finder.go -destination=../mocks/ports/zone_finder.go -package=mocks

// Point lookup against a timezone-boundary dataset.
// Satisfied by tzf.F.
type ZoneFinder interface {
	// Return every timezone whose boundary contains the point, in a stable order.
	GetTimezoneNames(lng float64, lat float64) ([]string, error)
}
