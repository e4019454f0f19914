package domain

// Month-end instants for one request, already rendered.
// Values are ordered from the first to the last requested month.
type MonthEnds struct {
	Timezone string
	Format   string
	Values   []string
}
