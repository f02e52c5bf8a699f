package dashboard

// SurfaceSummary describes one composed surface.
type SurfaceSummary struct {
	Index       int
	Width       int
	Columns     int
	ColumnWidth int
	Commands    int
}

// ProviderSummary describes one provider and its surfaces.
type ProviderSummary struct {
	Name     string
	Surfaces []SurfaceSummary
}

// Commands returns the total number of commands across all surfaces.
func (p ProviderSummary) Commands() int {
	n := 0
	for _, s := range p.Surfaces {
		n += s.Commands
	}
	return n
}

// Summary reports the layout built for every provider.
func (d *Dashboard) Summary() []ProviderSummary {
	out := make([]ProviderSummary, 0, len(d.providers))
	for _, p := range d.providers {
		ps := ProviderSummary{Name: p.Name()}
		for i, s := range p.Surfaces() {
			ss := SurfaceSummary{
				Index:       i,
				Width:       s.Width(),
				Columns:     s.ColumnCount(),
				ColumnWidth: s.ColumnWidth(),
			}
			for _, c := range s.Columns() {
				ss.Commands += c.Len()
			}
			ps.Surfaces = append(ps.Surfaces, ss)
		}
		out = append(out, ps)
	}
	return out
}
