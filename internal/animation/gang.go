package animation

// gangs maps a parameter index to the parameters edited in lockstep with it.
type gangs map[int][]int

type gangSource interface {
	Gangs() [][]int
}

func newGangs(src gangSource) gangs {
	g := gangs{}
	for _, members := range src.Gangs() {
		for _, i := range members {
			for _, j := range members {
				if i != j {
					g[i] = append(g[i], j)
				}
			}
		}
	}
	return g
}

func (g gangs) siblings(i int) []int {
	return g[i]
}

// GangedProperties returns the properties that mirror structural edits made
// to parameter i.
func (m *Model) GangedProperties(i int) []string {
	var names []string
	for _, j := range m.gangs.siblings(i) {
		if p, ok := m.reg.At(j); ok {
			names = append(names, p.PropertyName)
		}
	}
	return names
}

// withGang returns i followed by its siblings.
func (m *Model) withGang(i int) []int {
	return append([]int{i}, m.gangs.siblings(i)...)
}
