package tilegrid

// PlaceObject appends obj to the cell at (x,y) independently of its tile code.
// Returns false (and stores nothing) outside the grid.
func (g *Grid) PlaceObject(x, y int, obj Object) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.index(x, y)
	g.objects[i] = append(g.objects[i], obj)
	return true
}

// ObjectsAt returns the objects placed at (x,y) in placement order, or nil.
// The returned slice must not be modified.
func (g *Grid) ObjectsAt(x, y int) []Object {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.objects[g.index(x, y)]
}

// RemoveObjects clears every object at (x,y) and returns how many were removed.
func (g *Grid) RemoveObjects(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	i := g.index(x, y)
	n := len(g.objects[i])
	delete(g.objects, i)
	return n
}

// ObjectCount returns the total number of placed objects.
func (g *Grid) ObjectCount() int {
	n := 0
	for _, objs := range g.objects {
		n += len(objs)
	}
	return n
}

// SetMeta stores key=value on the cell at (x,y). Writes outside the grid are dropped.
func (g *Grid) SetMeta(x, y int, key, value string) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	m, ok := g.meta[i]
	if !ok {
		m = make(map[string]string)
		g.meta[i] = m
	}
	m[key] = value
}

// Meta returns the value stored under key at (x,y).
func (g *Grid) Meta(x, y int, key string) (string, bool) {
	if !g.InBounds(x, y) {
		return "", false
	}
	v, ok := g.meta[g.index(x, y)][key]
	return v, ok
}

// DeleteMeta removes key from (x,y); an emptied cell releases its map.
func (g *Grid) DeleteMeta(x, y int, key string) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	m, ok := g.meta[i]
	if !ok {
		return
	}
	delete(m, key)
	if len(m) == 0 {
		delete(g.meta, i)
	}
}
