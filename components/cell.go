package components

// GridCell is one bucket of the simulation grid.
// CX/CY are only meaningful while Occupied is set; FlowX/FlowY only while it is not.
type GridCell struct {
	Occupied   bool
	CX, CY     float32 // centroid of the target points mapped into this cell
	PointCount int32

	FlowX, FlowY float32 // unit vector toward the nearest occupied cell, or zero
	Dist         int32   // flood-fill depth in cells, -1 if unreached

	AgentCount int32 // agents in this cell this frame
}

// Reset clears target and flow state. AgentCount is owned by the spatial index.
func (c *GridCell) Reset() {
	c.Occupied = false
	c.CX, c.CY = 0, 0
	c.PointCount = 0
	c.FlowX, c.FlowY = 0, 0
	c.Dist = -1
}
