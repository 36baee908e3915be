package sim

import (
	"github.com/chewxy/math32"
	"github.com/gekko3d/assetplacer/core"
)

// SpatialHashGrid buckets collider RIDs by the grid cells their world bounds
// overlap.
type SpatialHashGrid struct {
	cellSize float32
	cells    map[uint64][]core.RID
}

func NewSpatialHashGrid(cellSize float32) *SpatialHashGrid {
	if cellSize <= 0 {
		cellSize = 2
	}
	return &SpatialHashGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]core.RID),
	}
}

func (grid *SpatialHashGrid) CellSize() float32 { return grid.cellSize }

func (grid *SpatialHashGrid) Clear() {
	clear(grid.cells)
}

func (grid *SpatialHashGrid) Insert(id core.RID, aabb core.AABB) {
	minX, maxX := grid.getCellIndex(aabb.Min.X()), grid.getCellIndex(aabb.Max.X())
	minY, maxY := grid.getCellIndex(aabb.Min.Y()), grid.getCellIndex(aabb.Max.Y())
	minZ, maxZ := grid.getCellIndex(aabb.Min.Z()), grid.getCellIndex(aabb.Max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				grid.cells[key] = append(grid.cells[key], id)
			}
		}
	}
}

// QueryAABB returns every RID in a cell the box touches, each once.
func (grid *SpatialHashGrid) QueryAABB(aabb core.AABB) []core.RID {
	unique := make(map[core.RID]struct{})
	return grid.queryInto(aabb, unique, nil)
}

func (grid *SpatialHashGrid) queryInto(aabb core.AABB, unique map[core.RID]struct{}, results []core.RID) []core.RID {
	minX, maxX := grid.getCellIndex(aabb.Min.X()), grid.getCellIndex(aabb.Max.X())
	minY, maxY := grid.getCellIndex(aabb.Min.Y()), grid.getCellIndex(aabb.Max.Y())
	minZ, maxZ := grid.getCellIndex(aabb.Min.Z()), grid.getCellIndex(aabb.Max.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := grid.hashKey(x, y, z)
				for _, id := range grid.cells[key] {
					if _, ok := unique[id]; !ok {
						unique[id] = struct{}{}
						results = append(results, id)
					}
				}
			}
		}
	}
	return results
}

func (grid *SpatialHashGrid) getCellIndex(pos float32) int {
	return int(math32.Floor(pos / grid.cellSize))
}

func (grid *SpatialHashGrid) hashKey(x, y, z int) uint64 {
	const p1 = 73856093
	const p2 = 19349663
	const p3 = 83492791
	return uint64(x*p1 ^ y*p2 ^ z*p3)
}
