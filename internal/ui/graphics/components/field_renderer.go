package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
	}
}

func (fr *FieldRenderer) FieldSize(gridSize int32) int {
	return int(gridSize) * fr.CellSize
}

func (fr *FieldRenderer) DrawGrid(screen *ebiten.Image, gridSize int32) {
	side := float32(fr.FieldSize(gridSize))
	ox, oy := float32(fr.OffsetX), float32(fr.OffsetY)

	for i := int32(0); i <= gridSize; i++ {
		pos := float32(int(i) * fr.CellSize)
		vector.StrokeLine(screen, ox, oy+pos, ox+side, oy+pos, 1, types.ColorGrid, false)
		vector.StrokeLine(screen, ox+pos, oy, ox+pos, oy+side, 1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	fr.fillCell(screen, food, types.ColorFood)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, cells []domain.Coord) {
	for i, cell := range cells {
		cellColor := types.ColorSnake
		if i == len(cells)-1 {
			cellColor = types.Darken(types.ColorSnake, 0.7)
		}
		fr.fillCell(screen, cell, cellColor)
	}
}

func (fr *FieldRenderer) fillCell(screen *ebiten.Image, c domain.Coord, clr color.Color) {
	x := float32(fr.OffsetX + int(c.X)*fr.CellSize)
	y := float32(fr.OffsetY + int(c.Y)*fr.CellSize)
	size := float32(fr.CellSize)
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}
