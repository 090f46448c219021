// component/render.go
package component

import "image/color"

// Shape определяет, как отрисовывается сущность.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeShip
	ShapeBeam
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	Shape     Shape
	HasStroke bool
}
