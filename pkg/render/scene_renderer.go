package render

import (
	"image/color"
	"math"

	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	shipTipHeight = 12
	shipTipHalf   = 12
	shipTipBase   = 4
	eyeRadius     = 3
	eyeOffsetY    = 10
	leftEyeX      = 12
	rightEyeX     = 32
	alienRadius   = 6
)

// Star one point of the static background.
type Star struct {
	X, Y float32
	Far  bool
}

// NewStarfield scatters count stars over a width x height surface.
func NewStarfield(rng *utils.PRNGService, count, width, height int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:   float32(rng.Range(0, float64(width))),
			Y:   float32(rng.Range(0, float64(height))),
			Far: rng.Intn(3) > 0,
		}
	}
	return stars
}

// SceneRenderer draws the playfield: background, ship, bullets and aliens.
type SceneRenderer struct {
	colors   SceneColors
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	stars    []Star
	starsImg *ebiten.Image // Pre-rendered background
}

func NewSceneRenderer(colors SceneColors, stars []Star, screenWidth, screenHeight int) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &SceneRenderer{
		colors:   colors,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 8),
		stars:    stars,
		starsImg: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderBackground()
	return r
}

// renderBackground draws the starfield once.
func (r *SceneRenderer) renderBackground() {
	r.starsImg.Fill(r.colors.Background)
	far := DarkenColor(r.colors.Star)
	for _, s := range r.stars {
		clr, size := r.colors.Star, float32(2)
		if s.Far {
			clr, size = far, 1
		}
		vector.DrawFilledRect(r.starsImg, s.X, s.Y, size, size, clr, false)
	}
}

// Draw renders the whole world. It only reads state.
func (r *SceneRenderer) Draw(screen *ebiten.Image, world *entity.World) {
	screen.DrawImage(r.starsImg, nil)

	r.drawPlayer(screen, world.Player)
	for _, b := range world.Bullets {
		fillRect(screen, b.Rect, r.colors.Bullet)
	}
	for _, a := range world.Aliens {
		if a.Alive {
			r.drawAlien(screen, a)
		}
	}
}

func (r *SceneRenderer) drawPlayer(screen *ebiten.Image, p *component.Player) {
	fillRect(screen, p.Rect, r.colors.Player)

	cx, top := float32(p.CenterX()), float32(p.Top())
	path := vector.Path{}
	path.MoveTo(cx, top-shipTipHeight)
	path.LineTo(cx-shipTipHalf, top+shipTipBase)
	path.LineTo(cx+shipTipHalf, top+shipTipBase)
	path.Close()

	r.fillPath(screen, &path, r.colors.Player)
}

func (r *SceneRenderer) drawAlien(screen *ebiten.Image, a *component.Alien) {
	r.fillPath(screen, roundedRect(a.Rect, alienRadius), r.colors.Alien)
	x, y := float32(a.X), float32(a.Y)
	vector.DrawFilledCircle(screen, x+leftEyeX, y+eyeOffsetY, eyeRadius, r.colors.AlienEye, true)
	vector.DrawFilledCircle(screen, x+rightEyeX, y+eyeOffsetY, eyeRadius, r.colors.AlienEye, true)
}

// fillPath заливает контур одним цветом.
func (r *SceneRenderer) fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// roundedRect строит контур прямоугольника со скругленными углами радиуса radius.
func roundedRect(rect component.Rect, radius float32) *vector.Path {
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.W), float32(rect.H)
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}

	path := &vector.Path{}
	path.MoveTo(x+radius, y)
	path.Arc(x+w-radius, y+radius, radius, -math.Pi/2, 0, vector.Clockwise)
	path.Arc(x+w-radius, y+h-radius, radius, 0, math.Pi/2, vector.Clockwise)
	path.Arc(x+radius, y+h-radius, radius, math.Pi/2, math.Pi, vector.Clockwise)
	path.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
	return path
}

func fillRect(dst *ebiten.Image, rect component.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}
