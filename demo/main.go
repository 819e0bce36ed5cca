package main

import (
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/vantage/camera"
	"github.com/automoto/vantage/components"
	"github.com/automoto/vantage/config"
	"github.com/automoto/vantage/fonts"
	"github.com/automoto/vantage/levels"
	"github.com/automoto/vantage/systems"
	"github.com/automoto/vantage/systems/factory"
	"github.com/automoto/vantage/tags"
)

const (
	levelWidth  = 2000
	levelHeight = 1200
	targetSpeed = 3.0
	wallDepth   = 16
)

type Game struct {
	ecs  *ecs.ECS
	once sync.Once
}

func (g *Game) Update() error {
	g.once.Do(g.configure)
	g.handleInput()
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background
	screen.Fill(color.Black)
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func (g *Game) configure() {
	g.ecs = ecs.NewECS(donburi.NewWorld())

	g.ecs.AddSystem(g.updateTarget)
	g.ecs.AddSystem(systems.UpdateZoomTweens)
	g.ecs.AddSystem(systems.UpdateCamera)

	g.ecs.AddRenderer(config.Default, systems.DrawSprites)
	g.ecs.AddRenderer(config.Default, systems.DrawDebug)

	spaceEntry := factory.CreateSpace(g.ecs, levelWidth, levelHeight, 16, 16)
	space := components.Space.Get(spaceEntry)
	factory.CreateLevel(g.ecs, levels.Bounds{Width: levelWidth, Height: levelHeight})

	// Solid border walls around the level
	walls := []*resolv.Object{
		resolv.NewObject(0, 0, levelWidth, wallDepth, tags.ResolvSolid),
		resolv.NewObject(0, levelHeight-wallDepth, levelWidth, wallDepth, tags.ResolvSolid),
		resolv.NewObject(0, 0, wallDepth, levelHeight, tags.ResolvSolid),
		resolv.NewObject(levelWidth-wallDepth, 0, wallDepth, levelHeight, tags.ResolvSolid),
	}
	space.Add(walls...)

	// Landmark props so camera motion is visible, spaced on a coarse grid
	marker := ebiten.NewImage(16, 16)
	marker.Fill(color.RGBA{60, 120, 60, 255})
	for y := 200.0; y < levelHeight; y += 200 {
		for x := 200.0; x < levelWidth; x += 200 {
			obj := resolv.NewObject(x, y, 16, 16)
			space.Add(obj)
			factory.CreateProp(g.ecs, obj, marker)
		}
	}

	// The followed target
	img := ebiten.NewImage(32, 32)
	img.Fill(color.White)
	targetObj := resolv.NewObject(levelWidth/2, levelHeight/2, 32, 32, tags.ResolvTarget)
	space.Add(targetObj)
	factory.CreateTarget(g.ecs, targetObj, img)

	cameraEntry := factory.CreateCamera(g.ecs, float64(config.C.Width), float64(config.C.Height))
	cam := components.Camera.Get(cameraEntry).Camera
	cam.Position = mgl64.Vec2{levelWidth/2 + 16, levelHeight/2 + 16}
	cam.Zoom = savedZoom
	cam.Update()
}

// updateTarget moves the followed entity with the arrow keys, sliding along
// solid walls.
func (g *Game) updateTarget(e *ecs.ECS) {
	targetEntry, ok := tags.Target.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(targetEntry)
	vel := components.Velocity.Get(targetEntry)
	sprite := components.Sprite.Get(targetEntry)

	vel.SpeedX, vel.SpeedY = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		vel.SpeedX = -targetSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		vel.SpeedX = targetSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		vel.SpeedY = -targetSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		vel.SpeedY = targetSpeed
	}

	if vel.SpeedX < 0 {
		sprite.FlipX = true
	} else if vel.SpeedX > 0 {
		sprite.FlipX = false
	}

	moveObject(obj.Object, vel.SpeedX, vel.SpeedY)
}

// moveObject moves obj by (dx, dy), stopping at solid walls.
func moveObject(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
	obj.Update()
}

func (g *Game) handleInput() {
	cameraEntry, ok := components.Camera.First(g.ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		config.Debug.Enabled = !config.Debug.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		systems.TriggerScreenShake(g.ecs, config.ScreenShake.Intensity, config.ScreenShake.Duration)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		cam.Rotation -= 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		cam.Rotation += 0.02
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		systems.StartZoomTween(g.ecs, cam.Zoom*math.Pow(1.25, wheelY), 0.25)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pos := cam.MousePosition(camera.Cursor{})
		log.Printf("clicked world position: (%.1f, %.1f)", pos.X(), pos.Y())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		SaveCurrentTuning(cam)
	}
}

func main() {
	fonts.LoadFont(fonts.Debug, goregular.TTF)
	fonts.LoadFontWithSize(fonts.DebugSmall, goregular.TTF, 10)

	// Initialize persistence and load saved camera tuning
	if err := InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := LoadTuning(); err == nil && saved != nil {
		ApplySavedTuning(saved)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("vantage demo")

	if err := ebiten.RunGame(&Game{}); err != nil {
		log.Fatal(err)
	}
}
