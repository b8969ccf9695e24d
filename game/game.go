package game

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"snake-matrix/game/entity"
	"snake-matrix/game/manager"
	"snake-matrix/game/types"

	"github.com/google/uuid"
)

// StartApple is where the first apple of every session sits, away from the
// snake so the opening move cannot score by accident.
var StartApple = types.Point{X: 3, Y: 3}

// State is the phase the game loop is in.
type State int

const (
	WaitingToStart State = iota
	Running
	GameOverLost
	GameOverWon
)

func (s State) String() string {
	switch s {
	case WaitingToStart:
		return "waiting"
	case Running:
		return "running"
	case GameOverLost:
		return "lost"
	case GameOverWon:
		return "won"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Display is the LED matrix.
type Display interface {
	Clear()
	SetPixel(p types.Point, brightness uint8)
	// Scroll shows text and blocks until it has gone by.
	Scroll(text string)
	// Attract starts the idle prompt if it is not already showing.
	Attract()
	StopAttract()
}

// Input is the button and the accelerometer.
type Input interface {
	StartPressed() bool
	Tilt() (x, y int32)
}

type Sleeper interface {
	Sleep(d time.Duration)
}

type Config struct {
	TickDelay time.Duration
	IdleDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		TickDelay: 900 * time.Millisecond,
		IdleDelay: 20 * time.Millisecond,
	}
}

// Frame is what the last tick put on the display.
type Frame struct {
	Snake []types.Point
	Apple types.Point
}

type Game struct {
	UUID        string
	State       State
	Snake       *entity.Snake
	Apple       types.Point
	Direction   types.Direction
	StartTime   time.Time
	Frame       Frame
	LastOutcome manager.Outcome

	cfg     Config
	display Display
	input   Input
	sleeper Sleeper
	now     func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	directionMgr *manager.DirectionManager
	stateMgr     *manager.StateManager
	statsMgr     *manager.StatsManager
}

func NewGame(cfg Config, display Display, input Input, sleeper Sleeper, rng manager.Random, store manager.Store) *Game {
	collisionMgr := manager.NewCollisionManager()
	return &Game{
		State:        WaitingToStart,
		Snake:        entity.NewSnake(entity.StartPosition),
		Apple:        StartApple,
		Direction:    entity.StartDirection,
		cfg:          cfg,
		display:      display,
		input:        input,
		sleeper:      sleeper,
		now:          time.Now,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rng, collisionMgr),
		directionMgr: manager.NewDirectionManager(),
		stateMgr:     manager.NewStateManager(store),
		statsMgr:     manager.NewStatsManager(store),
	}
}

// Step advances the loop by one transition: an idle poll, a tick or the end
// of session report.
func (g *Game) Step() {
	switch g.State {
	case WaitingToStart:
		g.waitForStart()
	case Running:
		g.Tick()
	case GameOverLost, GameOverWon:
		g.finish()
	}
}

// Reset starts a fresh session.
func (g *Game) Reset() {
	g.UUID = uuid.NewString()
	g.StartTime = g.now()
	g.foodMgr.Seed(uint64(g.StartTime.UnixNano()))

	g.Snake.Reset(entity.StartPosition)
	g.Direction = entity.StartDirection
	g.Apple = StartApple
	g.Frame = Frame{}
	g.State = Running
}

func (g *Game) waitForStart() {
	if !g.input.StartPressed() {
		g.display.Attract()
		g.sleeper.Sleep(g.cfg.IdleDelay)
		return
	}

	g.display.StopAttract()
	g.Reset()
	log.Printf("session %s started", g.UUID)
}

// Tick runs one frame of a running session.
func (g *Game) Tick() {
	if g.State != Running {
		return
	}

	x, y := g.input.Tilt()
	if dir, ok := g.directionMgr.Resolve(g.Direction, x, y); ok {
		g.Direction = dir
	}

	g.Snake.Move(g.Direction)

	head := g.Snake.Head()
	if !g.collisionMgr.InBounds(head) || g.collisionMgr.HeadCollidesWithBody(g.Snake) {
		g.State = GameOverLost
		return
	}

	tail := g.Snake.Len
	if g.collisionMgr.HeadOnApple(head, g.Apple) {
		g.Snake.Extend()
		apple, err := g.foodMgr.PlaceApple(g.Snake)
		if errors.Is(err, manager.ErrExhausted) {
			g.State = GameOverWon
		} else {
			g.Apple = apple
		}
		// The new segment sits on the old tail until the next move, so
		// this frame still shows the length from before the apple.
		tail = g.Snake.Len - 1
	}

	g.render(tail)
	g.sleeper.Sleep(g.cfg.TickDelay)
}

func (g *Game) render(tail int) {
	g.display.Clear()

	segments := g.Snake.Body[:tail+1]
	for _, p := range segments {
		g.display.SetPixel(p, types.SnakeBrightness)
	}
	g.display.SetPixel(g.Apple, types.AppleBrightness)

	g.Frame = Frame{
		Snake: append([]types.Point(nil), segments...),
		Apple: g.Apple,
	}
}

func (g *Game) finish() {
	score := g.Snake.Len
	won := g.State == GameOverWon
	g.State = WaitingToStart

	if score == 0 {
		g.LastOutcome = manager.OutcomeDiscarded
		g.display.Clear()
		return
	}

	outcome, err := g.stateMgr.Report(score)
	if err != nil {
		log.Printf("session %s: %v", g.UUID, err)
	}
	g.LastOutcome = outcome

	end := g.now()
	log.Printf("session %s ended: score=%d won=%t outcome=%s duration=%s",
		g.UUID, score, won, outcome, end.Sub(g.StartTime).Round(time.Second))

	err = g.statsMgr.Record(manager.SessionRecord{
		ID:        g.UUID,
		Score:     score,
		Won:       won,
		Outcome:   outcome.String(),
		StartTime: g.StartTime,
		EndTime:   end,
	})
	if err != nil {
		log.Printf("session %s: %v", g.UUID, err)
	}

	if outcome == manager.OutcomeNewHighScore {
		g.display.Scroll("High Score")
	} else {
		g.display.Scroll("Game Over")
	}
	g.display.Scroll("Score: ")
	g.display.Scroll(strconv.Itoa(score))
}
