// Package threestones provides a client for playing Three Stones against a remote server over TCP
// script.go implements a player driven by a Lua script
package threestones

import (
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/pkg/errors"
)

const playerTypeName = "threestones.player"

// StepKind is one thing a scripted player does
type StepKind string

const (
	StepPlay StepKind = "play"
	StepQuit StepKind = "quit"
	StepMove StepKind = "move"
)

// Step is a single scripted action. Row and Col are 1-indexed and only set
// on moves.
type Step struct {
	Kind StepKind
	Row  int
	Col  int
}

// Script is the list of actions a scripted player takes, in order
type Script struct {
	Name  string
	Steps []Step
}

// LoadScript runs a Lua file that builds and returns a Player:
//
//	local p = Player.new("opening")
//	p:play()
//	p:move(3, 6)
//	p:quit()
//	return p
func LoadScript(path string) (*Script, error) {
	l := newScriptState()
	if err := lua.LoadFile(l, path, ""); err != nil {
		return nil, errors.Wrap(err, "load lua")
	}
	script, err := runScript(l)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(script.Name) == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return script, nil
}

// LoadScriptString is LoadScript for a script held in memory
func LoadScriptString(name, source string) (*Script, error) {
	l := newScriptState()
	if err := lua.LoadBuffer(l, source, name, "t"); err != nil {
		return nil, errors.Wrap(err, "load lua")
	}
	script, err := runScript(l)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(script.Name) == "" {
		script.Name = name
	}
	return script, nil
}

func newScriptState() *lua.State {
	l := lua.NewState()
	lua.OpenLibraries(l)

	lua.NewMetaTable(l, playerTypeName)
	l.NewTable()
	lua.SetFunctions(l, playerMethods, 0)
	l.SetField(-2, "__index")
	l.Pop(1)

	l.NewTable()
	lua.SetFunctions(l, []lua.RegistryFunction{{Name: "new", Function: playerNew}}, 0)
	l.SetGlobal("Player")
	return l
}

// runScript runs the loaded chunk and takes the Player it returns
func runScript(l *lua.State) (*Script, error) {
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return nil, errors.Wrap(err, "run lua")
	}
	if l.TypeOf(-1) != lua.TypeUserData {
		l.Pop(1)
		return nil, errors.New("script must return a Player")
	}
	ud := l.ToUserData(-1)
	l.Pop(1)
	script, ok := ud.(*Script)
	if !ok || script == nil {
		return nil, errors.New("script returned an invalid Player")
	}
	return script, nil
}

var playerMethods = []lua.RegistryFunction{
	{Name: "play", Function: playerPlay},
	{Name: "quit", Function: playerQuit},
	{Name: "move", Function: playerMove},
}

func playerNew(l *lua.State) int {
	l.PushUserData(&Script{Name: lua.OptString(l, 1, "")})
	lua.SetMetaTableNamed(l, playerTypeName)
	return 1
}

func playerPlay(l *lua.State) int {
	script := checkPlayer(l)
	script.Steps = append(script.Steps, Step{Kind: StepPlay})
	l.PushValue(1)
	return 1
}

func playerQuit(l *lua.State) int {
	script := checkPlayer(l)
	script.Steps = append(script.Steps, Step{Kind: StepQuit})
	l.PushValue(1)
	return 1
}

func playerMove(l *lua.State) int {
	script := checkPlayer(l)
	row := lua.CheckInteger(l, 2)
	col := lua.CheckInteger(l, 3)
	lua.ArgumentCheck(l, row >= 1 && row <= BOARD_SIZE, 2, "row out of range")
	lua.ArgumentCheck(l, col >= 1 && col <= BOARD_SIZE, 3, "column out of range")
	script.Steps = append(script.Steps, Step{Kind: StepMove, Row: row, Col: col})
	l.PushValue(1)
	return 1
}

func checkPlayer(l *lua.State) *Script {
	ud := lua.CheckUserData(l, 1, playerTypeName)
	if script, ok := ud.(*Script); ok && script != nil {
		return script
	}
	lua.ArgumentError(l, 1, "player expected")
	return nil
}

// ScriptPresenter plays the steps of a script in order. Running out of steps
// in the lobby quits and running out in a game is an error.
type ScriptPresenter struct {
	*Renderer
	script *Script
	next   int
}

// NewScriptPresenter creates a presenter for the script
func NewScriptPresenter(script *Script, r *Renderer) *ScriptPresenter {
	return &ScriptPresenter{Renderer: r, script: script}
}

// Connected reports the connection and which script is playing
func (p *ScriptPresenter) Connected(addr string) {
	p.Renderer.Connected(addr)
	p.line(msgScriptPlayer, p.script.Name)
}

// PromptPlayAgain takes the next play or quit step. Moves left over from the
// previous game are spares and get skipped.
func (p *ScriptPresenter) PromptPlayAgain(stats Stats) (bool, error) {
	p.Stats(stats)
	for {
		step, ok := p.take()
		if !ok {
			return false, nil
		}
		switch step.Kind {
		case StepPlay:
			return true, nil
		case StepQuit:
			return false, nil
		case StepMove:
			continue
		default:
			return false, errors.Errorf("script %s step %d: unknown step %q", p.script.Name, p.next, step.Kind)
		}
	}
}

// PromptMove takes the next move step
func (p *ScriptPresenter) PromptMove() (int, int, error) {
	step, ok := p.take()
	if !ok {
		return 0, 0, errors.Wrapf(ErrScriptExhausted, "script %s", p.script.Name)
	}
	if step.Kind != StepMove {
		return 0, 0, errors.Errorf("script %s step %d: expected move, got %s", p.script.Name, p.next, step.Kind)
	}
	return step.Row, step.Col, nil
}

// Remaining returns the steps not yet played
func (p *ScriptPresenter) Remaining() []Step {
	return p.script.Steps[p.next:]
}

func (p *ScriptPresenter) take() (Step, bool) {
	if p.next >= len(p.script.Steps) {
		return Step{}, false
	}
	step := p.script.Steps[p.next]
	p.next++
	return step, true
}

//!--
