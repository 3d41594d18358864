package engine

import (
	"fmt"

	"github.com/spaghettifunk/hexil/engine/core"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete and a render context exists
	EngineStageInitialized
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine released everything it owned
	EngineStageShutdown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageShuttingDown:
		return "shutting down"
	case EngineStageShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

type Engine struct {
	currentStage Stage
	config       *ApplicationConfig
	builder      *selection.Builder
	context      *selection.RenderContext
}

// New prepares an engine that selects its GPU through driver. The extra
// options are appended after the ones derived from cfg.
func New(cfg *ApplicationConfig, driver selection.Driver, options ...selection.BuilderOption) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultApplicationConfig()
	}
	if driver == nil {
		return nil, fmt.Errorf("engine needs a renderer driver")
	}

	opts := []selection.BuilderOption{
		selection.WithApplication(cfg.Application.Name, cfg.Application.Version),
		selection.WithValidation(cfg.Renderer.Validation),
	}
	opts = append(opts, options...)

	return &Engine{
		currentStage: EngineStageUninitialized,
		config:       cfg,
		builder:      selection.NewBuilder(driver, opts...),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine cannot be initialized while %s", e.currentStage)
	}
	e.currentStage = EngineStageInitializing

	core.SetLogLevel(e.config.Log.Level)
	core.LogInfo("Starting %s %s with the %s power profile.", e.config.Application.Name, e.config.Application.Version, e.config.Renderer.PowerProfile)

	clock := core.NewClock()
	clock.Start()
	rc, err := e.builder.Build(e.config.Renderer.PowerProfile)
	clock.Stop()
	if err != nil {
		e.currentStage = EngineStageUninitialized
		return err
	}
	e.context = rc
	e.currentStage = EngineStageInitialized

	device := rc.Device()
	core.LogInfo("[%s] Rendering on '%s' (%s), graphics family %d, transfer family %d, ready in %s.",
		rc.ID(), device.Name(), device.Type(), rc.GraphicsQueue().Family(), rc.TransferQueue().Family(), clock.Elapsed())
	return nil
}

// Context returns the render context, nil before Initialize succeeds.
func (e *Engine) Context() *selection.RenderContext {
	return e.context
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	if e.context != nil {
		e.context.Destroy()
		e.context = nil
	}
	e.currentStage = EngineStageShutdown
	return nil
}
