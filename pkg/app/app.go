// Package app wires the script engine, field sampling, and surface
// extraction into one pipeline. Its Result type is the hand-off
// contract for external renderers: the mesh buffers plus the grid
// dimensions they need for camera framing. The package owns no
// graphics state.
package app

import (
	"fmt"
	"log"

	"github.com/maku693/3d-sdf-surface-nets/pkg/engine"
	"github.com/maku693/3d-sdf-surface-nets/pkg/field"
	"github.com/maku693/3d-sdf-surface-nets/pkg/mesh"
	"github.com/maku693/3d-sdf-surface-nets/pkg/surfacenets"
)

// DefaultResolution is the grid resolution used when a caller passes 0.
const DefaultResolution = 64

// MeshData is the JSON-serializable mesh sent to a renderer.
type MeshData struct {
	Vertices []float32 `json:"vertices"` // interleaved position + normal
	Indices  []uint32  `json:"indices"`
}

// GridData carries the field dimensions for camera framing and for
// slice-style debug views that read samples by index arithmetic.
type GridData struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Result is the full output of one evaluation.
type Result struct {
	Mesh   *MeshData       `json:"mesh,omitempty"`
	Grid   GridData        `json:"grid"`
	Errors []EvalErrorData `json:"errors"`
}

// App binds the DSL engine to the sampling and extraction pipeline.
type App struct {
	engine *engine.Engine
}

// New creates an App with a fresh engine.
func New() *App {
	return &App{engine: engine.NewEngine()}
}

// Evaluate runs source through the DSL engine, samples the resulting
// scene into a resolution³ field, and extracts the surface mesh.
func (a *App) Evaluate(source string, resolution int) Result {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	result := Result{Errors: []EvalErrorData{}}

	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	m, grid, err := a.extract(sc.Draw, resolution)
	if err != nil {
		log.Printf("extraction error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	result.Grid = grid
	result.Mesh = &MeshData{Vertices: m.Vertices, Indices: m.Indices}
	return result
}

// extract samples via draw and runs the surface-nets pass.
func (a *App) extract(draw func(*field.Field) error, resolution int) (*mesh.Mesh, GridData, error) {
	f, err := field.New(resolution, resolution, resolution)
	if err != nil {
		return nil, GridData{}, fmt.Errorf("allocating field: %w", err)
	}
	if err := draw(f); err != nil {
		return nil, GridData{}, fmt.Errorf("drawing scene: %w", err)
	}
	return surfacenets.Extract(f), GridData{
		Width:  f.Width,
		Height: f.Height,
		Depth:  f.Depth,
	}, nil
}
