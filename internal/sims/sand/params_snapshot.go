package sand

import (
	"math"
	"strconv"

	"mad-sand/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Columns", w.w),
				intParam("h", "Rows", w.h),
				intParam("cell", "Cell size", cfg.CellSize),
				int64Param("seed", "Seed", cfg.Seed),
				int64Param("ticks", "Ticks", int64(w.ticks)),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				stringParam("brush_material", "Material", w.brush.Material.String()),
				intParam("brush_radius", "Brush radius", w.brush.Radius),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				boolParam("fast", "Fast mode", w.fast),
				intParam("fast_substeps", "Fast substeps", cfg.FastSubsteps),
				floatParam("liquid_spread_chance", "Liquid spread chance", cfg.LiquidSpreadChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: MinBrushRadius, Max: MaxBrushRadius, HasMin: true, HasMax: true},
		{Key: "fast_substeps", Label: "Fast substeps", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxFastSubsteps, HasMin: true, HasMax: true},
		{Key: "liquid_spread_chance", Label: "Spread chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		w.brush.Radius = clampRadius(value)
	case "fast_substeps":
		if value < 1 {
			value = 1
		}
		if value > maxFastSubsteps {
			value = maxFastSubsteps
		}
		w.cfg.FastSubsteps = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamping to [0,1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "liquid_spread_chance":
		w.cfg.LiquidSpreadChance = clamp01(value)
		w.rules.spreadChance = w.cfg.LiquidSpreadChance
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
