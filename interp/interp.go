package interp

import (
	"math"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
	"github.com/turtle3d-xyz/go-turtle3d/turtle"
)

// BuildSkeleton interprets the instruction sequence and returns the
// resulting skeleton. It is purely a function of its inputs and may
// run concurrently with other builds sharing the same read-only
// registry.
func BuildSkeleton(instrs []Instruction, reg *Registry, cfg Config) skeleton.Skeleton {
	skel, _ := BuildSkeletonReport(instrs, reg, cfg)
	return skel
}

// BuildSkeletonReport is BuildSkeleton plus a tally of the recoverable
// conditions encountered. No condition is fatal: the skeleton is
// always returned, possibly empty or partial.
func BuildSkeletonReport(instrs []Instruction, reg *Registry, cfg Config) (skeleton.Skeleton, Report) {
	st := turtle.NewState(cfg.InitialWidth)
	stack := make([]turtle.State, 0, 16)
	b := skeleton.NewBuilder(st.Position)
	var report Report
	report.Instructions = len(instrs)

	for _, in := range instrs {
		op, ok := reg.Lookup(in.Sym)
		if !ok {
			report.UnknownSymbols++
			continue
		}

		switch op.Kind {
		case KindDraw, KindMove:
			if len(in.Params) > 1 {
				report.ArityMismatches++
				continue
			}
			length := cfg.DefaultStep
			if len(in.Params) == 1 {
				length = in.Params[0]
			}
			pre := st
			st.Advance(length)
			if cfg.Tropism != nil && cfg.Elasticity > 0 {
				st.Frame = st.Frame.Bend(*cfg.Tropism, cfg.Elasticity)
			}
			if op.Kind == KindDraw {
				b.Draw(pre, st)
			} else if cfg.MoveBreaksStrand {
				b.Break(st.Position)
			} else {
				b.Skip(st.Position)
			}

		case KindYaw, KindPitch, KindRoll:
			angle, ok := angleParam(in.Params, cfg.DefaultAngle)
			if !ok {
				report.ArityMismatches++
				continue
			}
			angle *= op.Sign
			switch op.Kind {
			case KindYaw:
				st.Frame = st.Frame.Yaw(angle)
			case KindPitch:
				st.Frame = st.Frame.Pitch(angle)
			case KindRoll:
				st.Frame = st.Frame.Roll(angle)
			}

		case KindTurnAround:
			if len(in.Params) > 0 {
				report.ArityMismatches++
				continue
			}
			st.Frame = st.Frame.TurnAround()

		case KindAlignVertical:
			if len(in.Params) > 0 {
				report.ArityMismatches++
				continue
			}
			st.Frame = st.Frame.AlignVertical()

		case KindSetWidth:
			// With no parameter the width is kept as-is.
			if len(in.Params) > 1 {
				report.ArityMismatches++
				continue
			}
			if len(in.Params) == 1 {
				st.SetWidth(in.Params[0])
			}

		case KindPush:
			b.Break(st.Position)
			stack = append(stack, st)
			if len(stack) > report.MaxDepth {
				report.MaxDepth = len(stack)
			}

		case KindPop:
			if len(stack) == 0 {
				// Unbalanced bracket: recoverable, cursor unchanged.
				report.UnbalancedPops++
				continue
			}
			st = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			b.Break(st.Position)

		case KindSpawnProp:
			if len(in.Params) > 2 {
				report.ArityMismatches++
				continue
			}
			propID := op.PropID
			scale := 1.0
			if len(in.Params) >= 1 {
				propID = int(in.Params[0])
			}
			if len(in.Params) == 2 {
				scale = in.Params[1]
			}
			b.SpawnProp(st, propID, scale)

		case KindSetColor:
			switch len(in.Params) {
			case 1:
				st.SetGray(in.Params[0])
			case 3:
				st.SetRGB(in.Params[0], in.Params[1], in.Params[2])
			case 4:
				st.SetRGBA(in.Params[0], in.Params[1], in.Params[2], in.Params[3])
			default:
				report.ArityMismatches++
			}

		case KindSetMaterial:
			if len(in.Params) != 1 {
				report.ArityMismatches++
				continue
			}
			st.MaterialID = int(in.Params[0])

		case KindSetUVScale:
			if len(in.Params) != 1 {
				report.ArityMismatches++
				continue
			}
			st.SetUVScale(in.Params[0])
		}
	}

	return b.Finish(), report
}

// angleParam resolves a rotation instruction's angle: a single
// parameter is degrees, no parameter falls back to the configured
// default (already in radians).
func angleParam(params []float64, def float64) (float64, bool) {
	switch len(params) {
	case 0:
		return def, true
	case 1:
		return params[0] * math.Pi / 180, true
	default:
		return 0, false
	}
}
