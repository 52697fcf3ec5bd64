package renderer

import (
	"fmt"
	"strings"

	"github.com/ivlev/keyframes/internal/keyframe"
)

// BuildExpression renders a keyframe animation as a piecewise FFmpeg
// expression over the frame variable (usually "n"). Linear segments become
// straight ramps, discrete segments hold the previous value, and every
// other curve is approximated by steps sampled every `step` frames.
func BuildExpression(keys []keyframe.Keyframe, variable string, step int) string {
	if len(keys) == 0 {
		return ""
	}
	if len(keys) == 1 {
		return fmt.Sprintf("%.6f", keys[0].Value)
	}
	if step < 1 {
		step = 1
	}

	var pieces []string
	pieces = append(pieces, fmt.Sprintf("if(lt(%s,%d),%.6f", variable, keys[0].Position, keys[0].Value))
	for i := 1; i < len(keys); i++ {
		prev, next := keys[i-1], keys[i]
		switch {
		case next.Type == keyframe.Discrete:
			pieces = append(pieces, fmt.Sprintf("if(lt(%s,%d),%.6f", variable, next.Position, prev.Value))
		case next.Type == keyframe.Linear:
			// if(lt(n,end),start+(n-startFrame)/(end-startFrame)*(endValue-startValue),...)
			pieces = append(pieces, fmt.Sprintf("if(lt(%s,%d),%.6f+(%s-%d)/%d*(%.6f-%.6f)",
				variable, next.Position, prev.Value, variable, prev.Position,
				next.Position-prev.Position, next.Value, prev.Value))
		default:
			for f := prev.Position; f < next.Position; f += step {
				end := min(f+step, next.Position)
				pieces = append(pieces, fmt.Sprintf("if(lt(%s,%d),%.6f",
					variable, end, InterpolateKeyframes(keys, float64(f))))
			}
		}
	}

	// Close all if statements and add final value
	expr := strings.Join(pieces, ",")
	expr += fmt.Sprintf(",%.6f", keys[len(keys)-1].Value)
	expr += strings.Repeat(")", len(pieces))
	return expr
}
