package shapes

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is returned when path data does not conform to the SVG path grammar. No partial result is made available.
var ErrBadPath = errors.New("shapes: bad path data")

func parseError(i int, msg string) error {
	return fmt.Errorf("%w: %s at position %d", ErrBadPath, msg, i)
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte, i *int) (float64, error) {
	*i += skipCommaWhitespace(path[*i:])
	f, n := strconv.ParseFloat(path[*i:])
	if n == 0 {
		return 0.0, parseError(*i, "expected number")
	}
	*i += n
	return f, nil
}

func parseFlag(path []byte, i *int) (bool, error) {
	f, err := parseNum(path, i)
	if err != nil {
		return false, err
	}
	if f != 0.0 && f != 1.0 {
		return false, parseError(*i, "expected 0 or 1 arc flag")
	}
	return f == 1.0, nil
}

// MustParsePath is ParsePath but panics on error.
func MustParsePath(data string) *MultiPath {
	mp, err := ParsePath(data)
	if err != nil {
		panic(err)
	}
	return mp
}

// ParsePath parses SVG path data into a multipath with one subpath per M command or Z continuation. Malformed data returns ErrBadPath with no partial result.
func ParsePath(data string) (*MultiPath, error) {
	builder := &Builder{}
	if err := ParsePathTo(data, builder); err != nil {
		return nil, err
	}
	return &MultiPath{paths: builder.Paths()}, nil
}

// ParsePathTo parses SVG path data and emits the drawing commands to the sink in the order they appear. The sink may have received calls for a prefix of the data when an error is returned; the caller discards that partial state.
//
// Commands are the letters MLHVCSQTAZ with lowercase meaning coordinates relative to the current point, numbers are separated by any amount of whitespace and commas, a command letter persists over subsequent coordinate groups (M continuing as L), and S/T reflect the previous C/S resp. Q/T control point through the current point.
func ParsePathTo(data string, sink PathSink) error {
	path := []byte(data)

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // last control point for S/T reflection
	x, y := 0.0, 0.0     // current point
	x0, y0 := 0.0, 0.0   // first point of the current subpath

	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if i == len(path) {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return parseError(i, "expected command")
		} else if cmd == 'Z' || cmd == 'z' {
			return parseError(i, "coordinates after close")
		}
		switch cmd {
		case 'M', 'm':
			a, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			b, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 'm' {
				a += x
				b += y
			}
			sink.MoveTo(Point{a, b})
			x, y = a, b
			x0, y0 = a, b
			// subsequent coordinate pairs are implicit line-tos
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			sink.Close()
			x, y = x0, y0
		case 'L', 'l':
			a, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			b, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 'l' {
				a += x
				b += y
			}
			sink.LineTo(Point{a, b})
			x, y = a, b
		case 'H', 'h':
			a, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 'h' {
				a += x
			}
			sink.LineTo(Point{a, y})
			x = a
		case 'V', 'v':
			b, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 'v' {
				b += y
			}
			sink.LineTo(Point{x, b})
			y = b
		case 'C', 'c':
			var nums [6]float64
			for j := range nums {
				f, err := parseNum(path, &i)
				if err != nil {
					return err
				}
				nums[j] = f
			}
			if cmd == 'c' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
				nums[4] += x
				nums[5] += y
			}
			sink.CubeTo(Point{nums[0], nums[1]}, Point{nums[2], nums[3]}, Point{nums[4], nums[5]})
			cpx, cpy = nums[2], nums[3]
			x, y = nums[4], nums[5]
		case 'S', 's':
			var nums [4]float64
			for j := range nums {
				f, err := parseNum(path, &i)
				if err != nil {
					return err
				}
				nums[j] = f
			}
			if cmd == 's' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			sink.CubeTo(Point{a, b}, Point{nums[0], nums[1]}, Point{nums[2], nums[3]})
			cpx, cpy = nums[0], nums[1]
			x, y = nums[2], nums[3]
		case 'Q', 'q':
			var nums [4]float64
			for j := range nums {
				f, err := parseNum(path, &i)
				if err != nil {
					return err
				}
				nums[j] = f
			}
			if cmd == 'q' {
				nums[0] += x
				nums[1] += y
				nums[2] += x
				nums[3] += y
			}
			sink.QuadTo(Point{nums[0], nums[1]}, Point{nums[2], nums[3]})
			cpx, cpy = nums[0], nums[1]
			x, y = nums[2], nums[3]
		case 'T', 't':
			a, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			b, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 't' {
				a += x
				b += y
			}
			cx, cy := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx, cy = 2.0*x-cpx, 2.0*y-cpy
			}
			sink.QuadTo(Point{cx, cy}, Point{a, b})
			cpx, cpy = cx, cy
			x, y = a, b
		case 'A', 'a':
			rx, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			ry, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			rot, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			large, err := parseFlag(path, &i)
			if err != nil {
				return err
			}
			sweep, err := parseFlag(path, &i)
			if err != nil {
				return err
			}
			a, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			b, err := parseNum(path, &i)
			if err != nil {
				return err
			}
			if cmd == 'a' {
				a += x
				b += y
			}
			sink.ArcTo(rx, ry, rot, large, sweep, Point{a, b})
			x, y = a, b
		default:
			return parseError(i-1, fmt.Sprintf("unknown command '%c'", cmd))
		}
		prevCmd = cmd
	}
	return nil
}
