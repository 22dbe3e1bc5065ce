package sweepline

import (
	"github.com/cockroachdb/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParsePolylines parses SVG path data consisting of the M, L, H, V, and Z commands (and their relative forms) into polylines. Each move command starts a new polyline.
func ParsePolylines(s string) ([]*Polyline, error) {
	path := []byte(s)
	ps := []*Polyline{}

	var p *Polyline
	var prevCmd byte
	x, y := 0.0, 0.0
	start := Point{}

	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		}

		var a, b float64
		var n, m int
		switch cmd {
		case 'M', 'm', 'L', 'l':
			if a, n = parseNum(path[i:]); n == 0 {
				return nil, errors.Newf("bad path: expected number at position %d", i)
			}
			i += n
			if b, m = parseNum(path[i:]); m == 0 {
				return nil, errors.Newf("bad path: expected number at position %d", i)
			}
			i += m
			if cmd == 'm' || cmd == 'l' {
				a += x
				b += y
			}
			if cmd == 'M' || cmd == 'm' {
				p = &Polyline{}
				ps = append(ps, p)
				start = Point{a, b}
				// subsequent coordinate pairs are implicit line commands
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			} else if p == nil {
				return nil, errors.Newf("bad path: %c command before move at position %d", cmd, i)
			}
			p.Add(a, b)
			x, y = a, b
		case 'H', 'h':
			if a, n = parseNum(path[i:]); n == 0 {
				return nil, errors.Newf("bad path: expected number at position %d", i)
			} else if p == nil {
				return nil, errors.Newf("bad path: %c command before move at position %d", cmd, i)
			}
			i += n
			if cmd == 'h' {
				a += x
			}
			p.Add(a, y)
			x = a
		case 'V', 'v':
			if b, n = parseNum(path[i:]); n == 0 {
				return nil, errors.Newf("bad path: expected number at position %d", i)
			} else if p == nil {
				return nil, errors.Newf("bad path: %c command before move at position %d", cmd, i)
			}
			i += n
			if cmd == 'v' {
				b += y
			}
			p.Add(x, b)
			y = b
		case 'Z', 'z':
			if p == nil {
				return nil, errors.Newf("bad path: %c command before move at position %d", cmd, i)
			}
			if !p.Closed() {
				p.Close()
			}
			x, y = start.X, start.Y
			cmd = 0
		case 0:
			return nil, errors.Newf("bad path: expected command at position %d", i)
		default:
			return nil, errors.Newf("bad path: unsupported command '%c' at position %d", cmd, i)
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return ps, nil
}

// MustParsePolylines parses SVG path data and panics on error.
func MustParsePolylines(s string) []*Polyline {
	ps, err := ParsePolylines(s)
	if err != nil {
		panic(err)
	}
	return ps
}
