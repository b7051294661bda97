package mission

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadMission parses a QGC WPL mission file from r. If the declared
// version is below MinSupportedVersion, it returns ErrUnsupportedVersion
// with a zero File — callers should treat this as "no planning
// performed", not a fatal error.
func LoadMission(r io.Reader) (File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return File{}, ErrMalformedHeader
	}
	version, err := parseHeader(scanner.Text())
	if err != nil {
		return File{}, err
	}
	if version < MinSupportedVersion {
		return File{}, ErrUnsupportedVersion
	}

	var wps []Waypoint
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		wp, err := parseLine(line)
		if err != nil {
			return File{}, err
		}
		wps = append(wps, wp)
	}
	if err := scanner.Err(); err != nil {
		return File{}, err
	}

	return File{Version: version, Waypoints: wps}, nil
}

func parseHeader(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "QGC" || fields[1] != "WPL" {
		return 0, ErrMalformedHeader
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, ErrMalformedHeader
	}

	return v, nil
}

func parseLine(line string) (Waypoint, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 12 {
		return Waypoint{}, ErrMalformedLine
	}

	ints := make([]int, 0, 4)
	for _, idx := range []int{0, 1, 2, 3} {
		n, err := strconv.Atoi(fields[idx])
		if err != nil {
			return Waypoint{}, ErrMalformedLine
		}
		ints = append(ints, n)
	}

	floats := make([]float64, 0, 7)
	for _, idx := range []int{4, 5, 6, 7, 8, 9, 10} {
		f, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return Waypoint{}, ErrMalformedLine
		}
		floats = append(floats, f)
	}

	autoContinue, err := strconv.Atoi(fields[11])
	if err != nil {
		return Waypoint{}, ErrMalformedLine
	}

	return Waypoint{
		Seq: ints[0], Current: ints[1], Frame: ints[2], Command: ints[3],
		Param1: floats[0], Param2: floats[1], Param3: floats[2], Param4: floats[3],
		Lat: floats[4], Lon: floats[5], Alt: floats[6],
		AutoContinue: autoContinue,
	}, nil
}

// WriteMission writes wps to w in QGC WPL format with CRLF line endings.
func WriteMission(w io.Writer, wps []Waypoint) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "QGC WPL %d\r\n", MinSupportedVersion); err != nil {
		return err
	}

	for i, wp := range wps {
		line := fmt.Sprintf("%d\t%d\t%d\t%d\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%d\r\n",
			i, wp.Current, wp.Frame, wp.Command,
			wp.Param1, wp.Param2, wp.Param3, wp.Param4,
			wp.Lat, wp.Lon, wp.Alt, wp.AutoContinue,
		)
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
