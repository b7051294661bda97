package mission_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/mission"
)

func TestLoadMissionRejectsStaleVersion(t *testing.T) {
	input := "QGC WPL 109\r\n"
	_, err := mission.LoadMission(strings.NewReader(input))
	require.ErrorIs(t, err, mission.ErrUnsupportedVersion)
}

func TestLoadMissionRejectsMalformedHeader(t *testing.T) {
	_, err := mission.LoadMission(strings.NewReader("not a header\r\n"))
	require.ErrorIs(t, err, mission.ErrMalformedHeader)
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	wps := mission.EmitAgentMission([]geo.Point{
		{Lat: 1, Lon: 2}, {Lat: 1.001, Lon: 2}, {Lat: 1.001, Lon: 2.001},
	})

	var buf strings.Builder
	require.NoError(t, mission.WriteMission(&buf, wps))
	require.Contains(t, buf.String(), "QGC WPL 110\r\n")
	require.Contains(t, buf.String(), "\r\n")

	loaded, err := mission.LoadMission(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, 110, loaded.Version)
	require.Len(t, loaded.Waypoints, len(wps))

	// placeholder, takeoff, 3 waypoints (node2, node3, closing depot), land = 6
	require.Len(t, loaded.Waypoints, 6)
	require.Equal(t, mission.CmdNavTakeoff, loaded.Waypoints[1].Command)
	require.Equal(t, mission.CmdNavLand, loaded.Waypoints[5].Command)
}

func TestParseAreasAndStartsSquareWithStart(t *testing.T) {
	input := "QGC WPL 110\r\n" +
		"0\t0\t0\t22\t0\t0\t0\t0\t0\t0\t0\t1\r\n" + // NAV_TAKEOFF at (0,0)
		"1\t0\t0\t16\t0\t0\t0\t0\t0\t3\t0\t1\r\n" + // (0,3)
		"2\t0\t0\t16\t0\t0\t0\t0\t3\t3\t0\t1\r\n" + // (3,3)
		"3\t0\t0\t21\t0\t0\t0\t0\t3\t0\t0\t1\r\n" + // NAV_LAND at (3,0)
		"4\t0\t0\t20\t0\t0\t0\t0\t0\t0\t0\t1\r\n" // NAV_RETURN_TO_LAUNCH at (0,0)

	f, err := mission.LoadMission(strings.NewReader(input))
	require.NoError(t, err)

	areas, starts, err := mission.ParseAreasAndStarts(f)
	require.NoError(t, err)
	require.Len(t, areas.Areas, 1)
	require.Equal(t, 4, areas.Inclusion().Len())
	require.Len(t, starts, 1)
	require.Equal(t, geo.Point{Lat: 0, Lon: 0}, starts[0])
}

func TestParseAreasAndStartsRejectsUnclosedArea(t *testing.T) {
	input := "QGC WPL 110\r\n" +
		"0\t0\t0\t22\t0\t0\t0\t0\t0\t0\t0\t1\r\n" +
		"1\t0\t0\t16\t0\t0\t0\t0\t0\t3\t0\t1\r\n"

	f, err := mission.LoadMission(strings.NewReader(input))
	require.NoError(t, err)

	_, _, err = mission.ParseAreasAndStarts(f)
	require.ErrorIs(t, err, mission.ErrUnclosedArea)
}
