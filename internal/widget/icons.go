package widget

import "github.com/1broseidon/sysmon/internal/platform"

// xbm builds a bitmap from rows where '#' marks a set pixel.
func xbm(rows ...string) platform.Bitmap {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	stride := (width + 7) / 8
	bits := make([]byte, stride*len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				bits[y*stride+x/8] |= 1 << uint(x%8)
			}
		}
	}
	return platform.Bitmap{Width: width, Height: len(rows), Bits: bits}
}

var (
	cpuIcon = xbm(
		".#.##.#.",
		"########",
		".#....#.",
		"##.##.##",
		"##.##.##",
		".#....#.",
		"########",
		".#.##.#.",
	)
	memIcon = xbm(
		"########",
		"#.#.#.##",
		"#.#.#.##",
		"########",
		"########",
		"#......#",
		"#.#.#.##",
		"########",
	)
	netDownIcon = xbm(
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		"#######.",
		".#####..",
		"..###...",
		"...#....",
	)
	netUpIcon = xbm(
		"...#....",
		"..###...",
		".#####..",
		"#######.",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
	)
	clockIcon = xbm(
		"..####..",
		".#....#.",
		"#..#...#",
		"#..#...#",
		"#..###.#",
		"#......#",
		".#....#.",
		"..####..",
	)
	speakerIcon = xbm(
		"...#....",
		"..##..#.",
		"###.#..#",
		"#...#.##",
		"#...#.##",
		"###.#..#",
		"..##..#.",
		"...#....",
	)
	brightnessIcon = xbm(
		"....#....",
		".#.....#.",
		"...###...",
		"..#####..",
		"#.#####.#",
		"..#####..",
		"...###...",
		".#.....#.",
		"....#....",
	)
	batteryIcon = xbm(
		"..####..",
		".######.",
		".#....#.",
		".#.##.#.",
		".#.##.#.",
		".#.##.#.",
		".#....#.",
		".######.",
	)
)
