package assets

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/halverson/glint/internal/engine/scene"
	"github.com/halverson/glint/internal/logger"
)

// mapFlags are the MTL map-directive options the filename parser skips,
// keyed by flag name with the number of arguments each consumes.
var mapFlags = map[string]int{
	"-bm":    1,
	"-bl":    1,
	"-o":     3,
	"-s":     3,
	"-t":     3,
	"-clamp": 0,
	"-mm":    0,
}

// parseMTL reads a .mtl file into a name-to-material map. Texture paths are
// resolved relative to the MTL file's directory. A missing or unreadable
// file yields an empty map.
func parseMTL(path string) map[string]scene.Material {
	materials := make(map[string]scene.Material)

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("mtl file not readable", zap.String("path", path), zap.Error(err))
		return materials
	}
	defer f.Close()

	dir := filepath.Dir(path)

	var cur *scene.Material
	flush := func() {
		if cur != nil {
			materials[cur.Name] = *cur
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]
		args := fields[1:]

		if directive == "newmtl" {
			flush()
			m := scene.DefaultMaterial()
			if len(args) > 0 {
				m.Name = args[0]
			}
			cur = &m
			continue
		}
		if cur == nil {
			continue
		}

		switch directive {
		case "Kd":
			if rgb, ok := parseVec3(args); ok {
				cur.DiffuseColor = [4]float32{rgb[0], rgb[1], rgb[2], 1}
				cur.BaseColor = cur.DiffuseColor
			}
		case "Pr":
			if v, ok := parseFloat(args); ok {
				cur.Roughness = v
			}
		case "Pm":
			if v, ok := parseFloat(args); ok {
				cur.Metallic = v
			}
		case "Ke":
			if rgb, ok := parseVec3(args); ok {
				cur.Emissive = rgb
			}
		case "map_Kd", "map_Ka", "map_albedo", "map_base_color":
			cur.Paths.Albedo = mapPath(dir, args)
		case "norm", "map_Bump", "bump":
			cur.Paths.Normal = mapPath(dir, args)
		case "map_Pm", "map_metallic":
			cur.Paths.Metallic = mapPath(dir, args)
		case "map_Pr", "map_roughness":
			cur.Paths.Roughness = mapPath(dir, args)
		case "map_ao":
			cur.Paths.AO = mapPath(dir, args)
		case "map_Ke", "map_emissive":
			cur.Paths.Emissive = mapPath(dir, args)
		case "map_metallic_roughness":
			cur.Paths.MetallicRoughness = mapPath(dir, args)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		logger.Warn("mtl scan failed", zap.String("path", path), zap.Error(err))
	}
	return materials
}

// mapFilename extracts the texture filename from a map directive's argument
// tokens, skipping recognized option flags and their arguments. Everything
// from the first non-flag token onward is the filename, so paths with
// embedded spaces survive.
func mapFilename(args []string) string {
	i := 0
	for i < len(args) {
		n, isFlag := mapFlags[args[i]]
		if !isFlag {
			break
		}
		i += 1 + n
	}
	if i >= len(args) {
		return ""
	}
	return strings.Join(args[i:], " ")
}

func mapPath(dir string, args []string) string {
	name := mapFilename(args)
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

func parseFloat(args []string) (float32, bool) {
	if len(args) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func parseVec3(args []string) ([3]float32, bool) {
	if len(args) < 3 {
		return [3]float32{}, false
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return [3]float32{}, false
		}
		out[i] = float32(v)
	}
	return out, true
}
