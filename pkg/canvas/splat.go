package canvas

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/voxelray/voxelray/pkg/core"
)

// plyProperty is a single "property <type> <name>" header line. Grounded on
// github.com/df07/go-progressive-raytracer's pkg/loaders/ply.go PLYProperty
// and its line-oriented header scanner.
type plyProperty struct {
	name string
	kind string // "float", "float32", "double", "uchar", ...
}

// plyHeader is the parsed "ply ... end_header" preamble of a binary
// little-endian point-cloud PLY file. Only the vertex element is
// supported: Gaussian-splat files have no faces to speak of for ingestion
// purposes (spec §1's scope is point-cloud ingestion only, not mesh/face
// parsing).
type plyHeader struct {
	format      string
	vertexCount int
	props       []plyProperty
}

func plyPropertySize(kind string) (int, error) {
	switch kind {
	case "char", "uchar", "int8", "uint8":
		return 1, nil
	case "short", "ushort", "int16", "uint16":
		return 2, nil
	case "int", "uint", "int32", "uint32", "float", "float32":
		return 4, nil
	case "double", "float64", "int64", "uint64":
		return 8, nil
	default:
		return 0, fmt.Errorf("canvas: unsupported PLY property type %q", kind)
	}
}

// parsePLYHeader reads the header line by line straight from r, so r is
// left positioned at the first byte of the binary vertex data.
func parsePLYHeader(r *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}
	inVertex := false

	magic := true
	for {
		raw, readErr := r.ReadString('\n')
		if raw == "" && readErr != nil {
			if readErr == io.EOF {
				return nil, fmt.Errorf("canvas: PLY header never terminated with end_header")
			}
			return nil, fmt.Errorf("canvas: reading PLY header: %w", readErr)
		}
		line := strings.TrimSpace(raw)
		if magic {
			if line != "ply" {
				return nil, fmt.Errorf("canvas: not a PLY file (missing magic header)")
			}
			magic = false
			continue
		}
		if line == "end_header" {
			return header, nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) >= 2 {
				header.format = fields[1]
			}
		case "comment":
			// ignored
		case "element":
			if len(fields) >= 3 {
				n, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, fmt.Errorf("canvas: invalid element count %q: %w", fields[2], err)
				}
				if fields[1] == "vertex" {
					header.vertexCount = n
					inVertex = true
				} else {
					inVertex = false
				}
			}
		case "property":
			if inVertex && len(fields) >= 3 {
				header.props = append(header.props, plyProperty{kind: fields[1], name: fields[2]})
			}
		}
	}
}

// GaussianSplat is one ingested point of a Gaussian-splat point cloud:
// world position, RGB color, opacity in [0,1], and an isotropic scale used
// as the splat footprint's standard deviation.
type GaussianSplat struct {
	Position core.Vec3
	Color    core.Vec3
	Opacity  float64
	Scale    float64
}

// LoadGaussianSplatPLY reads a binary_little_endian Gaussian-splat PLY
// point cloud, recognizing the conventional 3D Gaussian Splatting property
// names (x,y,z; f_dc_0..2 as spherical-harmonic DC color terms, falling
// back to red/green/blue; opacity; scale_0..2, averaged into one isotropic
// scale). Grounded on go-progressive-raytracer's ply.go header parser;
// the property-name conventions follow original_source's
// parse_gaussian_splatting_data.
func LoadGaussianSplatPLY(path string) ([]GaussianSplat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: opening %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, err
	}
	if header.format != "binary_little_endian" {
		return nil, fmt.Errorf("canvas: unsupported PLY format %q (only binary_little_endian is implemented)", header.format)
	}

	offsets := map[string]int{}
	sizes := map[string]int{}
	stride := 0
	for _, p := range header.props {
		size, err := plyPropertySize(p.kind)
		if err != nil {
			return nil, err
		}
		offsets[p.name] = stride
		sizes[p.name] = size
		stride += size
	}

	readFloat := func(row []byte, name string, fallback float64) float64 {
		off, ok := offsets[name]
		if !ok {
			return fallback
		}
		switch sizes[name] {
		case 4:
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(row[off:])))
		case 8:
			return math.Float64frombits(binary.LittleEndian.Uint64(row[off:]))
		default:
			return fallback
		}
	}

	splats := make([]GaussianSplat, 0, header.vertexCount)
	row := make([]byte, stride)
	for v := 0; v < header.vertexCount; v++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("canvas: reading vertex %d: %w", v, err)
		}

		pos := core.Vec3{X: readFloat(row, "x", 0), Y: readFloat(row, "y", 0), Z: readFloat(row, "z", 0)}

		var color core.Vec3
		if _, ok := offsets["f_dc_0"]; ok {
			// SH DC term -> linear color, per the standard 3DGS convention.
			const shC0 = 0.28209479177387814
			color = core.Vec3{
				X: 0.5 + shC0*readFloat(row, "f_dc_0", 0),
				Y: 0.5 + shC0*readFloat(row, "f_dc_1", 0),
				Z: 0.5 + shC0*readFloat(row, "f_dc_2", 0),
			}
		} else {
			color = core.Vec3{
				X: readFloat(row, "red", 0.5) / 255,
				Y: readFloat(row, "green", 0.5) / 255,
				Z: readFloat(row, "blue", 0.5) / 255,
			}
		}

		opacity := sigmoid(readFloat(row, "opacity", 0))
		scale := math.Exp((readFloat(row, "scale_0", 0) + readFloat(row, "scale_1", 0) + readFloat(row, "scale_2", 0)) / 3)

		splats = append(splats, GaussianSplat{Position: pos, Color: color, Opacity: opacity, Scale: scale})
	}
	return splats, nil
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// SplatGaussians splats points into the canvas, following
// canvas.gaussian_splatting's accumulation pattern: each point contributes
// density/color to every voxel within a few standard deviations, weighted
// by an isotropic Gaussian kernel and the point's opacity. offset
// translates point-cloud space into canvas voxel space; scaling converts
// point-cloud units to voxels.
func SplatGaussians(c *Canvas, points []GaussianSplat, offset core.Vec3, scaling float64) {
	const radiusInSigmas = 3
	for _, pt := range points {
		center := pt.Position.Scale(scaling).Add(offset)
		sigma := pt.Scale * scaling
		if sigma <= 0 {
			continue
		}
		radius := int(math.Ceil(radiusInSigmas * sigma))
		ci, cj, ck := int(math.Round(center.X)), int(math.Round(center.Y)), int(math.Round(center.Z))

		for i := ci - radius; i <= ci+radius; i++ {
			for j := cj - radius; j <= cj+radius; j++ {
				for k := ck - radius; k <= ck+radius; k++ {
					if !c.inRange(i, j, k) {
						continue
					}
					d2 := (float64(i)-center.X)*(float64(i)-center.X) +
						(float64(j)-center.Y)*(float64(j)-center.Y) +
						(float64(k)-center.Z)*(float64(k)-center.Z)
					weight := pt.Opacity * math.Exp(-d2/(2*sigma*sigma))
					if weight <= 0 {
						continue
					}
					idx := c.index(i, j, k)
					c.Density[idx] += weight
					c.Color[idx] = c.Color[idx].Add(pt.Color.Scale(weight))
				}
			}
		}
	}
}
