package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
	"github.com/df07/go-progressive-pathtracer/pkg/material"
	"github.com/df07/go-progressive-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

var inspectInterval = core.NewInterval(0.001, math.Inf(1))

// InspectPixel casts the unjittered ray through the center of pixel (x, y)
// and returns the first surface it hits. Volumes are sampled with a fixed
// seed so repeated inspections agree.
func InspectPixel(sc *scene.Scene, x, y int) (*material.HitRecord, bool) {
	ray := sc.Camera.PixelCenterRay(x, y)
	return sc.World.Hit(ray, inspectInterval, core.NewSeededSampler(0))
}

// describeMaterial returns a short type name and the parameters of a material
func describeMaterial(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = describeTexture(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vec3JSON(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emission"] = describeTexture(m.Emit)
		properties["oneSided"] = m.OneSided
		return "diffuse_light", properties

	case *material.Isotropic:
		properties["albedo"] = describeTexture(m.Albedo)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

func describeTexture(tex material.Texture) map[string]interface{} {
	switch t := tex.(type) {
	case *material.SolidColor:
		return map[string]interface{}{
			"type":  "solid",
			"value": vec3JSON(t.Color),
			"color": hexColor(t.Color),
		}
	case *material.CheckerTexture:
		return map[string]interface{}{
			"type": "checker",
			"even": describeTexture(t.Even),
			"odd":  describeTexture(t.Odd),
		}
	case *material.NoiseTexture:
		pattern := "smooth"
		if t.Pattern == material.NoiseMarble {
			pattern = "marble"
		}
		return map[string]interface{}{
			"type":    "noise",
			"pattern": pattern,
			"scale":   t.Scale,
		}
	case *material.ImageTexture:
		return map[string]interface{}{"type": "image"}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

func vec3JSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// handleInspect reports what the center ray of a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseSceneRequest(r.URL.Query())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	sc, err := req.build()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeJSONError(w, status, err)
		return
	}

	width, height := sc.Camera.Width(), sc.Camera.Height()
	x, err := parseIntParam(r.URL.Query(), "x", -1, 0, width-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", -1, 0, height-1)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}
	if x < 0 || y < 0 {
		writeJSONError(w, http.StatusBadRequest, fmt.Errorf("x and y are required"))
		return
	}

	hit, ok := InspectPixel(sc, x, y)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, properties := describeMaterial(hit.Material)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vec3JSON(hit.Point),
		Normal:       vec3JSON(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	})
}
