package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aeromech/composite/tsaiwu"
)

// materialFile is the JSON schema for material definitions. All values
// are ultimate stresses in consistent units (typically Pa). The
// transverse block is optional and all-or-nothing.
type materialFile struct {
	Name       string `json:"name,omitempty"`
	Xc         float64
	Xt         float64
	Zc         float64
	Zt         float64
	Sxy        float64
	Syz        float64
	Transverse *struct {
		Yc  float64
		Yt  float64
		Sxz float64
	} `json:"transverse,omitempty"`
}

func loadMaterial(path string) (string, tsaiwu.Strengths, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", tsaiwu.Strengths{}, fmt.Errorf("loading material: %w", err)
	}
	var mf materialFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return "", tsaiwu.Strengths{}, fmt.Errorf("parsing material %s: %w", path, err)
	}
	s := tsaiwu.Strengths{
		Xc: mf.Xc, Xt: mf.Xt,
		Zc: mf.Zc, Zt: mf.Zt,
		Sxy: mf.Sxy, Syz: mf.Syz,
	}
	if mf.Transverse != nil {
		s.Transverse = &tsaiwu.TransverseStrengths{
			Yc:  mf.Transverse.Yc,
			Yt:  mf.Transverse.Yt,
			Sxz: mf.Transverse.Sxz,
		}
	}
	return mf.Name, s, nil
}
