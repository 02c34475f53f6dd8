package stage

import (
	"github.com/kir-rescomp/nucleo/internal/config"
	"github.com/kir-rescomp/nucleo/internal/seq"
)

// Error is an envelope-level error attributed to a stage and, where
// known, a record locator.
type Error struct {
	Stage   string `json:"stage"`
	Locator string `json:"locator,omitempty"`
	Message string `json:"message"`
}

// RecError marks a failed record carried forward in keep-going mode.
type RecError struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Stats is the per-record result of the stats action.
type Stats struct {
	Length int        `json:"length"`
	Counts seq.Counts `json:"counts"`
	GC     float64    `json:"gc"`
}

// Record is one sequence flowing through the pipeline. Analysis stages
// attach their result fields; Error is set instead when the record failed
// in keep-going mode.
type Record struct {
	Locator  string    `json:"locator"`
	Sequence string    `json:"sequence,omitempty"`
	GC       *float64  `json:"gc,omitempty"`
	GCText   string    `json:"gcText,omitempty"`
	RevComp  string    `json:"revComp,omitempty"`
	Stats    *Stats    `json:"stats,omitempty"`
	Error    *RecError `json:"error,omitempty"`
}

// ConfigMeta is the serializable summary of the validated config.
type ConfigMeta struct {
	ConfigVersion string `json:"configVersion"`
	Action        string `json:"action"`
}

// Meta carries pipeline state with deterministic JSON field order. Cfg
// holds the full validated config for stages and is never serialized.
type Meta struct {
	ContractVersion string         `json:"contractVersion,omitempty"`
	ConfigPath      string         `json:"configPath,omitempty"`
	Config          *ConfigMeta    `json:"config,omitempty"`
	Cfg             *config.Config `json:"-"`
}

// Envelope is the value passed between stages.
type Envelope struct {
	Meta    *Meta    `json:"meta,omitempty"`
	Records []Record `json:"records"`
	Errors  []Error  `json:"errors,omitempty"`
}

func errorMode(meta *Meta) string {
	if meta != nil && meta.Cfg != nil {
		return meta.Cfg.Errors.Mode
	}
	return config.ModeFailFast
}
