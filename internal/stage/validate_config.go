package stage

import (
	"context"
	"errors"

	"github.com/kir-rescomp/nucleo/internal/config"
)

func validateConfigRunner(ctx context.Context, in Envelope) (Envelope, error) {
	if in.Meta == nil || in.Meta.ConfigPath == "" {
		return Envelope{}, errors.New("validate-config: missing config path")
	}
	cfg, err := config.Load(in.Meta.ConfigPath)
	if err != nil {
		return Envelope{}, err
	}
	out := in
	out.Meta.Cfg = &cfg
	out.Meta.Config = &ConfigMeta{
		ConfigVersion: cfg.ConfigVersion,
		Action:        cfg.Action,
	}
	return out, nil
}

func init() { Register("validate-config", validateConfigRunner) }
