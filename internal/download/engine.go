package download

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Engine names accepted by NewEngine
const (
	EngineYTDLP  = "ytdlp"
	EngineNative = "native"
)

// EngineConfig selects and tunes an engine
type EngineConfig struct {
	Name             string
	ProgressInterval time.Duration
	NativeQuality    string
	NativeExt        string
}

// NewEngine builds the engine named in cfg
func NewEngine(cfg EngineConfig, logger *zap.Logger) (Engine, error) {
	switch cfg.Name {
	case EngineYTDLP, "":
		return NewYTDLPEngine(cfg.ProgressInterval, logger), nil
	case EngineNative:
		return NewNativeEngine(cfg.NativeQuality, cfg.NativeExt, logger), nil
	default:
		return nil, fmt.Errorf("unknown download engine: %q", cfg.Name)
	}
}
