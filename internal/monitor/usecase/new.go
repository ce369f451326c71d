package usecase

import (
	"fmt"
	"sync"
	"time"

	"trial-monitor/config"
	"trial-monitor/internal/conversation"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
	"trial-monitor/internal/monitor/repository"
	"trial-monitor/internal/router"
	"trial-monitor/pkg/llmprovider"
	pkgLog "trial-monitor/pkg/log"
)

const (
	defaultOracleTimeout = 120 * time.Second
	defaultContextTurns  = 3
)

// Config tunes oracle calls and the guidance context.
type Config struct {
	OracleTimeout        time.Duration
	Temperature          float64
	TopP                 float64
	TopK                 int
	MaxOutputTokens      int
	GuidanceContextTurns int
}

// ConfigFrom builds a Config from the generation and monitor sections.
func ConfigFrom(gen config.GenerationConfig, mon config.MonitorConfig) (Config, error) {
	cfg := Config{
		Temperature:          gen.Temperature,
		TopP:                 gen.TopP,
		TopK:                 gen.TopK,
		MaxOutputTokens:      gen.MaxOutputTokens,
		GuidanceContextTurns: mon.GuidanceContextTurns,
	}
	if mon.OracleTimeout != "" {
		d, err := time.ParseDuration(mon.OracleTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid oracle_timeout %q: %w", mon.OracleTimeout, err)
		}
		cfg.OracleTimeout = d
	}
	return cfg, nil
}

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	oracle    llmprovider.Generator
	repo      repository.Repository
	history   *conversation.Store
	contracts map[model.RequestType]contract
	cfg       Config

	senderLocks sync.Map // sender -> *sync.Mutex
}

var _ monitor.UseCase = (*implUseCase)(nil)

// New creates a new monitor UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	oracle llmprovider.Generator,
	repo repository.Repository,
	history *conversation.Store,
	cfg Config,
) *implUseCase {
	if l == nil {
		l = pkgLog.NewNop()
	}
	if cfg.OracleTimeout <= 0 {
		cfg.OracleTimeout = defaultOracleTimeout
	}
	if cfg.GuidanceContextTurns <= 0 {
		cfg.GuidanceContextTurns = defaultContextTurns
	}
	if history == nil {
		history = conversation.New(conversation.DefaultWindow)
	}
	return &implUseCase{
		l:         l,
		router:    r,
		oracle:    oracle,
		repo:      repo,
		history:   history,
		contracts: contracts(),
		cfg:       cfg,
	}
}

// lockSender serialises the guidance read-call-append sequence per sender.
func (uc *implUseCase) lockSender(sender string) func() {
	v, _ := uc.senderLocks.LoadOrStore(sender, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
