package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/models"
)

const (
	// DefaultModelName is the model used when a request names no model or an
	// unknown one.
	DefaultModelName = "xgboost"

	// EnsembleModelName averages every registered model instead of picking one.
	EnsembleModelName = "ensemble"

	// FallbackDamageRate is returned when no model can score at all.
	FallbackDamageRate = 0.06

	featureListFile = "feature_list.json"
	modelFileSuffix = "_model.json"
)

// Scorer maps an ordered feature vector to a raw damage rate.
type Scorer interface {
	Score(vector []float64) float64
}

// Adapter owns the feature ordering and the registry of loaded models. It is
// immutable after startup and safe for concurrent use.
type Adapter struct {
	featureList  []string
	featureIndex map[string]int
	scorers      map[string]Scorer
}

// NewAdapter builds an adapter around a feature ordering. Models are attached
// with Register.
func NewAdapter(featureList []string) *Adapter {
	idx := make(map[string]int, len(featureList))
	for i, name := range featureList {
		idx[name] = i
	}
	return &Adapter{
		featureList:  featureList,
		featureIndex: idx,
		scorers:      make(map[string]Scorer),
	}
}

// Register attaches a scorer under a model name, replacing any previous one.
func (a *Adapter) Register(name string, s Scorer) {
	a.scorers[name] = s
}

// Load reads the feature list and every model artifact from dir. Missing or
// unreadable artifacts are logged and skipped so the service can still start
// and fall back to the heuristic rate.
func Load(dir string) *Adapter {
	featureList, err := loadFeatureList(filepath.Join(dir, featureListFile))
	if err != nil {
		log.Warnf("Feature list unavailable, model scoring disabled: %v", err)
		return NewAdapter(nil)
	}

	a := NewAdapter(featureList)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("Cannot read model directory %s: %v", dir, err)
		return a
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, modelFileSuffix) {
			continue
		}
		modelName := strings.TrimSuffix(name, modelFileSuffix)
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warnf("Cannot read model %s: %v", modelName, err)
			continue
		}
		te, err := NewTreeEnsemble(raw, a.featureIndex)
		if err != nil {
			log.Warnf("Cannot parse model %s: %v", modelName, err)
			continue
		}
		a.Register(modelName, te)
		log.Infof("Loaded model %s (%d trees, %d features)", modelName, te.TreeCount(), len(featureList))
	}

	if len(a.scorers) == 0 {
		log.Warn("No models loaded, predictions will use the fallback damage rate")
	}
	return a
}

func loadFeatureList(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s lists no features", filepath.Base(path))
	}
	return list, nil
}

// ModelNames returns the registered model names in sorted order.
func (a *Adapter) ModelNames() []string {
	names := make([]string, 0, len(a.scorers))
	for name := range a.scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FeatureCount returns the length of the model feature vector.
func (a *Adapter) FeatureCount() int { return len(a.featureList) }

// Vectorize orders engineered features into the model's vector layout.
// Features the model expects but the engineer never produces are zero-filled.
func (a *Adapter) Vectorize(ctx context.Context, f *features.Features) []float64 {
	vector := make([]float64, len(a.featureList))
	for i, name := range a.featureList {
		v, ok := f.Lookup(name)
		if !ok {
			models.AddWarning(ctx, models.Warning{
				Code:    models.WarnMissingVectorFeat,
				Message: fmt.Sprintf("feature %q not produced by engineering, filled with 0", name),
			})
			continue
		}
		vector[i] = v
	}
	return vector
}

// Predict scores engineered features with the named model. Unknown names fall
// back to the default model, then to the ensemble average, then to the
// heuristic rate. The result is always clamped to [0, 1].
func (a *Adapter) Predict(ctx context.Context, f *features.Features, modelName string) float64 {
	vector := a.Vectorize(ctx, f)

	if modelName == EnsembleModelName {
		return a.scoreEnsemble(ctx, vector)
	}
	if s, ok := a.scorers[modelName]; ok {
		return clampRate(s.Score(vector))
	}

	if s, ok := a.scorers[DefaultModelName]; ok {
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnModelFallback,
			Message: fmt.Sprintf("model %q not available, using %s", modelName, DefaultModelName),
		})
		return clampRate(s.Score(vector))
	}

	models.AddWarning(ctx, models.Warning{
		Code:    models.WarnModelFallback,
		Message: fmt.Sprintf("model %q not available, using %s", modelName, EnsembleModelName),
	})
	return a.scoreEnsemble(ctx, vector)
}

// scoreEnsemble averages every registered model. With nothing registered it
// reports the heuristic fallback rate.
func (a *Adapter) scoreEnsemble(ctx context.Context, vector []float64) float64 {
	if len(a.scorers) == 0 {
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnFallbackScore,
			Message: fmt.Sprintf("no models available, using fallback damage rate %.2f", FallbackDamageRate),
		})
		return FallbackDamageRate
	}
	var sum float64
	for _, s := range a.scorers {
		sum += s.Score(vector)
	}
	return clampRate(sum / float64(len(a.scorers)))
}

func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
